package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contract_monthly_claim/internal/adapter/http/handlers/mocks"
	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetPaymentReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hr := entities.Caller{Username: "hopper", Roles: []entities.Role{entities.RoleHR}}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		queries := mocks.NewMockIClaimQueryUseCase(ctrl)
		h := NewReportHandler(queries)

		r := gin.New()
		r.Use(asCaller(hr))
		r.GET("/v1/reports/payments", h.GetPaymentReport)

		approved := pendingClaim()
		approved.Status = entities.ClaimStatusApproved
		queries.EXPECT().GetPaymentReport(gomock.Any(), hr).Return(entities.PaymentReport{
			Claims:      []entities.Claim{approved},
			TotalHours:  decimal.RequireFromString("12.5"),
			TotalAmount: decimal.RequireFromString("5631.25"),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reports/payments", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `"claim_count":1`) || !strings.Contains(body, `"total_amount":"5631.25"`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		queries := mocks.NewMockIClaimQueryUseCase(ctrl)
		h := NewReportHandler(queries)

		r := gin.New()
		r.Use(asCaller(lecturer))
		r.GET("/v1/reports/payments", h.GetPaymentReport)

		queries.EXPECT().GetPaymentReport(gomock.Any(), lecturer).Return(entities.PaymentReport{}, usecase.ErrForbidden)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reports/payments", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
