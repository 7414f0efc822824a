package handlers

import (
	"log"
	"net/http"

	"contract_monthly_claim/internal/adapter/http/dto/response"
	"contract_monthly_claim/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	queries usecase.IClaimQueryUseCase
}

func NewReportHandler(queries usecase.IClaimQueryUseCase) *ReportHandler {
	return &ReportHandler{queries: queries}
}

// GetPaymentReport godoc
// @Summary  Payment report over approved claims
// @Tags     reports
// @Produce  json
// @Success  200  {object}  response.PaymentReportResponse
// @Failure  403  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /reports/payments [get]
func (h *ReportHandler) GetPaymentReport(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	report, err := h.queries.GetPaymentReport(c.Request.Context(), caller)
	if err != nil {
		log.Printf("[report][handler] payment report failed caller=%s err=%v", caller.Username, err)
		writeClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentReport(report))
}
