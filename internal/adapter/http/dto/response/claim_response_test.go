package response

import (
	"testing"
	"time"

	"contract_monthly_claim/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromClaim(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Claim{
		ID:           7,
		SubmittedBy:  "ada",
		LecturerName: "Ada Lovelace",
		Programme:    "BSc",
		Month:        "2026-09",
		HoursWorked:  decimal.RequireFromString("12.5"),
		HourlyRate:   decimal.RequireFromString("450.5"),
		Amount:       decimal.RequireFromString("5631.25"),
		Status:       entities.ClaimStatusApproved,
		DocumentRef:  "abc.pdf",
		Version:      2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromClaim(c)
	if res.ID != 7 || res.SubmittedBy != "ada" || res.Status != "Approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.HoursWorked != "12.50" || res.HourlyRate != "450.50" || res.Amount != "5631.25" {
		t.Fatalf("unexpected decimals: %+v", res)
	}
	if !res.HasDocument || res.DocumentRef != "abc.pdf" || res.Version != 2 {
		t.Fatalf("unexpected document fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromClaims_EmptyIsNotNil(t *testing.T) {
	if got := FromClaims(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestFromPaymentReport(t *testing.T) {
	r := entities.PaymentReport{
		Claims:      []entities.Claim{{ID: 1}, {ID: 2}},
		TotalHours:  decimal.RequireFromString("14.5"),
		TotalAmount: decimal.RequireFromString("1450.35"),
	}
	res := FromPaymentReport(r)
	if res.ClaimCount != 2 || res.TotalHours != "14.50" || res.TotalAmount != "1450.35" {
		t.Fatalf("unexpected report: %+v", res)
	}
}

func TestFromPrefill(t *testing.T) {
	res := FromPrefill(entities.SubmissionPrefill{LecturerName: "Ada Lovelace", HourlyRate: decimal.NewFromInt(300), Month: "2026-10"})
	if res.HourlyRate != "300.00" || res.Month != "2026-10" {
		t.Fatalf("unexpected prefill: %+v", res)
	}
}

func TestAmountKeepsSubCentDigits(t *testing.T) {
	if got := amount(decimal.RequireFromString("12.25").Mul(decimal.RequireFromString("450.55"))); got != "5519.2375" {
		t.Fatalf("unexpected amount: %s", got)
	}
	if got := amount(decimal.NewFromInt(4505)); got != "4505.00" {
		t.Fatalf("unexpected amount: %s", got)
	}
}
