package response

import (
	"time"

	"contract_monthly_claim/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Decimal values are rendered as strings so clients never see float drift.
type ClaimResponse struct {
	ID           int64     `json:"id"`
	SubmittedBy  string    `json:"submitted_by"`
	LecturerName string    `json:"lecturer_name"`
	Programme    string    `json:"programme"`
	Month        string    `json:"month"`
	HoursWorked  string    `json:"hours_worked"`
	HourlyRate   string    `json:"hourly_rate"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	HasDocument  bool      `json:"has_document"`
	DocumentRef  string    `json:"document_ref,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ID:           c.ID,
		SubmittedBy:  c.SubmittedBy,
		LecturerName: c.LecturerName,
		Programme:    c.Programme,
		Month:        c.Month,
		HoursWorked:  c.HoursWorked.StringFixed(2),
		HourlyRate:   c.HourlyRate.StringFixed(2),
		Amount:       amount(c.Amount),
		Status:       string(c.Status),
		HasDocument:  c.HasDocument(),
		DocumentRef:  c.DocumentRef,
		Notes:        c.Notes,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}

type SubmissionPrefillResponse struct {
	LecturerName string `json:"lecturer_name"`
	HourlyRate   string `json:"hourly_rate"`
	Month        string `json:"month"`
}

func FromPrefill(p entities.SubmissionPrefill) SubmissionPrefillResponse {
	return SubmissionPrefillResponse{
		LecturerName: p.LecturerName,
		HourlyRate:   p.HourlyRate.StringFixed(2),
		Month:        p.Month,
	}
}

type PaymentReportResponse struct {
	Claims      []ClaimResponse `json:"claims"`
	ClaimCount  int             `json:"claim_count"`
	TotalHours  string          `json:"total_hours"`
	TotalAmount string          `json:"total_amount"`
	GeneratedAt time.Time       `json:"generated_at"`
}

func FromPaymentReport(r entities.PaymentReport) PaymentReportResponse {
	return PaymentReportResponse{
		Claims:      FromClaims(r.Claims),
		ClaimCount:  len(r.Claims),
		TotalHours:  r.TotalHours.StringFixed(2),
		TotalAmount: amount(r.TotalAmount),
		GeneratedAt: r.GeneratedAt,
	}
}

// amount shows at least two decimals and never rounds away the sub-cent digits
// an exact hours x rate product can carry.
func amount(d decimal.Decimal) string {
	if !d.Equal(d.Round(2)) {
		return d.String()
	}
	return d.StringFixed(2)
}
