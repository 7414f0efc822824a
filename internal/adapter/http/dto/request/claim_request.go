package request

import (
	"errors"
	"strings"

	"contract_monthly_claim/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrHoursRequired = errors.New("hours worked is required")
	ErrInvalidHours  = errors.New("hours worked must be a number")
)

// ClaimSubmissionForm is the multipart form a lecturer posts. lecturer_name and
// hourly_rate are accepted for form compatibility but never used: both come
// from the lecturer's profile.
type ClaimSubmissionForm struct {
	Programme    string `form:"programme"`
	Month        string `form:"month"`
	HoursWorked  string `form:"hours_worked"`
	Notes        string `form:"notes"`
	LecturerName string `form:"lecturer_name"`
	HourlyRate   string `form:"hourly_rate"`
}

func (f ClaimSubmissionForm) ResolveHours() (decimal.Decimal, error) {
	raw := strings.TrimSpace(f.HoursWorked)
	if raw == "" {
		return decimal.Zero, ErrHoursRequired
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidHours
	}
	return d, nil
}

// ToSubmission builds the domain submission. An hours value that cannot be
// read is carried as a field message so the validator reports it together
// with everything else.
func (f ClaimSubmissionForm) ToSubmission(doc *entities.DocumentUpload) entities.ClaimSubmission {
	sub := entities.ClaimSubmission{
		Programme: f.Programme,
		Month:     strings.TrimSpace(f.Month),
		Notes:     f.Notes,
		Document:  doc,
	}
	hours, err := f.ResolveHours()
	switch {
	case errors.Is(err, ErrHoursRequired):
		sub.HoursInputError = "Hours worked is required."
	case err != nil:
		sub.HoursInputError = "Hours worked must be a number."
	default:
		sub.HoursWorked = hours
	}
	return sub
}

// ClaimUpdateRequest is the staff edit payload. There is no amount field: the
// server always recomputes it.
type ClaimUpdateRequest struct {
	LecturerName string           `json:"lecturer_name" binding:"required"`
	Programme    string           `json:"programme" binding:"required"`
	HoursWorked  *decimal.Decimal `json:"hours_worked" binding:"required"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate" binding:"required"`
	Notes        string           `json:"notes"`
	Status       string           `json:"status"`
	Version      int64            `json:"version"`
}

func (r ClaimUpdateRequest) ToUpdate() (entities.ClaimUpdate, error) {
	upd := entities.ClaimUpdate{
		LecturerName:    r.LecturerName,
		Programme:       r.Programme,
		Notes:           r.Notes,
		ExpectedVersion: r.Version,
	}
	if r.HoursWorked != nil {
		upd.HoursWorked = *r.HoursWorked
	}
	if r.HourlyRate != nil {
		upd.HourlyRate = *r.HourlyRate
	}
	if strings.TrimSpace(r.Status) != "" {
		status, err := entities.ParseClaimStatus(r.Status)
		if err != nil {
			return entities.ClaimUpdate{}, err
		}
		upd.Status = status
	}
	return upd, nil
}
