package usecase

import (
	"path/filepath"
	"strings"
	"time"

	"contract_monthly_claim/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	MaxDocumentSize = 5 * 1024 * 1024
	monthLayout     = "2006-01"
	maxFraction     = 2
)

var (
	MaxHoursPerMonth = decimal.NewFromInt(180)

	allowedDocumentExtensions = map[string]bool{
		".pdf":  true,
		".docx": true,
		".xlsx": true,
	}
)

// ValidateSubmission checks a submission after the lecturer fields have been
// overwritten from the profile. Every violation is collected.
func ValidateSubmission(submittedBy string, sub entities.ClaimSubmission) error {
	v := &ValidationError{}

	if strings.TrimSpace(submittedBy) == "" {
		v.add("submitted_by", "Submitter identity could not be resolved.")
	}
	hours := sub.HoursWorked
	if sub.HoursInputError != "" {
		v.add("hours_worked", sub.HoursInputError)
		hours = decimal.Zero
	}
	validateClaimFields(v, sub.LecturerName, sub.Programme, hours, sub.HourlyRate)

	month := strings.TrimSpace(sub.Month)
	if month == "" {
		v.add("month", "Month is required.")
	} else if _, err := time.Parse(monthLayout, month); err != nil {
		v.add("month", "Month must be in YYYY-MM format.")
	}

	if !sub.Document.IsEmpty() {
		validateDocument(v, *sub.Document)
	}
	return v.errOrNil()
}

// ValidateClaim checks the editable fields of a stored claim before an update
// is written.
func ValidateClaim(c entities.Claim) error {
	v := &ValidationError{}
	validateClaimFields(v, c.LecturerName, c.Programme, c.HoursWorked, c.HourlyRate)
	if !c.Status.Valid() {
		v.add("status", "Status must be Pending, Approved or Rejected.")
	}
	return v.errOrNil()
}

func validateClaimFields(v *ValidationError, lecturerName, programme string, hours, rate decimal.Decimal) {
	if strings.TrimSpace(lecturerName) == "" {
		v.add("lecturer_name", "Lecturer name is required.")
	}
	if strings.TrimSpace(programme) == "" {
		v.add("programme", "Programme is required.")
	}

	switch {
	case hours.IsNegative():
		v.add("hours_worked", "Hours worked cannot be negative.")
	case hours.GreaterThan(MaxHoursPerMonth):
		v.add("hours_worked", "Hours worked cannot exceed 180 hours per month.")
	case !hasAtMostFraction(hours, maxFraction):
		v.add("hours_worked", "Hours worked can have at most two decimal places.")
	}

	switch {
	case rate.IsNegative():
		v.add("hourly_rate", "Hourly rate cannot be negative.")
	case !hasAtMostFraction(rate, maxFraction):
		v.add("hourly_rate", "Hourly rate can have at most two decimal places.")
	}
}

func validateDocument(v *ValidationError, doc entities.DocumentUpload) {
	if doc.Size() > MaxDocumentSize {
		v.add("document", "The file size cannot exceed 5 MB.")
	}
	if !allowedDocumentExtensions[strings.ToLower(filepath.Ext(doc.Filename))] {
		v.add("document", "Invalid file type. Only .pdf, .docx, and .xlsx are allowed.")
	}
}

func hasAtMostFraction(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
