package usecase

import (
	"errors"
	"testing"

	"contract_monthly_claim/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func validSubmission() entities.ClaimSubmission {
	return entities.ClaimSubmission{
		LecturerName: "Ada Lovelace",
		Programme:    "BSc Computer Science",
		Month:        "2026-09",
		HoursWorked:  decimal.RequireFromString("180"),
		HourlyRate:   decimal.RequireFromString("450.50"),
	}
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrClaimValidation) {
		t.Fatalf("expected ErrClaimValidation in chain")
	}
	out := map[string][]string{}
	for _, f := range verr.Fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

func TestValidateSubmission(t *testing.T) {
	t.Run("valid at the 180 hour cap", func(t *testing.T) {
		if err := ValidateSubmission("ada", validSubmission()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("181 hours rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.HoursWorked = decimal.RequireFromString("181")
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if got := fields["hours_worked"]; len(got) != 1 || got[0] != "Hours worked cannot exceed 180 hours per month." {
			t.Fatalf("unexpected hours errors: %v", got)
		}
	})

	t.Run("fractional hours just over the cap rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.HoursWorked = decimal.RequireFromString("180.01")
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if len(fields["hours_worked"]) != 1 {
			t.Fatalf("expected hours error, got %v", fields)
		}
	})

	t.Run("negative and over-precise numbers", func(t *testing.T) {
		sub := validSubmission()
		sub.HoursWorked = decimal.RequireFromString("-1")
		sub.HourlyRate = decimal.RequireFromString("10.005")
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if len(fields["hours_worked"]) != 1 || len(fields["hourly_rate"]) != 1 {
			t.Fatalf("expected hours and rate errors, got %v", fields)
		}
	})

	t.Run("document of 4 MiB pdf accepted", func(t *testing.T) {
		sub := validSubmission()
		sub.Document = &entities.DocumentUpload{Filename: "timesheet.PDF", Content: make([]byte, 4*1024*1024)}
		if err := ValidateSubmission("ada", sub); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("document of 6 MiB rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Document = &entities.DocumentUpload{Filename: "timesheet.xlsx", Content: make([]byte, 6*1024*1024)}
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if got := fields["document"]; len(got) != 1 || got[0] != "The file size cannot exceed 5 MB." {
			t.Fatalf("unexpected document errors: %v", got)
		}
	})

	t.Run("declared size counts even when bytes are short", func(t *testing.T) {
		sub := validSubmission()
		sub.Document = &entities.DocumentUpload{Filename: "a.docx", Content: []byte("x"), DeclaredSize: MaxDocumentSize + 1}
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if len(fields["document"]) != 1 {
			t.Fatalf("expected size error, got %v", fields)
		}
	})

	t.Run("txt rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Document = &entities.DocumentUpload{Filename: "notes.txt", Content: []byte("hello")}
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if got := fields["document"]; len(got) != 1 || got[0] != "Invalid file type. Only .pdf, .docx, and .xlsx are allowed." {
			t.Fatalf("unexpected document errors: %v", got)
		}
	})

	t.Run("empty document is treated as absent", func(t *testing.T) {
		sub := validSubmission()
		sub.Document = &entities.DocumentUpload{Filename: "notes.txt"}
		if err := ValidateSubmission("ada", sub); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("all violations accumulated", func(t *testing.T) {
		sub := entities.ClaimSubmission{
			Month:       "09/2026",
			HoursWorked: decimal.RequireFromString("200"),
			Document:    &entities.DocumentUpload{Filename: "big.exe", Content: make([]byte, 6*1024*1024)},
		}
		fields := fieldsOf(t, ValidateSubmission(" ", sub))
		for _, f := range []string{"submitted_by", "lecturer_name", "programme", "month", "hours_worked"} {
			if len(fields[f]) != 1 {
				t.Fatalf("expected one error for %s, got %v", f, fields)
			}
		}
		if len(fields["document"]) != 2 {
			t.Fatalf("expected size and type errors, got %v", fields["document"])
		}
	})

	t.Run("missing month", func(t *testing.T) {
		sub := validSubmission()
		sub.Month = ""
		fields := fieldsOf(t, ValidateSubmission("ada", sub))
		if got := fields["month"]; len(got) != 1 || got[0] != "Month is required." {
			t.Fatalf("unexpected month errors: %v", got)
		}
	})
}

func TestValidateSubmission_UnreadableHoursCollectedWithOthers(t *testing.T) {
	sub := validSubmission()
	sub.HoursWorked = decimal.RequireFromString("999")
	sub.HoursInputError = "Hours worked must be a number."
	sub.Programme = ""
	sub.Month = "Sept"
	sub.Document = &entities.DocumentUpload{Filename: "notes.txt", Content: []byte("x")}

	fields := fieldsOf(t, ValidateSubmission("ada", sub))
	if got := fields["hours_worked"]; len(got) != 1 || got[0] != "Hours worked must be a number." {
		t.Fatalf("expected only the input message for hours, got %v", got)
	}
	for _, want := range []string{"programme", "month", "document"} {
		if len(fields[want]) == 0 {
			t.Fatalf("missing %s error: %v", want, fields)
		}
	}
}

func TestValidateClaim(t *testing.T) {
	c := entities.Claim{
		LecturerName: "Ada Lovelace",
		Programme:    "BSc",
		HoursWorked:  decimal.RequireFromString("10"),
		HourlyRate:   decimal.RequireFromString("100"),
		Status:       entities.ClaimStatusPending,
	}
	if err := ValidateClaim(c); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	c.Status = "Archived"
	c.HoursWorked = decimal.RequireFromString("181")
	fields := fieldsOf(t, ValidateClaim(c))
	if len(fields["status"]) != 1 || len(fields["hours_worked"]) != 1 {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
