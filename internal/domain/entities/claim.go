package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus represents the lifecycle of a lecturer claim.
//
// Domain notes:
//   - Pending is the only initial state.
//   - Approved and Rejected are terminal; a re-submission is a new claim.
//   - Transitions are checked against claimTransitions, never assigned freely.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusRejected ClaimStatus = "Rejected"
)

var ErrUnknownClaimStatus = errors.New("unknown claim status")

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusPending:  {ClaimStatusApproved, ClaimStatusRejected},
	ClaimStatusApproved: {},
	ClaimStatusRejected: {},
}

// ParseClaimStatus accepts the canonical names case-insensitively.
func ParseClaimStatus(raw string) (ClaimStatus, error) {
	v := strings.TrimSpace(raw)
	for s := range claimTransitions {
		if strings.EqualFold(string(s), v) {
			return s, nil
		}
	}
	return "", ErrUnknownClaimStatus
}

func (s ClaimStatus) Valid() bool {
	_, ok := claimTransitions[s]
	return ok
}

func (s ClaimStatus) IsTerminal() bool {
	return s.Valid() && len(claimTransitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Staying in the same state is always allowed (no-op).
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range claimTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Claim is a lecturer's monthly hours claim.
//
// Storage model:
//   - DynamoDB: PK id (number), GSI submitted_by-index (PK submitted_by)
//   - Bolt: bucket "claims", key = big-endian id
//
// Monetary representation:
//   - HoursWorked and HourlyRate carry at most two fractional digits.
//   - Amount is always HoursWorked × HourlyRate, computed server-side and kept exact.
type Claim struct {
	ID           int64           `json:"id"`
	SubmittedBy  string          `json:"submitted_by"`
	LecturerName string          `json:"lecturer_name"`
	Programme    string          `json:"programme"`
	Month        string          `json:"month"`
	HoursWorked  decimal.Decimal `json:"hours_worked"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Amount       decimal.Decimal `json:"amount"`
	Status       ClaimStatus     `json:"status"`
	DocumentRef  string          `json:"document_ref,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RecomputeAmount sets Amount from the current hours and rate.
func (c *Claim) RecomputeAmount() {
	c.Amount = c.HoursWorked.Mul(c.HourlyRate)
}

func (c Claim) HasDocument() bool {
	return c.DocumentRef != ""
}

// ClaimSubmission is the payload a lecturer sends. LecturerName and HourlyRate
// are overwritten from the SubmitterProfile before validation.
type ClaimSubmission struct {
	LecturerName string
	Programme    string
	Month        string
	HoursWorked  decimal.Decimal
	HourlyRate   decimal.Decimal
	Notes        string
	Document     *DocumentUpload

	// HoursInputError is set when the raw hours value could not be read at
	// all; it is reported alongside every other field error.
	HoursInputError string
}

// ClaimUpdate is the approver/HR edit payload. Amount is not part of it on
// purpose: the engine recomputes it.
type ClaimUpdate struct {
	LecturerName    string
	Programme       string
	HoursWorked     decimal.Decimal
	HourlyRate      decimal.Decimal
	Notes           string
	Status          ClaimStatus
	ExpectedVersion int64
}

// PaymentReport is the HR view over approved claims.
type PaymentReport struct {
	Claims      []Claim         `json:"claims"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// SubmissionPrefill holds the values shown on a fresh claim form.
type SubmissionPrefill struct {
	LecturerName string          `json:"lecturer_name"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Month        string          `json:"month"`
}
