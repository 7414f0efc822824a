package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IClaimQueryUseCase is the read side over the claim set. No pagination: each
// call returns the full matching set.
type IClaimQueryUseCase interface {
	GetClaims(ctx context.Context) ([]entities.Claim, error)
	GetPendingClaims(ctx context.Context) ([]entities.Claim, error)
	GetApprovedClaims(ctx context.Context) ([]entities.Claim, error)
	GetClaimsByLecturer(ctx context.Context, username string) ([]entities.Claim, error)
	GetClaimByID(ctx context.Context, id int64) (entities.Claim, bool, error)
	GetPaymentReport(ctx context.Context, caller entities.Caller) (entities.PaymentReport, error)
	OpenClaimDocument(ctx context.Context, caller entities.Caller, id int64) (entities.Document, error)
}

type ClaimQueryUseCase struct {
	repo  interfaces.IClaimRepository
	vault IDocumentVault
	now   func() time.Time
}

var _ IClaimQueryUseCase = (*ClaimQueryUseCase)(nil)

func NewClaimQueryUseCase(repo interfaces.IClaimRepository, vault IDocumentVault) *ClaimQueryUseCase {
	return &ClaimQueryUseCase{repo: repo, vault: vault, now: time.Now}
}

// GetClaims keeps the storage order (ascending id).
func (u *ClaimQueryUseCase) GetClaims(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.List(ctx)
}

func (u *ClaimQueryUseCase) GetPendingClaims(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.ListByStatus(ctx, entities.ClaimStatusPending)
}

func (u *ClaimQueryUseCase) GetApprovedClaims(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.ListByStatus(ctx, entities.ClaimStatusApproved)
}

// GetClaimsByLecturer returns the submitter's claims, most recent id first.
func (u *ClaimQueryUseCase) GetClaimsByLecturer(ctx context.Context, username string) ([]entities.Claim, error) {
	claims, err := u.repo.ListBySubmitter(ctx, username)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(claims, func(i, j int) bool { return claims[i].ID > claims[j].ID })
	return claims, nil
}

// GetClaimByID reports absence through the bool, never as an error.
func (u *ClaimQueryUseCase) GetClaimByID(ctx context.Context, id int64) (entities.Claim, bool, error) {
	if id <= 0 {
		return entities.Claim{}, false, nil
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, false, err
	}
	return c, c.ID != 0, nil
}

func (u *ClaimQueryUseCase) GetPaymentReport(ctx context.Context, caller entities.Caller) (entities.PaymentReport, error) {
	if !caller.HasAnyRole(entities.ReportRoles...) {
		return entities.PaymentReport{}, ErrForbidden
	}
	claims, err := u.GetApprovedClaims(ctx)
	if err != nil {
		return entities.PaymentReport{}, err
	}

	report := entities.PaymentReport{
		Claims:      claims,
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
		GeneratedAt: u.now().UTC(),
	}
	for _, c := range claims {
		report.TotalHours = report.TotalHours.Add(c.HoursWorked)
		report.TotalAmount = report.TotalAmount.Add(c.Amount)
	}

	log.Printf("[claim][usecase] payment report caller=%s claims=%d total=%s",
		caller.Username, len(claims), report.TotalAmount.String())
	return report, nil
}

// OpenClaimDocument decrypts a claim's attachment for its submitter or for
// staff.
func (u *ClaimQueryUseCase) OpenClaimDocument(ctx context.Context, caller entities.Caller, id int64) (entities.Document, error) {
	if id <= 0 {
		return entities.Document{}, ErrInvalidClaimID
	}
	c, found, err := u.GetClaimByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !found {
		return entities.Document{}, ErrClaimNotFound
	}
	if c.SubmittedBy != caller.Username && !caller.IsStaff() {
		return entities.Document{}, ErrForbidden
	}
	if !c.HasDocument() {
		return entities.Document{}, ErrDocumentNotFound
	}
	return u.vault.Retrieve(ctx, c.DocumentRef)
}
