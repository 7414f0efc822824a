package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"
)

// IClaimUseCase is the claim lifecycle engine.
//
// Every mutation checks the caller role first and never writes partially:
//   - submit => Lecturer; status Pending, amount recomputed, document vaulted
//   - approve/reject => Manager, Programme Coordinator; only from Pending
//   - update => Manager, Programme Coordinator, HR; amount recomputed here
//   - delete => Manager, Programme Coordinator; cascades to the document
type IClaimUseCase interface {
	SubmitClaim(ctx context.Context, caller entities.Caller, sub entities.ClaimSubmission) (entities.Claim, error)
	PrefillSubmission(ctx context.Context, caller entities.Caller) (entities.SubmissionPrefill, error)
	ApproveClaim(ctx context.Context, caller entities.Caller, id int64) (entities.Claim, error)
	RejectClaim(ctx context.Context, caller entities.Caller, id int64) (entities.Claim, error)
	UpdateClaim(ctx context.Context, caller entities.Caller, id int64, upd entities.ClaimUpdate) (entities.Claim, error)
	DeleteClaim(ctx context.Context, caller entities.Caller, id int64) (bool, error)
}

type ClaimUseCase struct {
	repo     interfaces.IClaimRepository
	identity interfaces.IIdentityDirectory
	vault    IDocumentVault
	now      func() time.Time
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(repo interfaces.IClaimRepository, identity interfaces.IIdentityDirectory, vault IDocumentVault) *ClaimUseCase {
	return &ClaimUseCase{repo: repo, identity: identity, vault: vault, now: time.Now}
}

func (u *ClaimUseCase) SubmitClaim(ctx context.Context, caller entities.Caller, sub entities.ClaimSubmission) (entities.Claim, error) {
	if !caller.HasAnyRole(entities.SubmitterRoles...) {
		return entities.Claim{}, ErrForbidden
	}

	profile, err := u.profileFor(ctx, caller.Username)
	if err != nil {
		return entities.Claim{}, err
	}

	// Name and rate always come from the directory, whatever the client sent.
	sub.LecturerName = profile.FullName()
	sub.HourlyRate = profile.HourlyRate
	if err := ValidateSubmission(caller.Username, sub); err != nil {
		return entities.Claim{}, err
	}

	now := u.now().UTC()
	claim := entities.Claim{
		SubmittedBy:  caller.Username,
		LecturerName: sub.LecturerName,
		Programme:    strings.TrimSpace(sub.Programme),
		Month:        strings.TrimSpace(sub.Month),
		HoursWorked:  sub.HoursWorked,
		HourlyRate:   sub.HourlyRate,
		Status:       entities.ClaimStatusPending,
		Notes:        strings.TrimSpace(sub.Notes),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	claim.RecomputeAmount()

	if !sub.Document.IsEmpty() {
		ref, err := u.vault.Store(ctx, sub.Document.Filename, sub.Document.Content)
		if err != nil {
			return entities.Claim{}, err
		}
		claim.DocumentRef = ref
	}

	created, err := u.repo.Create(ctx, claim)
	if err != nil {
		log.Printf("[claim][usecase] create failed submitted_by=%s err=%v", caller.Username, err)
		if claim.HasDocument() {
			if rmErr := u.vault.Remove(ctx, claim.DocumentRef); rmErr != nil {
				log.Printf("[claim][usecase] orphan document ref=%s err=%v", claim.DocumentRef, rmErr)
			}
		}
		return entities.Claim{}, err
	}

	log.Printf("[claim][usecase] submitted claim_id=%d submitted_by=%s amount=%s has_document=%t",
		created.ID, created.SubmittedBy, created.Amount.String(), created.HasDocument())
	return created, nil
}

func (u *ClaimUseCase) PrefillSubmission(ctx context.Context, caller entities.Caller) (entities.SubmissionPrefill, error) {
	if !caller.HasAnyRole(entities.SubmitterRoles...) {
		return entities.SubmissionPrefill{}, ErrForbidden
	}
	profile, err := u.profileFor(ctx, caller.Username)
	if err != nil {
		return entities.SubmissionPrefill{}, err
	}
	return entities.SubmissionPrefill{
		LecturerName: profile.FullName(),
		HourlyRate:   profile.HourlyRate,
		Month:        u.now().UTC().Format(monthLayout),
	}, nil
}

func (u *ClaimUseCase) ApproveClaim(ctx context.Context, caller entities.Caller, id int64) (entities.Claim, error) {
	return u.decide(ctx, caller, id, entities.ClaimStatusApproved)
}

func (u *ClaimUseCase) RejectClaim(ctx context.Context, caller entities.Caller, id int64) (entities.Claim, error) {
	return u.decide(ctx, caller, id, entities.ClaimStatusRejected)
}

// decide moves a Pending claim to a terminal state. Repeating the decision the
// claim already carries is a no-op; flipping a terminal decision is not allowed.
func (u *ClaimUseCase) decide(ctx context.Context, caller entities.Caller, id int64, target entities.ClaimStatus) (entities.Claim, error) {
	if !caller.HasAnyRole(entities.ApproverRoles...) {
		return entities.Claim{}, ErrForbidden
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if current.Status == target {
		return current, nil
	}
	if !current.Status.CanTransitionTo(target) {
		log.Printf("[claim][usecase] transition refused claim_id=%d from=%s to=%s", id, current.Status, target)
		return entities.Claim{}, ErrInvalidTransition
	}

	next := current
	next.Status = target
	saved, err := u.save(ctx, next, current.Version)
	if err != nil {
		return entities.Claim{}, err
	}

	log.Printf("[claim][usecase] decision claim_id=%d status=%s caller=%s", id, target, caller.Username)
	return saved, nil
}

func (u *ClaimUseCase) UpdateClaim(ctx context.Context, caller entities.Caller, id int64, upd entities.ClaimUpdate) (entities.Claim, error) {
	if !caller.HasAnyRole(entities.EditorRoles...) {
		return entities.Claim{}, ErrForbidden
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	expected := current.Version
	if upd.ExpectedVersion != 0 {
		if upd.ExpectedVersion != current.Version {
			return entities.Claim{}, ErrClaimConflict
		}
		expected = upd.ExpectedVersion
	}

	next := current
	next.LecturerName = strings.TrimSpace(upd.LecturerName)
	next.Programme = strings.TrimSpace(upd.Programme)
	next.HoursWorked = upd.HoursWorked
	next.HourlyRate = upd.HourlyRate
	next.Notes = strings.TrimSpace(upd.Notes)
	if upd.Status != "" {
		next.Status = upd.Status
	}
	next.RecomputeAmount()

	if err := ValidateClaim(next); err != nil {
		return entities.Claim{}, err
	}
	if !current.Status.CanTransitionTo(next.Status) {
		return entities.Claim{}, ErrInvalidTransition
	}

	saved, err := u.save(ctx, next, expected)
	if err != nil {
		return entities.Claim{}, err
	}

	log.Printf("[claim][usecase] updated claim_id=%d status=%s amount=%s caller=%s",
		id, saved.Status, saved.Amount.String(), caller.Username)
	return saved, nil
}

// DeleteClaim reports false, not an error, when the claim does not exist.
func (u *ClaimUseCase) DeleteClaim(ctx context.Context, caller entities.Caller, id int64) (bool, error) {
	if !caller.HasAnyRole(entities.ApproverRoles...) {
		return false, ErrForbidden
	}
	if id <= 0 {
		return false, ErrInvalidClaimID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted.ID == 0 {
		return false, nil
	}

	if deleted.HasDocument() {
		if err := u.vault.Remove(ctx, deleted.DocumentRef); err != nil {
			log.Printf("[claim][usecase] document cleanup failed claim_id=%d ref=%s err=%v", id, deleted.DocumentRef, err)
		}
	}

	log.Printf("[claim][usecase] deleted claim_id=%d caller=%s", id, caller.Username)
	return true, nil
}

func (u *ClaimUseCase) profileFor(ctx context.Context, username string) (entities.SubmitterProfile, error) {
	if strings.TrimSpace(username) == "" {
		return entities.SubmitterProfile{}, ErrSubmitterNotFound
	}
	profile, err := u.identity.GetProfile(ctx, username)
	if err != nil {
		return entities.SubmitterProfile{}, err
	}
	if profile.Username == "" {
		log.Printf("[identity][usecase] profile not found username=%s", username)
		return entities.SubmitterProfile{}, ErrSubmitterNotFound
	}
	return profile, nil
}

func (u *ClaimUseCase) load(ctx context.Context, id int64) (entities.Claim, error) {
	if id <= 0 {
		return entities.Claim{}, ErrInvalidClaimID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

// save bumps the version and writes next only if the stored row still has
// expectedVersion.
func (u *ClaimUseCase) save(ctx context.Context, next entities.Claim, expectedVersion int64) (entities.Claim, error) {
	next.Version = expectedVersion + 1
	next.UpdatedAt = u.now().UTC()

	saved, err := u.repo.Update(ctx, next, expectedVersion)
	if errors.Is(err, interfaces.ErrVersionConflict) {
		log.Printf("[claim][usecase] version conflict claim_id=%d expected=%d", next.ID, expectedVersion)
		return entities.Claim{}, ErrClaimConflict
	}
	if err != nil {
		return entities.Claim{}, err
	}
	if saved.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	return saved, nil
}
