package usecase_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"contract_monthly_claim/internal/adapter/persistence/repository"
	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/infrastructure/encryption"
	"contract_monthly_claim/internal/infrastructure/identity"
	"contract_monthly_claim/internal/infrastructure/storage"
	"contract_monthly_claim/internal/usecase"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const workflowSeed = `users:
  - username: ada
    first_name: Ada
    last_name: Lovelace
    hourly_rate: "50"
`

var (
	ada    = entities.Caller{Username: "ada", Roles: []entities.Role{entities.RoleLecturer}}
	grace  = entities.Caller{Username: "grace", Roles: []entities.Role{entities.RoleManager}}
	hopper = entities.Caller{Username: "hopper", Roles: []entities.Role{entities.RoleHR}}
)

type workflow struct {
	store   *storage.FilesystemContentStore
	vault   *usecase.DocumentVault
	claims  *usecase.ClaimUseCase
	queries *usecase.ClaimQueryUseCase
}

func newWorkflow(t *testing.T) workflow {
	t.Helper()
	dir := t.TempDir()

	repo, err := repository.NewClaimBoltRepository(filepath.Join(dir, "claims.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	seedPath := filepath.Join(dir, "identity.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(workflowSeed), 0o600))
	directory, err := identity.NewFileIdentityDirectory(seedPath)
	require.NoError(t, err)

	key, err := encryption.KeyFromSecret("local passphrase for the document vault")
	require.NoError(t, err)
	cipher, err := encryption.NewAESGCMCipher(key)
	require.NoError(t, err)

	store := storage.NewFilesystemContentStore(filepath.Join(dir, "uploads"))
	vault := usecase.NewDocumentVault(cipher, store)
	return workflow{
		store:   store,
		vault:   vault,
		claims:  usecase.NewClaimUseCase(repo, directory, vault),
		queries: usecase.NewClaimQueryUseCase(repo, vault),
	}
}

func TestDocumentVault_RoundTripOverRealStore(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()
	payload := bytes.Repeat([]byte{0x00, 0xff, 'P', 'D', 'F'}, 4096)

	ref, err := w.vault.Store(ctx, "Timesheet.PDF", payload)
	require.NoError(t, err)
	require.Equal(t, ".pdf", filepath.Ext(ref))

	raw, err := w.store.Get(ctx, ref)
	require.NoError(t, err)
	require.False(t, bytes.Contains(raw, payload[:20]), "blob must not hold plaintext")

	doc, err := w.vault.Retrieve(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, payload, doc.Content)
	require.Equal(t, "application/pdf", doc.ContentType)

	require.NoError(t, w.vault.Remove(ctx, ref))
	_, err = w.vault.Retrieve(ctx, ref)
	require.ErrorIs(t, err, usecase.ErrDocumentNotFound)
}

func TestClaimWorkflow_EndToEnd(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	submitted, err := w.claims.SubmitClaim(ctx, ada, entities.ClaimSubmission{
		Programme:   "BSc Computing",
		Month:       "2026-09",
		HoursWorked: decimal.NewFromInt(10),
		HourlyRate:  decimal.NewFromInt(9999),
		Document:    &entities.DocumentUpload{Filename: "timesheet.pdf", Content: []byte("%PDF-1.7 september")},
	})
	require.NoError(t, err)
	require.Equal(t, entities.ClaimStatusPending, submitted.Status)
	require.True(t, submitted.HourlyRate.Equal(decimal.NewFromInt(50)))
	require.True(t, submitted.Amount.Equal(decimal.NewFromInt(500)))
	require.Equal(t, "Ada Lovelace", submitted.LecturerName)

	doc, err := w.queries.OpenClaimDocument(ctx, ada, submitted.ID)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7 september", string(doc.Content))

	pending, err := w.queries.GetPendingClaims(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, err := w.claims.ApproveClaim(ctx, grace, submitted.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ClaimStatusApproved, approved.Status)

	approvedList, err := w.queries.GetApprovedClaims(ctx)
	require.NoError(t, err)
	require.Len(t, approvedList, 1)
	require.Equal(t, submitted.ID, approvedList[0].ID)

	report, err := w.queries.GetPaymentReport(ctx, hopper)
	require.NoError(t, err)
	require.True(t, report.TotalAmount.Equal(decimal.NewFromInt(500)))

	updated, err := w.claims.UpdateClaim(ctx, hopper, submitted.ID, entities.ClaimUpdate{
		LecturerName: "Ada Lovelace",
		Programme:    "BSc Computing",
		HoursWorked:  decimal.NewFromInt(20),
		HourlyRate:   decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.True(t, updated.Amount.Equal(decimal.NewFromInt(1000)))
	require.Equal(t, entities.ClaimStatusApproved, updated.Status)

	deleted, err := w.claims.DeleteClaim(ctx, grace, submitted.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, found, err := w.queries.GetClaimByID(ctx, submitted.ID)
	require.NoError(t, err)
	require.False(t, found)
	_, err = w.store.Get(ctx, submitted.DocumentRef)
	require.ErrorIs(t, err, interfaces.ErrBlobNotFound)

	second, err := w.claims.SubmitClaim(ctx, ada, entities.ClaimSubmission{
		Programme:   "BSc Computing",
		Month:       "2026-10",
		HoursWorked: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	require.NotEqual(t, submitted.ID, second.ID)

	rejected, err := w.claims.RejectClaim(ctx, grace, second.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ClaimStatusRejected, rejected.Status)

	pending, err = w.queries.GetPendingClaims(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}
