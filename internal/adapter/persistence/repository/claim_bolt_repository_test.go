package repository_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"contract_monthly_claim/internal/adapter/persistence/repository"
	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestBoltRepo(t *testing.T) *repository.ClaimBoltRepository {
	t.Helper()
	r, err := repository.NewClaimBoltRepository(filepath.Join(t.TempDir(), "claims.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func newClaim(submittedBy string, status entities.ClaimStatus) entities.Claim {
	c := entities.Claim{
		SubmittedBy:  submittedBy,
		LecturerName: "Lecturer " + submittedBy,
		Programme:    "BSc",
		Month:        "2026-09",
		HoursWorked:  decimal.RequireFromString("12.5"),
		HourlyRate:   decimal.RequireFromString("450.50"),
		Status:       status,
		Version:      1,
	}
	c.RecomputeAmount()
	return c
}

func TestClaimBoltRepository_CreateAndGet(t *testing.T) {
	r := newTestBoltRepo(t)
	ctx := context.Background()

	empty, err := r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	a, err := r.Create(ctx, newClaim("ada", entities.ClaimStatusPending))
	require.NoError(t, err)
	b, err := r.Create(ctx, newClaim("bob", entities.ClaimStatusPending))
	require.NoError(t, err)
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)

	got, err := r.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "ada", got.SubmittedBy)
	require.True(t, got.Amount.Equal(decimal.RequireFromString("5631.25")))

	missing, err := r.GetByID(ctx, 99)
	require.NoError(t, err)
	require.Zero(t, missing.ID)
}

func TestClaimBoltRepository_Filters(t *testing.T) {
	r := newTestBoltRepo(t)
	ctx := context.Background()

	for _, c := range []entities.Claim{
		newClaim("ada", entities.ClaimStatusPending),
		newClaim("bob", entities.ClaimStatusApproved),
		newClaim("ada", entities.ClaimStatusApproved),
		newClaim("ada", entities.ClaimStatusRejected),
	} {
		_, err := r.Create(ctx, c)
		require.NoError(t, err)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, int64(1), all[0].ID)
	require.Equal(t, int64(4), all[3].ID)

	approved, err := r.ListByStatus(ctx, entities.ClaimStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 2)
	require.Equal(t, int64(2), approved[0].ID)
	require.Equal(t, int64(3), approved[1].ID)

	mine, err := r.ListBySubmitter(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	require.Equal(t, []int64{4, 3, 1}, []int64{mine[0].ID, mine[1].ID, mine[2].ID})

	none, err := r.ListBySubmitter(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestClaimBoltRepository_UpdateVersioned(t *testing.T) {
	r := newTestBoltRepo(t)
	ctx := context.Background()

	c, err := r.Create(ctx, newClaim("ada", entities.ClaimStatusPending))
	require.NoError(t, err)

	next := c
	next.Status = entities.ClaimStatusApproved
	next.Version = 2
	saved, err := r.Update(ctx, next, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), saved.Version)

	stale := c
	stale.Status = entities.ClaimStatusRejected
	stale.Version = 2
	_, err = r.Update(ctx, stale, 1)
	require.ErrorIs(t, err, interfaces.ErrVersionConflict)

	got, err := r.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ClaimStatusApproved, got.Status)

	ghost := c
	ghost.ID = 42
	missing, err := r.Update(ctx, ghost, 1)
	require.NoError(t, err)
	require.Zero(t, missing.ID)
}

func TestClaimBoltRepository_ConcurrentUpdatesOneWins(t *testing.T) {
	r := newTestBoltRepo(t)
	ctx := context.Background()

	c, err := r.Create(ctx, newClaim("ada", entities.ClaimStatusPending))
	require.NoError(t, err)

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := c
			next.Version = 2
			_, err := r.Update(ctx, next, 1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if err == interfaces.ErrVersionConflict {
				conflicts++
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
	require.Equal(t, writers-1, conflicts)
}

func TestClaimBoltRepository_Delete(t *testing.T) {
	r := newTestBoltRepo(t)
	ctx := context.Background()

	c := newClaim("ada", entities.ClaimStatusPending)
	c.DocumentRef = "abc.pdf"
	c, err := r.Create(ctx, c)
	require.NoError(t, err)

	deleted, err := r.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "abc.pdf", deleted.DocumentRef)

	again, err := r.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.Zero(t, again.ID)

	next, err := r.Create(ctx, newClaim("ada", entities.ClaimStatusPending))
	require.NoError(t, err)
	require.Equal(t, c.ID+1, next.ID, "ids are never reused")
}
