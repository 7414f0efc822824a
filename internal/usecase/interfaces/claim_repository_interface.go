package interfaces

import (
	"context"
	"errors"

	"contract_monthly_claim/internal/domain/entities"
)

// ErrVersionConflict is returned by a repository when the stored claim version
// no longer matches the version the caller read.
var ErrVersionConflict = errors.New("claim version conflict")

// IClaimRepository abstracts claim persistence (DynamoDB or BoltDB).
//
// The claims service must be able to:
//   - create a claim and receive its assigned numeric id
//   - read one claim, all claims, claims by status and claims by submitter
//   - replace a claim guarded by its expected version
//   - delete a claim and learn what was deleted (to cascade its document)
//
// A missing row is reported as a zero-valued Claim (ID == 0), never as an error.
// Update writes c only while the stored version equals expectedVersion and
// returns ErrVersionConflict otherwise. List and ListByStatus return ascending
// ids; ListBySubmitter returns descending ids.

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id int64) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	ListByStatus(ctx context.Context, status entities.ClaimStatus) ([]entities.Claim, error)
	ListBySubmitter(ctx context.Context, username string) ([]entities.Claim, error)
	Update(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error)
	Delete(ctx context.Context, id int64) (entities.Claim, error)
}
