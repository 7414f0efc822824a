package interfaces

import (
	"context"

	"contract_monthly_claim/internal/domain/entities"
)

// IIdentityDirectory is the read-only view over the external identity service.
// An unknown username yields a zero-valued profile.
type IIdentityDirectory interface {
	GetProfile(ctx context.Context, username string) (entities.SubmitterProfile, error)
}
