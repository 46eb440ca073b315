//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "List=List"
package revocation

import (
	"context"
	"time"
)

// List remembers revoked token ids until the tokens expire on their own.
type List interface {
	Revoke(ctx context.Context, tokenID string, till time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
