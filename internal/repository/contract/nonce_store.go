package contract

import (
	"context"
	"time"
)

// NonceStore keeps the CSRF nonce issued to a wallet until it is consumed.
type NonceStore interface {
	Save(ctx context.Context, wallet, nonce string, ttl time.Duration) error
	Get(ctx context.Context, wallet string) (string, bool, error)
	Delete(ctx context.Context, wallet string) error
}
