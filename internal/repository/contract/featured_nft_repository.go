package contract

import (
	"context"

	"rude-dashboard-be/internal/entity"
)

type FeaturedNFTRepository interface {
	// FindRandom returns one featured NFT picked at random, or nil when none exist.
	FindRandom(ctx context.Context) (*entity.FeaturedNFT, error)
	// Upsert records mint as featured for wallet, keyed by mint.
	Upsert(ctx context.Context, featured *entity.FeaturedNFT) error
}
