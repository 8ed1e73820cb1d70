package contract

import (
	"context"

	"rude-dashboard-be/internal/entity"
)

type NFTMetadataRepository interface {
	FindByMint(ctx context.Context, mint string) (*entity.NFTMetadata, error)
	FindByMints(ctx context.Context, mints []string) ([]*entity.NFTMetadata, error)
	Upsert(ctx context.Context, metadata *entity.NFTMetadata) error
}
