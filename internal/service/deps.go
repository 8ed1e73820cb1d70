package service

import (
	"context"

	"rude-dashboard-be/pkg/cdn"
	"rude-dashboard-be/pkg/events"
	"rude-dashboard-be/pkg/solana"
)

// ChainReader is the slice of the Solana client the services depend on.
type ChainReader interface {
	FetchMetadata(ctx context.Context, mint string) (*solana.OnChainMetadata, *solana.OffChainMetadata, error)
	SignatureStatus(ctx context.Context, signature string) (solana.SignatureState, error)
	FetchPayment(ctx context.Context, signature string) (*solana.Payment, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type AssetUploader = cdn.Uploader
