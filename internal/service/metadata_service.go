package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/metrics"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/repository/contract"
	"rude-dashboard-be/internal/repository/memory"
	"rude-dashboard-be/pkg/solana"
)

const chainLookupConcurrency = 8

type IMetadataService interface {
	// Resolve returns nil, nil when the mint is unknown everywhere.
	Resolve(ctx context.Context, mint string) (*entity.NFTMetadata, error)
	// ResolveMany looks every distinct mint up once. Unknown mints are
	// absent from the result.
	ResolveMany(ctx context.Context, mints []string) (map[string]*entity.NFTMetadata, error)
	Save(ctx context.Context, metadata *entity.NFTMetadata) error
}

type metadataService struct {
	repo    contract.NFTMetadataRepository
	cache   *memory.MetadataCache
	chain   ChainReader
	metrics *metrics.Metrics
	logger  logger.ILogger
}

func NewMetadataService(
	repo contract.NFTMetadataRepository,
	cache *memory.MetadataCache,
	chain ChainReader,
	m *metrics.Metrics,
	log logger.ILogger,
) IMetadataService {
	return &metadataService{
		repo:    repo,
		cache:   cache,
		chain:   chain,
		metrics: m,
		logger:  log,
	}
}

func (s *metadataService) Resolve(ctx context.Context, mint string) (*entity.NFTMetadata, error) {
	found, err := s.ResolveMany(ctx, []string{mint})
	if err != nil {
		return nil, err
	}
	return found[mint], nil
}

func (s *metadataService) ResolveMany(ctx context.Context, mints []string) (map[string]*entity.NFTMetadata, error) {
	found := make(map[string]*entity.NFTMetadata, len(mints))

	var pending []string
	seen := make(map[string]struct{}, len(mints))
	for _, mint := range mints {
		if _, ok := seen[mint]; ok {
			continue
		}
		seen[mint] = struct{}{}

		if md, ok := s.cache.Get(mint); ok {
			s.metrics.MetadataLookup("cache")
			found[mint] = md
			continue
		}
		pending = append(pending, mint)
	}
	if len(pending) == 0 {
		return found, nil
	}

	stored, err := s.repo.FindByMints(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("failed to load nft metadata: %w", err)
	}
	for _, md := range stored {
		s.metrics.MetadataLookup("db")
		s.cache.Save(md)
		found[md.Mint] = md
	}

	var missing []string
	for _, mint := range pending {
		if _, ok := found[mint]; !ok {
			missing = append(missing, mint)
		}
	}

	for mint, md := range s.fetchFromChain(ctx, missing) {
		found[mint] = md
	}
	return found, nil
}

func (s *metadataService) fetchFromChain(ctx context.Context, mints []string) map[string]*entity.NFTMetadata {
	out := make(map[string]*entity.NFTMetadata, len(mints))
	if s.chain == nil || len(mints) == 0 {
		return out
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, chainLookupConcurrency)
	)
	for _, mint := range mints {
		wg.Add(1)
		sem <- struct{}{}
		go func(mint string) {
			defer wg.Done()
			defer func() { <-sem }()

			md := s.fetchOne(ctx, mint)
			if md == nil {
				return
			}
			mu.Lock()
			out[mint] = md
			mu.Unlock()
		}(mint)
	}
	wg.Wait()
	return out
}

func (s *metadataService) fetchOne(ctx context.Context, mint string) *entity.NFTMetadata {
	onChain, offChain, err := s.chain.FetchMetadata(ctx, mint)
	if err != nil {
		if !errors.Is(err, solana.ErrMetadataNotFound) {
			s.logger.Warn("METADATA", "Chain metadata lookup failed", map[string]interface{}{
				"mint":  mint,
				"error": err.Error(),
			})
		}
		s.metrics.MetadataLookup("miss")
		return nil
	}
	s.metrics.MetadataLookup("chain")

	md := &entity.NFTMetadata{
		Mint:      mint,
		Name:      onChain.Name,
		Symbol:    onChain.Symbol,
		URI:       onChain.URI,
		UpdatedAt: time.Now().UTC(),
	}
	if offChain != nil {
		if offChain.Name != "" {
			md.Name = offChain.Name
		}
		if offChain.Symbol != "" {
			md.Symbol = offChain.Symbol
		}
		md.Image = offChain.Image
		for _, a := range offChain.Attributes {
			md.Attributes = append(md.Attributes, entity.NFTAttribute{TraitType: a.TraitType, Value: a.Value})
		}
	}

	s.cache.Save(md)
	if err := s.repo.Upsert(ctx, md); err != nil {
		s.logger.Warn("METADATA", "Failed to store chain metadata", map[string]interface{}{
			"mint":  mint,
			"error": err.Error(),
		})
	}
	return md
}

func (s *metadataService) Save(ctx context.Context, metadata *entity.NFTMetadata) error {
	metadata.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, metadata); err != nil {
		s.cache.Delete(metadata.Mint)
		return fmt.Errorf("failed to save nft metadata: %w", err)
	}
	s.cache.Save(metadata)
	return nil
}
