package service

import (
	"context"
	"encoding/json"
	"fmt"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/repository/contract"
)

type IFeatureService interface {
	GetRandomFeatured(ctx context.Context) (*dto.FeaturedNFTResponse, error)
	// RequestFeature logs a pending payment and queues it for confirmation.
	RequestFeature(ctx context.Context, req *dto.FeatureNFTRequest) (*dto.FeatureNFTResponse, error)
}

type featureService struct {
	featured         contract.FeaturedNFTRepository
	auth             IAuthService
	configuration    IConfigurationService
	transactions     ITransactionService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewFeatureService(
	featured contract.FeaturedNFTRepository,
	auth IAuthService,
	configuration IConfigurationService,
	transactions ITransactionService,
	publisherService IPublisherService,
	log logger.ILogger,
) IFeatureService {
	return &featureService{
		featured:         featured,
		auth:             auth,
		configuration:    configuration,
		transactions:     transactions,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *featureService) GetRandomFeatured(ctx context.Context) (*dto.FeaturedNFTResponse, error) {
	nft, err := s.featured.FindRandom(ctx)
	if err != nil {
		return nil, err
	}
	if nft == nil {
		return nil, fmt.Errorf("%w: no featured nft", serverutils.ErrNotFound)
	}
	return &dto.FeaturedNFTResponse{
		Wallet:       nft.Wallet,
		Mint:         nft.Mint,
		LastFeatured: nft.LastFeatured,
	}, nil
}

func (s *featureService) RequestFeature(ctx context.Context, req *dto.FeatureNFTRequest) (*dto.FeatureNFTResponse, error) {
	if err := s.auth.ConsumeSignedMessage(ctx, req.Wallet, req.Message, req.Signature); err != nil {
		return nil, err
	}

	if product := s.configuration.FindEnabledProduct(ctx, entity.ProductTypeFeature, req.Collection); product == nil {
		return nil, fmt.Errorf("%w: featuring is not available", serverutils.ErrBadRequest)
	}

	mint := req.Mint
	tx := &entity.RudeTransaction{
		TxId:    req.TxId,
		Wallet:  req.Wallet,
		Mint:    &mint,
		Service: entity.TransactionServiceFeature,
		State:   entity.TransactionStatePending,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	msgJson, err := json.Marshal(dto.ConfirmTransactionMessage{
		TxId:       tx.TxId,
		Wallet:     tx.Wallet,
		Mint:       mint,
		Service:    string(tx.Service),
		Collection: req.Collection,
	})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Error("FEATURE", "Failed to queue confirmation", map[string]interface{}{
			"tx_id": tx.TxId,
			"error": err.Error(),
		})
		if _, terr := s.transactions.Transition(ctx, tx.TxId, entity.TransactionStateFailed); terr != nil {
			s.logger.Error("FEATURE", "Failed to mark transaction failed", map[string]interface{}{
				"tx_id": tx.TxId,
				"error": terr.Error(),
			})
		}
		return nil, fmt.Errorf("failed to queue confirmation: %w", err)
	}

	return &dto.FeatureNFTResponse{
		TxId:  tx.TxId,
		State: string(tx.State),
	}, nil
}
