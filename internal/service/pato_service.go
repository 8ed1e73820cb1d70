package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/pkg/cdn"
	"rude-dashboard-be/pkg/events"
	"rude-dashboard-be/pkg/solana"

	"github.com/google/uuid"
)

type IPatoService interface {
	// GetAndUpdatePatoArmor rewrites the armor trait of the Pato NFT and
	// republishes its metadata JSON.
	GetAndUpdatePatoArmor(ctx context.Context) error
}

type PatoConfig struct {
	Mint           string
	Armor          string
	ArmorTrait     string
	MetadataFolder string
	Operator       string
}

type patoService struct {
	cfg          PatoConfig
	metadata     IMetadataService
	uploader     AssetUploader
	transactions ITransactionService
	events       EventPublisher
	logger       logger.ILogger
}

func NewPatoService(
	cfg PatoConfig,
	metadata IMetadataService,
	uploader AssetUploader,
	transactions ITransactionService,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IPatoService {
	return &patoService{
		cfg:          cfg,
		metadata:     metadata,
		uploader:     uploader,
		transactions: transactions,
		events:       eventPublisher,
		logger:       log,
	}
}

func (s *patoService) GetAndUpdatePatoArmor(ctx context.Context) error {
	md, err := s.metadata.Resolve(ctx, s.cfg.Mint)
	if err != nil {
		return err
	}
	if md == nil {
		return fmt.Errorf("%w: metadata for %s", serverutils.ErrNotFound, s.cfg.Mint)
	}

	md.SetTrait(s.cfg.ArmorTrait, s.cfg.Armor)
	if err := s.metadata.Save(ctx, md); err != nil {
		return err
	}

	if s.uploader != nil {
		if err := s.republish(ctx, md); err != nil {
			return err
		}
	} else {
		s.logger.Warn("PATO", "CDN not configured, metadata JSON not republished", map[string]interface{}{
			"mint": md.Mint,
		})
	}

	mint := md.Mint
	wallet := s.cfg.Operator
	if wallet == "" {
		wallet = mint
	}
	txId := "fix-" + uuid.NewString()
	if err := s.transactions.Create(ctx, &entity.RudeTransaction{
		TxId:    txId,
		Wallet:  wallet,
		Mint:    &mint,
		Service: entity.TransactionServiceFix,
		State:   entity.TransactionStateSuccess,
	}); err != nil {
		return err
	}

	if s.events != nil {
		evt := events.BaseEvent{
			Type: events.TypeNFTFixed,
			Data: map[string]interface{}{
				"mint":  mint,
				"trait": s.cfg.ArmorTrait,
				"value": s.cfg.Armor,
				"tx_id": txId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.events.Publish(ctx, evt); err != nil {
			s.logger.Warn("PATO", "Failed to publish fix event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("PATO", "Armor fixed", map[string]interface{}{
		"mint":  mint,
		"armor": s.cfg.Armor,
	})
	return nil
}

func (s *patoService) republish(ctx context.Context, md *entity.NFTMetadata) error {
	doc := solana.OffChainMetadata{
		Name:   md.Name,
		Symbol: md.Symbol,
		Image:  md.Image,
	}
	for _, a := range md.Attributes {
		doc.Attributes = append(doc.Attributes, solana.OffChainAttribute{TraitType: a.TraitType, Value: a.Value})
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode metadata json: %w", err)
	}

	res, err := s.uploader.Upload(ctx, bytes.NewReader(body), cdn.UploadRequest{
		PublicID:     md.Mint + ".json",
		Folder:       s.cfg.MetadataFolder,
		ResourceType: "raw",
		Overwrite:    true,
	})
	if err != nil {
		return err
	}

	s.logger.Info("PATO", "Metadata JSON republished", map[string]interface{}{
		"public_id": res.PublicID,
		"url":       res.SecureURL,
	})
	return nil
}
