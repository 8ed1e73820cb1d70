package service

import (
	"context"
	"fmt"
	"time"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/metrics"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/repository/contract"
	"rude-dashboard-be/internal/repository/specification"
	"rude-dashboard-be/pkg/events"
)

type ITransactionService interface {
	Create(ctx context.Context, tx *entity.RudeTransaction) error
	// Transition moves a PENDING log to SUCCESS or FAILED.
	Transition(ctx context.Context, txId string, to entity.TransactionState) (*entity.RudeTransaction, error)
	ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]*dto.TransactionResponse, error)
	// ListPending returns the logs of a service still awaiting confirmation.
	ListPending(ctx context.Context, service entity.TransactionService) ([]*entity.RudeTransaction, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type transactionService struct {
	repo      contract.TransactionRepository
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    logger.ILogger
}

func NewTransactionService(repo contract.TransactionRepository, publisher EventPublisher, m *metrics.Metrics, log logger.ILogger) ITransactionService {
	return &transactionService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

func (s *transactionService) Create(ctx context.Context, tx *entity.RudeTransaction) error {
	if tx.TxId == "" || tx.Wallet == "" {
		return fmt.Errorf("%w: txId and wallet are required", serverutils.ErrBadRequest)
	}
	if tx.State == "" {
		tx.State = entity.TransactionStatePending
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return err
	}

	s.metrics.TransactionState(string(tx.Service), string(tx.State))
	s.publish(ctx, tx, "")
	return nil
}

func (s *transactionService) Transition(ctx context.Context, txId string, to entity.TransactionState) (*entity.RudeTransaction, error) {
	if !entity.TransactionStatePending.CanTransition(to) {
		return nil, fmt.Errorf("%w: cannot move a transaction to %s", serverutils.ErrBadRequest, to)
	}

	updated, err := s.repo.UpdateState(ctx, txId, entity.TransactionStatePending, to)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		current, err := s.repo.FindOne(ctx, specification.ByTxId{TxId: txId})
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, fmt.Errorf("%w: transaction %s", serverutils.ErrNotFound, txId)
		}
		return nil, fmt.Errorf("%w: transaction %s is already %s", serverutils.ErrConflict, txId, current.State)
	}

	s.metrics.TransactionState(string(updated.Service), string(updated.State))
	s.publish(ctx, updated, entity.TransactionStatePending)
	return updated, nil
}

func (s *transactionService) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	txs, err := s.repo.FindAll(ctx,
		specification.ByWallet{Wallet: wallet},
		specification.NewestFirst{},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		result = append(result, &dto.TransactionResponse{
			TxId:      tx.TxId,
			Wallet:    tx.Wallet,
			Mint:      tx.Mint,
			Service:   string(tx.Service),
			State:     string(tx.State),
			Timestamp: tx.Timestamp,
		})
	}
	return result, nil
}

func (s *transactionService) ListPending(ctx context.Context, service entity.TransactionService) ([]*entity.RudeTransaction, error) {
	return s.repo.FindAll(ctx,
		specification.ByState{State: entity.TransactionStatePending},
		specification.ByService{Service: service},
	)
}

func (s *transactionService) publish(ctx context.Context, tx *entity.RudeTransaction, from entity.TransactionState) {
	if s.publisher == nil {
		return
	}
	data := map[string]interface{}{
		"tx_id":   tx.TxId,
		"wallet":  tx.Wallet,
		"service": string(tx.Service),
		"state":   string(tx.State),
	}
	if from != "" {
		data["previous_state"] = string(from)
	}
	if tx.Mint != nil {
		data["mint"] = *tx.Mint
	}
	evt := events.BaseEvent{
		Type:       events.TypeTransactionStateChanged,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("TRANSACTION", "Failed to publish state change", map[string]interface{}{
			"tx_id": tx.TxId,
			"error": err.Error(),
		})
	}
}
