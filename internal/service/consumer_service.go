package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/repository/contract"
	"rude-dashboard-be/pkg/events"
	"rude-dashboard-be/pkg/solana"

	"github.com/ThreeDotsLabs/watermill/message"
)

const maxConcurrentConfirmations = 8

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type ConfirmationConfig struct {
	TopicName    string
	MaxRetries   int
	PollInterval time.Duration
	// Treasury is the wallet feature payments must be sent to.
	Treasury     string
}

type consumerService struct {
	subscriber    message.Subscriber
	queue         IPublisherService
	cfg           ConfirmationConfig
	chain         ChainReader
	configuration IConfigurationService
	transactions  ITransactionService
	featured     contract.FeaturedNFTRepository
	events       EventPublisher
	logger       logger.ILogger
	slots        chan struct{}
}

// NewConsumerService builds the worker that settles pending payment logs
// once their signature lands on chain. The queue is used to resubmit logs
// left pending by a previous run.
func NewConsumerService(
	subscriber message.Subscriber,
	queue IPublisherService,
	cfg ConfirmationConfig,
	chain ChainReader,
	configuration IConfigurationService,
	transactions ITransactionService,
	featured contract.FeaturedNFTRepository,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IConsumerService {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}
	return &consumerService{
		subscriber:    subscriber,
		queue:         queue,
		cfg:           cfg,
		chain:         chain,
		configuration: configuration,
		transactions:  transactions,
		featured:      featured,
		events:        eventPublisher,
		logger:        log,
		slots:         make(chan struct{}, maxConcurrentConfirmations),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.cfg.TopicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	cs.requeuePending(ctx)
	return nil
}

// requeuePending resubmits feature logs that never settled, e.g. because
// the process stopped while they were being polled.
func (cs *consumerService) requeuePending(ctx context.Context) {
	pending, err := cs.transactions.ListPending(ctx, entity.TransactionServiceFeature)
	if err != nil {
		cs.logger.Error("CONFIRM", "Failed to load pending transactions", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, tx := range pending {
		payload := dto.ConfirmTransactionMessage{
			TxId:    tx.TxId,
			Wallet:  tx.Wallet,
			Service: string(tx.Service),
		}
		if tx.Mint != nil {
			payload.Mint = *tx.Mint
		}
		msgJson, err := json.Marshal(payload)
		if err != nil {
			continue
		}
		if err := cs.queue.Publish(ctx, msgJson); err != nil {
			cs.logger.Error("CONFIRM", "Failed to requeue transaction", map[string]interface{}{
				"tx_id": tx.TxId,
				"error": err.Error(),
			})
		}
	}
	if len(pending) > 0 {
		cs.logger.Info("CONFIRM", "Requeued pending transactions", map[string]interface{}{"count": len(pending)})
	}
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ConfirmTransactionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONFIRM", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}
	// polling can take a while; free the subscription right away
	msg.Ack()

	select {
	case cs.slots <- struct{}{}:
	case <-ctx.Done():
		return
	}
	go func() {
		defer func() { <-cs.slots }()
		cs.confirm(ctx, payload)
	}()
}

func (cs *consumerService) confirm(ctx context.Context, payload dto.ConfirmTransactionMessage) {
	for attempt := 1; attempt <= cs.cfg.MaxRetries; attempt++ {
		state, err := cs.chain.SignatureStatus(ctx, payload.TxId)
		if err != nil {
			cs.logger.Warn("CONFIRM", "Signature status lookup failed", map[string]interface{}{
				"tx_id":   payload.TxId,
				"attempt": attempt,
				"error":   err.Error(),
			})
		}

		switch state {
		case solana.SignatureConfirmed:
			err := cs.verifyPayment(ctx, payload)
			if err == nil {
				cs.settle(ctx, payload, entity.TransactionStateSuccess)
				return
			}
			if errors.Is(err, errPaymentRejected) {
				cs.logger.Warn("CONFIRM", "Payment rejected", map[string]interface{}{
					"tx_id":  payload.TxId,
					"wallet": payload.Wallet,
					"error":  err.Error(),
				})
				cs.settle(ctx, payload, entity.TransactionStateFailed)
				return
			}
			cs.logger.Warn("CONFIRM", "Payment lookup failed", map[string]interface{}{
				"tx_id":   payload.TxId,
				"attempt": attempt,
				"error":   err.Error(),
			})
		case solana.SignatureFailed:
			cs.settle(ctx, payload, entity.TransactionStateFailed)
			return
		}

		if attempt == cs.cfg.MaxRetries {
			break
		}
		select {
		case <-time.After(cs.cfg.PollInterval):
		case <-ctx.Done():
			return
		}
	}

	cs.logger.Warn("CONFIRM", "Signature never confirmed", map[string]interface{}{
		"tx_id":    payload.TxId,
		"attempts": cs.cfg.MaxRetries,
	})
	cs.settle(ctx, payload, entity.TransactionStateFailed)
}

var errPaymentRejected = errors.New("payment rejected")

// verifyPayment checks that a confirmed feature payment was signed by the
// requesting wallet and paid an enabled price into the treasury. Errors
// other than errPaymentRejected are lookup failures worth retrying.
func (cs *consumerService) verifyPayment(ctx context.Context, payload dto.ConfirmTransactionMessage) error {
	if payload.Service != string(entity.TransactionServiceFeature) {
		return nil
	}
	if cs.cfg.Treasury == "" {
		return fmt.Errorf("%w: treasury wallet not configured", errPaymentRejected)
	}

	payment, err := cs.chain.FetchPayment(ctx, payload.TxId)
	if err != nil {
		return err
	}
	if !payment.SignedBy(payload.Wallet) {
		return fmt.Errorf("%w: not signed by %s", errPaymentRejected, payload.Wallet)
	}

	received := func(token string) float64 { return payment.Received(cs.cfg.Treasury, token) }
	for _, product := range cs.configuration.EnabledProducts(ctx, entity.ProductTypeFeature, payload.Collection) {
		if product.AcceptsPayment(received) {
			return nil
		}
	}
	return fmt.Errorf("%w: transfer does not match any enabled price", errPaymentRejected)
}

func (cs *consumerService) settle(ctx context.Context, payload dto.ConfirmTransactionMessage, state entity.TransactionState) {
	tx, err := cs.transactions.Transition(ctx, payload.TxId, state)
	if err != nil {
		cs.logger.Error("CONFIRM", "Failed to settle transaction", map[string]interface{}{
			"tx_id": payload.TxId,
			"state": state,
			"error": err.Error(),
		})
		return
	}

	if state != entity.TransactionStateSuccess || tx.Service != entity.TransactionServiceFeature {
		return
	}

	featured := &entity.FeaturedNFT{
		Wallet:       payload.Wallet,
		Mint:         payload.Mint,
		LastFeatured: time.Now().UTC(),
	}
	if err := cs.featured.Upsert(ctx, featured); err != nil {
		cs.logger.Error("CONFIRM", "Failed to feature nft", map[string]interface{}{
			"tx_id": payload.TxId,
			"mint":  payload.Mint,
			"error": err.Error(),
		})
		return
	}

	if cs.events != nil {
		evt := events.BaseEvent{
			Type: events.TypeNFTFeatured,
			Data: map[string]interface{}{
				"wallet": featured.Wallet,
				"mint":   featured.Mint,
				"tx_id":  payload.TxId,
			},
			OccurredAt: featured.LastFeatured,
		}
		if err := cs.events.Publish(ctx, evt); err != nil {
			cs.logger.Warn("CONFIRM", "Failed to publish featured event", map[string]interface{}{"error": err.Error()})
		}
	}
	cs.logger.Info("CONFIRM", "NFT featured", map[string]interface{}{
		"tx_id": payload.TxId,
		"mint":  payload.Mint,
	})
}
