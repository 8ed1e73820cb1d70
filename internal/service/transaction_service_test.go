package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/metrics"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransactionService() (ITransactionService, *fakeTransactionRepo, *fakeEventPublisher) {
	repo := newFakeTransactionRepo()
	pub := &fakeEventPublisher{}
	return NewTransactionService(repo, pub, metrics.New(), logger.NewNopLogger()), repo, pub
}

func TestTransactionStateMachine(t *testing.T) {
	tests := []struct {
		name    string
		to      entity.TransactionState
		second  entity.TransactionState
		wantErr error
	}{
		{name: "success is final", to: entity.TransactionStateSuccess, second: entity.TransactionStateFailed, wantErr: serverutils.ErrConflict},
		{name: "failed is final", to: entity.TransactionStateFailed, second: entity.TransactionStateSuccess, wantErr: serverutils.ErrConflict},
		{name: "back to pending is rejected", to: entity.TransactionStateSuccess, second: entity.TransactionStatePending, wantErr: serverutils.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, repo, _ := newTestTransactionService()
			require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{
				TxId:    "sig1",
				Wallet:  "w1",
				Service: entity.TransactionServiceFeature,
			}))
			assert.Equal(t, entity.TransactionStatePending, repo.get("sig1").State)

			updated, err := svc.Transition(ctx, "sig1", tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.State)

			_, err = svc.Transition(ctx, "sig1", tt.second)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.to, repo.get("sig1").State)
		})
	}
}

func TestTransitionUnknownTransaction(t *testing.T) {
	svc, _, _ := newTestTransactionService()
	_, err := svc.Transition(context.Background(), "missing", entity.TransactionStateSuccess)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestCreateDuplicateTxId(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTransactionService()
	tx := &entity.RudeTransaction{TxId: "sig1", Wallet: "w1", Service: entity.TransactionServiceUpgrade}
	require.NoError(t, svc.Create(ctx, tx))

	err := svc.Create(ctx, &entity.RudeTransaction{TxId: "sig1", Wallet: "w2", Service: entity.TransactionServiceUpgrade})
	assert.ErrorIs(t, err, serverutils.ErrConflict)
}

func TestTransitionPublishesStateChange(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestTransactionService()
	require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{TxId: "sig1", Wallet: "w1", Service: entity.TransactionServiceFeature}))
	_, err := svc.Transition(ctx, "sig1", entity.TransactionStateSuccess)
	require.NoError(t, err)

	assert.Equal(t, []string{events.TypeTransactionStateChanged, events.TypeTransactionStateChanged}, pub.types())
	last := pub.events[1].Payload()
	assert.Equal(t, "SUCCESS", last["state"])
	assert.Equal(t, "PENDING", last["previous_state"])
}

func TestListByWalletNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTransactionService()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{
			TxId:      id,
			Wallet:    "w1",
			Service:   entity.TransactionServiceFeature,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{TxId: "other", Wallet: "w2", Service: entity.TransactionServiceFeature}))

	list, err := svc.ListByWallet(ctx, "w1", 0, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, tx := range list {
		ids = append(ids, tx.TxId)
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestListByWalletCapsPageSize(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTransactionService()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{
			TxId:      fmt.Sprintf("sig-%03d", i),
			Wallet:    "w1",
			Service:   entity.TransactionServiceFeature,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default page", limit: 0, want: 20},
		{name: "explicit page", limit: 50, want: 50},
		{name: "oversized page is capped", limit: 500, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.ListByWallet(ctx, "w1", tt.limit, 0)
			require.NoError(t, err)
			assert.Len(t, list, tt.want)
		})
	}
}

func TestListPendingFiltersStateAndService(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTransactionService()
	require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{TxId: "a", Wallet: "w1", Service: entity.TransactionServiceFeature}))
	require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{TxId: "b", Wallet: "w1", Service: entity.TransactionServiceFeature}))
	require.NoError(t, svc.Create(ctx, &entity.RudeTransaction{TxId: "c", Wallet: "w1", Service: entity.TransactionServiceUpgrade}))
	_, err := svc.Transition(ctx, "b", entity.TransactionStateSuccess)
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx, entity.TransactionServiceFeature)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a", pending[0].TxId)
}
