package contract

import (
	"context"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/repository/specification"
)

type TransactionRepository interface {
	EnsureIndexes(ctx context.Context) error
	// Create returns serverutils.ErrConflict when the txId already exists.
	Create(ctx context.Context, tx *entity.RudeTransaction) error
	// UpdateState moves txId from one state to another atomically. Returns
	// nil, nil when no log is in the from state.
	UpdateState(ctx context.Context, txId string, from, to entity.TransactionState) (*entity.RudeTransaction, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RudeTransaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RudeTransaction, error)
}
