package mapper

import (
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(model *model.RudeTransaction) *entity.RudeTransaction {
	if model == nil {
		return nil
	}
	return &entity.RudeTransaction{
		TxId:      model.TxId,
		Wallet:    model.Wallet,
		Mint:      model.Mint,
		Service:   entity.TransactionService(model.Service),
		State:     entity.TransactionState(model.State),
		Timestamp: model.Timestamp,
	}
}

func (m *TransactionMapper) ToModel(entity *entity.RudeTransaction) *model.RudeTransaction {
	if entity == nil {
		return nil
	}
	return &model.RudeTransaction{
		TxId:      entity.TxId,
		Wallet:    entity.Wallet,
		Mint:      entity.Mint,
		Service:   string(entity.Service),
		State:     string(entity.State),
		Timestamp: entity.Timestamp,
	}
}

func (m *TransactionMapper) ToEntities(models []*model.RudeTransaction) []*entity.RudeTransaction {
	entities := make([]*entity.RudeTransaction, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
