package mapper

import (
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(model *model.Product) *entity.Product {
	if model == nil {
		return nil
	}
	options := make([]entity.ProductOption, 0, len(model.Options))
	for _, o := range model.Options {
		payments := make([]entity.PaymentOption, 0, len(o.PaymentOptions))
		for _, p := range o.PaymentOptions {
			amounts := make([]entity.TokenAmount, 0, len(p.Amounts))
			for _, a := range p.Amounts {
				amounts = append(amounts, entity.TokenAmount{Token: a.Token, Amount: a.Amount})
			}
			payments = append(payments, entity.PaymentOption{
				Type:    p.Type,
				Order:   p.Order,
				Enabled: p.Enabled,
				Amounts: amounts,
			})
		}
		options = append(options, entity.ProductOption{
			Key:            o.Key,
			Name:           o.Name,
			IsAvailable:    o.IsAvailable,
			PaymentOptions: payments,
		})
	}
	return &entity.Product{
		Id:         model.ID.Hex(),
		Collection: model.Collection,
		Type:       entity.ProductType(model.Type),
		Enabled:    model.Enabled,
		Options:    options,
	}
}

func (m *ProductMapper) ToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
