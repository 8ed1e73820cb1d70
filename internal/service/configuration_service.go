package service

import (
	"context"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/repository/contract"
	"rude-dashboard-be/internal/repository/specification"
)

type IConfigurationService interface {
	// GetProductsByTypeAndCollection never fails: lookup errors are logged
	// and yield nil.
	GetProductsByTypeAndCollection(ctx context.Context, productType entity.ProductType, collection string) []*entity.Product
	// EnabledProducts is GetProductsByTypeAndCollection narrowed to enabled
	// products.
	EnabledProducts(ctx context.Context, productType entity.ProductType, collection string) []*entity.Product
	// FindEnabledProduct returns the first enabled product of the type, or nil.
	FindEnabledProduct(ctx context.Context, productType entity.ProductType, collection string) *entity.Product
	ListProducts(ctx context.Context, productType entity.ProductType, collection string) []*dto.ProductResponse
}

type configurationService struct {
	products contract.ProductRepository
	logger   logger.ILogger
}

func NewConfigurationService(products contract.ProductRepository, log logger.ILogger) IConfigurationService {
	return &configurationService{
		products: products,
		logger:   log,
	}
}

func (s *configurationService) GetProductsByTypeAndCollection(ctx context.Context, productType entity.ProductType, collection string) []*entity.Product {
	return s.findProducts(ctx, productType, collection, specification.ProductsByTypeAndCollection(productType, collection)...)
}

func (s *configurationService) EnabledProducts(ctx context.Context, productType entity.ProductType, collection string) []*entity.Product {
	specs := append(specification.ProductsByTypeAndCollection(productType, collection), specification.OnlyEnabled{})
	var enabled []*entity.Product
	for _, p := range s.findProducts(ctx, productType, collection, specs...) {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

func (s *configurationService) FindEnabledProduct(ctx context.Context, productType entity.ProductType, collection string) *entity.Product {
	if enabled := s.EnabledProducts(ctx, productType, collection); len(enabled) > 0 {
		return enabled[0]
	}
	return nil
}

func (s *configurationService) findProducts(ctx context.Context, productType entity.ProductType, collection string, specs ...specification.Specification) []*entity.Product {
	products, err := s.products.FindAll(ctx, specs...)
	if err != nil {
		s.logger.Error("CONFIGURATION", "Failed to load products", map[string]interface{}{
			"type":       productType,
			"collection": collection,
			"error":      err.Error(),
		})
		return nil
	}
	return products
}

func (s *configurationService) ListProducts(ctx context.Context, productType entity.ProductType, collection string) []*dto.ProductResponse {
	products := s.GetProductsByTypeAndCollection(ctx, productType, collection)
	result := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	options := make([]dto.ProductOptionDTO, 0, len(p.Options))
	for _, o := range p.Options {
		payments := make([]dto.PaymentOptionDTO, 0, len(o.PaymentOptions))
		for _, po := range o.PaymentOptions {
			amounts := make([]dto.TokenAmountDTO, 0, len(po.Amounts))
			for _, a := range po.Amounts {
				amounts = append(amounts, dto.TokenAmountDTO{Token: a.Token, Amount: a.Amount})
			}
			payments = append(payments, dto.PaymentOptionDTO{
				Type:    po.Type,
				Order:   po.Order,
				Enabled: po.Enabled,
				Amounts: amounts,
			})
		}
		options = append(options, dto.ProductOptionDTO{
			Key:            o.Key,
			Name:           o.Name,
			IsAvailable:    o.IsAvailable,
			PaymentOptions: payments,
		})
	}
	return &dto.ProductResponse{
		Id:         p.Id,
		Collection: p.Collection,
		Type:       string(p.Type),
		Enabled:    p.Enabled,
		Options:    options,
	}
}
