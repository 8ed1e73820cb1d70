package contract

import (
	"context"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/repository/specification"
)

type ProductRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
}
