package implementation

import (
	"context"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/mapper"
	"rude-dashboard-be/internal/model"
	"rude-dashboard-be/internal/repository/contract"
	"rude-dashboard-be/internal/repository/specification"

	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *mongo.Database) contract.ProductRepository {
	return &ProductRepositoryImpl{
		coll:   db.Collection(model.Product{}.CollectionName()),
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	q := specification.Build(specs...)
	cursor, err := r.coll.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, err
	}
	var models []*model.Product
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
