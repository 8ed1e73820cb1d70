package implementation

import (
	"context"
	"errors"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/mapper"
	"rude-dashboard-be/internal/model"
	"rude-dashboard-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NFTMetadataRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.NFTMetadataMapper
}

func NewNFTMetadataRepository(db *mongo.Database) contract.NFTMetadataRepository {
	return &NFTMetadataRepositoryImpl{
		coll:   db.Collection(model.NFTMetadata{}.CollectionName()),
		mapper: mapper.NewNFTMetadataMapper(),
	}
}

func (r *NFTMetadataRepositoryImpl) FindByMint(ctx context.Context, mint string) (*entity.NFTMetadata, error) {
	var m model.NFTMetadata
	if err := r.coll.FindOne(ctx, bson.D{{Key: "mint", Value: mint}}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NFTMetadataRepositoryImpl) FindByMints(ctx context.Context, mints []string) ([]*entity.NFTMetadata, error) {
	if len(mints) == 0 {
		return []*entity.NFTMetadata{}, nil
	}
	filter := bson.D{{Key: "mint", Value: bson.D{{Key: "$in", Value: mints}}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var models []*model.NFTMetadata
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	result := make([]*entity.NFTMetadata, 0, len(models))
	for _, m := range models {
		result = append(result, r.mapper.ToEntity(m))
	}
	return result, nil
}

func (r *NFTMetadataRepositoryImpl) Upsert(ctx context.Context, metadata *entity.NFTMetadata) error {
	metadata.UpdatedAt = time.Now().UTC()
	m := r.mapper.ToModel(metadata)
	_, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "mint", Value: m.Mint}}, m, options.Replace().SetUpsert(true))
	return err
}
