package implementation

import (
	"context"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/mapper"
	"rude-dashboard-be/internal/model"
	"rude-dashboard-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeaturedNFTRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.FeaturedNFTMapper
}

func NewFeaturedNFTRepository(db *mongo.Database) contract.FeaturedNFTRepository {
	return &FeaturedNFTRepositoryImpl{
		coll:   db.Collection(model.FeaturedNFT{}.CollectionName()),
		mapper: mapper.NewFeaturedNFTMapper(),
	}
}

func (r *FeaturedNFTRepositoryImpl) FindRandom(ctx context.Context) (*entity.FeaturedNFT, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, cursor.Err()
	}
	var m model.FeaturedNFT
	if err := cursor.Decode(&m); err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeaturedNFTRepositoryImpl) Upsert(ctx context.Context, featured *entity.FeaturedNFT) error {
	if featured.LastFeatured.IsZero() {
		featured.LastFeatured = time.Now().UTC()
	}
	m := r.mapper.ToModel(featured)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "wallet", Value: m.Wallet},
		{Key: "mint", Value: m.Mint},
		{Key: "lastFeatured", Value: m.LastFeatured},
	}}}
	_, err := r.coll.UpdateOne(ctx, bson.D{{Key: "mint", Value: m.Mint}}, update, options.Update().SetUpsert(true))
	return err
}
