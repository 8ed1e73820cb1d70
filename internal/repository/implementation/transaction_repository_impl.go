package implementation

import (
	"context"
	"errors"
	"fmt"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/mapper"
	"rude-dashboard-be/internal/model"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/repository/contract"
	"rude-dashboard-be/internal/repository/specification"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *mongo.Database) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		coll:   db.Collection(model.RudeTransaction{}.CollectionName()),
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "txId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("txId_unique"),
		},
		{
			Keys:    bson.D{{Key: "wallet", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("wallet_timestamp"),
		},
	})
	return err
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *entity.RudeTransaction) error {
	m := r.mapper.ToModel(tx)
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: transaction %s already logged", serverutils.ErrConflict, tx.TxId)
		}
		return err
	}
	return nil
}

func (r *TransactionRepositoryImpl) UpdateState(ctx context.Context, txId string, from, to entity.TransactionState) (*entity.RudeTransaction, error) {
	filter := bson.D{
		{Key: "txId", Value: txId},
		{Key: "state", Value: string(from)},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "state", Value: string(to)}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m model.RudeTransaction
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TransactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RudeTransaction, error) {
	q := specification.Build(specs...)
	var m model.RudeTransaction
	if err := r.coll.FindOne(ctx, q.Filter, q.FindOneOptions()).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RudeTransaction, error) {
	q := specification.Build(specs...)
	cursor, err := r.coll.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, err
	}
	var models []*model.RudeTransaction
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
