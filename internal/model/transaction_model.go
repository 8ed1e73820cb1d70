package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RudeTransaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TxId      string             `bson:"txId"`
	Wallet    string             `bson:"wallet"`
	Mint      *string            `bson:"mint,omitempty"`
	Service   string             `bson:"service"`
	State     string             `bson:"state"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (RudeTransaction) CollectionName() string {
	return "transaction-logs"
}
