package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Collection *string            `bson:"collection,omitempty"`
	Type       string             `bson:"type"`
	Enabled    bool               `bson:"enabled"`
	Options    []ProductOption    `bson:"options"`
}

type ProductOption struct {
	Key            string          `bson:"key"`
	Name           string          `bson:"name"`
	IsAvailable    bool            `bson:"isAvailable"`
	PaymentOptions []PaymentOption `bson:"paymentOptions"`
}

type PaymentOption struct {
	Type    string        `bson:"type"`
	Order   int           `bson:"order"`
	Enabled bool          `bson:"enabled"`
	Amounts []TokenAmount `bson:"amounts"`
}

type TokenAmount struct {
	Token  string  `bson:"token"`
	Amount float64 `bson:"amount"`
}

func (Product) CollectionName() string {
	return "configurations"
}
