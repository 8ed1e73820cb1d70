package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NFTMetadata struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Mint       string             `bson:"mint"`
	Name       string             `bson:"name"`
	Symbol     string             `bson:"symbol"`
	Image      string             `bson:"image"`
	URI        string             `bson:"uri,omitempty"`
	Attributes []NFTAttribute     `bson:"attributes"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

type NFTAttribute struct {
	TraitType string      `bson:"trait_type"`
	Value     interface{} `bson:"value"`
}

func (NFTMetadata) CollectionName() string {
	return "nft-metadata"
}
