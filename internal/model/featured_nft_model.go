package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeaturedNFT struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Wallet       string             `bson:"wallet"`
	Mint         string             `bson:"mint"`
	LastFeatured time.Time          `bson:"lastFeatured"`
}

func (FeaturedNFT) CollectionName() string {
	return "featured-nfts"
}
