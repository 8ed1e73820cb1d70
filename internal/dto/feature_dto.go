package dto

import "time"

type FeaturedNFTResponse struct {
	Wallet       string    `json:"wallet"`
	Mint         string    `json:"mint"`
	LastFeatured time.Time `json:"lastFeatured"`
}

// FeatureNFTRequest asks to put mint in the spotlight, paid by txId.
type FeatureNFTRequest struct {
	Wallet     string `json:"wallet" validate:"required"`
	Mint       string `json:"mint" validate:"required"`
	TxId       string `json:"txId" validate:"required"`
	Collection string `json:"collection,omitempty"`
	Message    string `json:"message" validate:"required"`
	Signature  string `json:"signature" validate:"required"`
}

type FeatureNFTResponse struct {
	TxId  string `json:"txId"`
	State string `json:"state"`
}
