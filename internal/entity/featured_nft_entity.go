package entity

import "time"

// FeaturedNFT tracks which NFT was last put in the spotlight for a wallet.
type FeaturedNFT struct {
	Wallet       string
	Mint         string
	LastFeatured time.Time
}
