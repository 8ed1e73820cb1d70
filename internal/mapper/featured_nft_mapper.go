package mapper

import (
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/model"
)

type FeaturedNFTMapper struct{}

func NewFeaturedNFTMapper() *FeaturedNFTMapper {
	return &FeaturedNFTMapper{}
}

func (m *FeaturedNFTMapper) ToEntity(model *model.FeaturedNFT) *entity.FeaturedNFT {
	if model == nil {
		return nil
	}
	return &entity.FeaturedNFT{
		Wallet:       model.Wallet,
		Mint:         model.Mint,
		LastFeatured: model.LastFeatured,
	}
}

func (m *FeaturedNFTMapper) ToModel(entity *entity.FeaturedNFT) *model.FeaturedNFT {
	if entity == nil {
		return nil
	}
	return &model.FeaturedNFT{
		Wallet:       entity.Wallet,
		Mint:         entity.Mint,
		LastFeatured: entity.LastFeatured,
	}
}
