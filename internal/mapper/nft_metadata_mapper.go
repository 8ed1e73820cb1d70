package mapper

import (
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/model"
)

type NFTMetadataMapper struct{}

func NewNFTMetadataMapper() *NFTMetadataMapper {
	return &NFTMetadataMapper{}
}

func (m *NFTMetadataMapper) ToEntity(model *model.NFTMetadata) *entity.NFTMetadata {
	if model == nil {
		return nil
	}
	attrs := make([]entity.NFTAttribute, 0, len(model.Attributes))
	for _, a := range model.Attributes {
		attrs = append(attrs, entity.NFTAttribute{TraitType: a.TraitType, Value: a.Value})
	}
	return &entity.NFTMetadata{
		Mint:       model.Mint,
		Name:       model.Name,
		Symbol:     model.Symbol,
		Image:      model.Image,
		URI:        model.URI,
		Attributes: attrs,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (m *NFTMetadataMapper) ToModel(entity *entity.NFTMetadata) *model.NFTMetadata {
	if entity == nil {
		return nil
	}
	attrs := make([]model.NFTAttribute, 0, len(entity.Attributes))
	for _, a := range entity.Attributes {
		attrs = append(attrs, model.NFTAttribute{TraitType: a.TraitType, Value: a.Value})
	}
	return &model.NFTMetadata{
		Mint:       entity.Mint,
		Name:       entity.Name,
		Symbol:     entity.Symbol,
		Image:      entity.Image,
		URI:        entity.URI,
		Attributes: attrs,
		UpdatedAt:  entity.UpdatedAt,
	}
}
