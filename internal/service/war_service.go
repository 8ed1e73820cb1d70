package service

import (
	"context"
)

type IWarService interface {
	// GetWarriorsPower sums the power trait over warriorList. Unknown mints
	// and non-numeric values count as zero; repeated mints count each time.
	GetWarriorsPower(ctx context.Context, warriorList []string) (float64, error)
}

type warService struct {
	metadata   IMetadataService
	powerTrait string
}

func NewWarService(metadata IMetadataService, powerTrait string) IWarService {
	return &warService{
		metadata:   metadata,
		powerTrait: powerTrait,
	}
}

func (s *warService) GetWarriorsPower(ctx context.Context, warriorList []string) (float64, error) {
	if len(warriorList) == 0 {
		return 0, nil
	}

	found, err := s.metadata.ResolveMany(ctx, warriorList)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, mint := range warriorList {
		md, ok := found[mint]
		if !ok {
			continue
		}
		if power, ok := md.NumericTrait(s.powerTrait); ok {
			total += power
		}
	}
	return total, nil
}
