package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/metrics"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/repository/memory"
	"rude-dashboard-be/pkg/solana"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warrior(mint string, power interface{}) *entity.NFTMetadata {
	return &entity.NFTMetadata{
		Mint: mint,
		Attributes: []entity.NFTAttribute{
			{TraitType: "Class", Value: "Golem"},
			{TraitType: "Power", Value: power},
		},
	}
}

func newTestMetadataService(repo *fakeMetadataRepo, chain *fakeChain) IMetadataService {
	return NewMetadataService(repo, memory.NewMetadataCache(time.Minute), chain, metrics.New(), logger.NewNopLogger())
}

func TestGetWarriorsPower(t *testing.T) {
	repo := newFakeMetadataRepo(
		warrior("g1", 10.0),
		warrior("g2", "25"),
		warrior("g3", "strong"),
		&entity.NFTMetadata{Mint: "g4"},
	)
	chain := &fakeChain{metadata: map[string]*solana.OffChainMetadata{
		"g5": {Name: "Golem #5", Attributes: []solana.OffChainAttribute{{TraitType: "power", Value: 7.0}}},
	}}
	svc := NewWarService(newTestMetadataService(repo, chain), "Power")

	tests := []struct {
		name string
		list []string
		want float64
	}{
		{name: "empty list", list: []string{}, want: 0},
		{name: "numeric and string values", list: []string{"g1", "g2"}, want: 35},
		{name: "duplicates counted each time", list: []string{"g1", "g1", "g2"}, want: 45},
		{name: "non-numeric and missing trait count zero", list: []string{"g3", "g4", "g1"}, want: 10},
		{name: "unknown mint counts zero", list: []string{"nope", "g2"}, want: 25},
		{name: "chain fallback", list: []string{"g5", "g1"}, want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetWarriorsPower(context.Background(), tt.list)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetWarriorsPowerRepoError(t *testing.T) {
	repo := newFakeMetadataRepo()
	repo.findErr = errors.New("db down")
	svc := NewWarService(newTestMetadataService(repo, &fakeChain{}), "Power")

	_, err := svc.GetWarriorsPower(context.Background(), []string{"g1"})
	assert.Error(t, err)
}

func TestResolveManyCachesChainResults(t *testing.T) {
	repo := newFakeMetadataRepo()
	chain := &fakeChain{metadata: map[string]*solana.OffChainMetadata{
		"g5": {Name: "Golem #5", Image: "https://img/5.png"},
	}}
	svc := newTestMetadataService(repo, chain)
	ctx := context.Background()

	found, err := svc.ResolveMany(ctx, []string{"g5", "g5", "missing"})
	require.NoError(t, err)
	require.Contains(t, found, "g5")
	assert.NotContains(t, found, "missing")
	assert.Equal(t, "https://img/5.png", found["g5"].Image)
	assert.Equal(t, 1, repo.upserts, "chain metadata is written back")
	assert.Equal(t, 2, chain.calls)

	// second lookup is served from the in-process cache
	_, err = svc.ResolveMany(ctx, []string{"g5"})
	require.NoError(t, err)
	assert.Equal(t, 2, chain.calls)
	assert.Equal(t, 1, repo.findHits)
}
