package memory

import (
	"time"

	"rude-dashboard-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type MetadataCache struct {
	cache *cache.Cache
}

func NewMetadataCache(ttl time.Duration) *MetadataCache {
	// purge expired items every two TTLs
	c := cache.New(ttl, 2*ttl)
	return &MetadataCache{
		cache: c,
	}
}

// Save and Get copy the metadata so callers never share the cached value.
func (r *MetadataCache) Save(metadata *entity.NFTMetadata) {
	r.cache.Set(metadata.Mint, metadata.Clone(), cache.DefaultExpiration)
}

func (r *MetadataCache) Get(mint string) (*entity.NFTMetadata, bool) {
	if x, found := r.cache.Get(mint); found {
		return x.(*entity.NFTMetadata).Clone(), true
	}
	return nil, false
}

func (r *MetadataCache) Delete(mint string) {
	r.cache.Delete(mint)
}
