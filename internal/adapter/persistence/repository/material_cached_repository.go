package repository

import (
	"context"
	"time"

	"house_calculator/internal/domain/entities"
	"house_calculator/internal/infrastructure/metrics"
	"house_calculator/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

const allMaterialsKey = "materials:all"

// CachedMaterialRepository memoizes catalog listings in memory. Every
// calculation reads the whole catalog to price its lines, so List results
// are kept for ttl; Create flushes the cache.

type CachedMaterialRepository struct {
	next  interfaces.IMaterialRepository
	cache *gocache.Cache
}

var _ interfaces.IMaterialRepository = (*CachedMaterialRepository)(nil)

func NewCachedMaterialRepository(next interfaces.IMaterialRepository, ttl time.Duration) *CachedMaterialRepository {
	return &CachedMaterialRepository{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *CachedMaterialRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	created, err := r.next.Create(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	r.cache.Flush()
	return created, nil
}

func (r *CachedMaterialRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedMaterialRepository) List(ctx context.Context, houseType *entities.HouseType) ([]entities.Material, error) {
	key := allMaterialsKey
	if houseType != nil {
		key = "materials:" + string(*houseType)
	}

	if v, found := r.cache.Get(key); found {
		metrics.RecordCacheLookup(true)
		return copyMaterials(v.([]entities.Material)), nil
	}
	metrics.RecordCacheLookup(false)

	items, err := r.next.List(ctx, houseType)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(key, copyMaterials(items))
	return items, nil
}

func (r *CachedMaterialRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func copyMaterials(items []entities.Material) []entities.Material {
	out := make([]entities.Material, len(items))
	copy(out, items)
	return out
}
