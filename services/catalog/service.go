package catalog

import (
	"context"
	"encoding/json"
	"time"

	instrumentRepo "instrufix/database/repository/instrument"
	"instrufix/models"
	"instrufix/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:instrumentFamilies"
	catalogCacheTTL = time.Hour
)

// DefaultCatalogService is the production implementation, backed by Mongo
// with a Redis cache in front. The catalog changes rarely, so cache misses
// are the exception.
type DefaultCatalogService struct {
	Repo  instrumentRepo.InstrumentRepository
	Cache *redis.Client
}

// GetFamilies returns the full catalog, cache-aside.
func (s *DefaultCatalogService) GetFamilies(ctx context.Context) ([]models.InstrumentFamily, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, catalogCacheKey).Result(); err == nil {
			var families []models.InstrumentFamily
			if err := json.Unmarshal([]byte(data), &families); err == nil {
				return families, nil
			}
			// Corrupt cache entry: fall through to the repository.
		}
	}

	families, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(families); err == nil {
			if err := s.Cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache instrument catalog", zap.Error(err))
			}
		}
	}
	return families, nil
}

// GetFamiliesByType returns the families containing a matching instrument type.
func (s *DefaultCatalogService) GetFamiliesByType(ctx context.Context, typeName string) ([]models.InstrumentFamily, error) {
	return s.Repo.GetByTypeName(typeName)
}

// FamilyForType reverse-looks-up the family owning an instrument type.
// Returns "" without error when the type is not catalogued.
func (s *DefaultCatalogService) FamilyForType(ctx context.Context, typeName string) (string, error) {
	families, err := s.GetFamilies(ctx)
	if err != nil {
		return "", err
	}
	return models.FamilyForType(families, typeName), nil
}
