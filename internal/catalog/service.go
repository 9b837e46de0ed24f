package catalog

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"mercato-be/internal/logger"
)

const (
	categoriesCacheKey = "catalog:categories"
	categoriesCacheTTL = 5 * time.Minute
)

// Cache is the subset of the redis client the catalog needs. Satisfied by
// *cache.Client; nil disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Service interface {
	ProductsByRef(ctx context.Context, ref ProductRef) ([]Product, error)
	ProductsByName(ctx context.Context, name string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

type service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) Service {
	return &service{repo: repo, cache: cache}
}

func (s *service) ProductsByRef(ctx context.Context, ref ProductRef) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ProductsByRef"),
	)

	products, err := s.repo.ProductsByRef(ctx, ref)
	if err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	log.Info("products fetched", zap.Int("count", len(products)))
	return products, nil
}

func (s *service) ProductsByName(ctx context.Context, name string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ProductsByName"),
		zap.String("name", name),
	)

	products, err := s.repo.ProductsByName(ctx, name)
	if err != nil {
		log.Error("failed to search products", zap.Error(err))
		return nil, err
	}

	log.Info("products searched", zap.Int("count", len(products)))
	return products, nil
}

// Categories serves the listing read-through: cache errors fall back to
// the database and never fail the request.
func (s *service) Categories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Categories"),
	)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, categoriesCacheKey); err == nil {
			var categories []Category
			if err := json.Unmarshal([]byte(raw), &categories); err == nil {
				log.Debug("categories served from cache", zap.Int("count", len(categories)))
				return categories, nil
			}
			log.Warn("cached categories unreadable, falling through", zap.Error(err))
		}
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		log.Error("failed to fetch categories", zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(categories); err == nil {
			if err := s.cache.Set(ctx, categoriesCacheKey, string(raw), categoriesCacheTTL); err != nil {
				log.Warn("failed to cache categories", zap.Error(err))
			}
		}
	}

	log.Info("categories fetched", zap.Int("count", len(categories)))
	return categories, nil
}
