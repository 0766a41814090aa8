package usecase

import (
	"context"

	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/internal/recommender"
)

type CatalogRepository interface {
	LoadCatalog(ctx context.Context) ([]domain.Product, error)
	SaveCatalog(ctx context.Context, products []domain.Product) error
}

type ArtifactRepository interface {
	Save(ctx context.Context, model *recommender.Model) (string, error)
	Load(ctx context.Context) (*recommender.Model, error)
}

// ProductRepository читает живой каталог из PostgreSQL. Нужен только экспортёру.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
}

type CacheRepository interface {
	GetRecommendations(ctx context.Context, version, productID string, topN int) ([]RecommendedProduct, error)
	SetRecommendations(ctx context.Context, version, productID string, topN int, recs []RecommendedProduct) error
}
