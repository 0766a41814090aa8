package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/internal/recommender"
	"github.com/ecobazaar/ml-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any)            {}
func (nopLogger) Warnf(format string, args ...any)            {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type mockProvider struct {
	model *recommender.Model
	err   error
}

func (m *mockProvider) Current() (*recommender.Model, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.model, nil
}

func (m *mockProvider) Reload(ctx context.Context) error { return nil }

type mockCatalogRepo struct {
	products []domain.Product
	err      error
	saved    []domain.Product
}

func (m *mockCatalogRepo) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockCatalogRepo) SaveCatalog(ctx context.Context, products []domain.Product) error {
	m.saved = products
	return nil
}

type mockCacheRepo struct {
	mu   sync.Mutex
	data map[string][]RecommendedProduct
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{data: make(map[string][]RecommendedProduct)}
}

func (m *mockCacheRepo) key(version, productID string, topN int) string {
	return fmt.Sprintf("%s:%s:%d", version, productID, topN)
}

func (m *mockCacheRepo) GetRecommendations(ctx context.Context, version, productID string, topN int) ([]RecommendedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[m.key(version, productID, topN)], nil
}

func (m *mockCacheRepo) SetRecommendations(ctx context.Context, version, productID string, topN int, recs []RecommendedProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[m.key(version, productID, topN)] = recs
	return nil
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ProductID: "1", Name: "Organic Cotton Tote Bag", Category: "Accessories", Description: "Reusable organic cotton shopping bag", Price: 299, CarbonFootprint: 0.5, ImagePath: "tote.jpg"},
		{ProductID: "2", Name: "Bamboo Toothbrush Set", Category: "Home", Description: "Biodegradable bamboo toothbrush pack", Price: 149, CarbonFootprint: 0.2},
		{ProductID: "3", Name: "Solar Power Bank", Category: "Electronics", Description: "Portable solar powered charger", Price: 1999, CarbonFootprint: 1.1},
		{ProductID: "4", Name: "Organic Cotton Shirt", Category: "Clothing", Description: "Soft organic cotton shirt", Price: 899, CarbonFootprint: 0.9},
	}
}

func trainedFixture(t *testing.T) *recommender.Model {
	t.Helper()

	model, err := recommender.Train(catalogFixture(), 0)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	model.Version = "test-version"

	return model
}

func newRecommendUC(t *testing.T) *RecommendUseCase {
	t.Helper()

	return NewRecommendUC(
		&mockProvider{model: trainedFixture(t)},
		&mockCatalogRepo{products: catalogFixture()},
		newMockCacheRepo(),
		nopLogger{},
		5,
		"eco-friendly sustainable products",
	)
}

func TestRecommendSimilar_ExcludesSelf(t *testing.T) {
	uc := newRecommendUC(t)

	for _, id := range []string{"1", "2", "3", "4"} {
		res, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq(id, 10))
		if err != nil {
			t.Fatalf("RecommendSimilar(%q) error = %v", id, err)
		}

		for _, r := range res.Products {
			if r.ProductID == id {
				t.Errorf("RecommendSimilar(%q) returned the product itself", id)
			}
		}
		if len(res.Products) > len(catalogFixture())-1 {
			t.Errorf("RecommendSimilar(%q) returned %d rows, want at most %d", id, len(res.Products), len(catalogFixture())-1)
		}
	}
}

func TestRecommendSimilar_NotFoundIsEmptyNotError(t *testing.T) {
	uc := newRecommendUC(t)

	res, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq("no-such-id", 5))
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v, want nil", err)
	}
	if len(res.Products) != 0 {
		t.Errorf("RecommendSimilar() returned %d rows, want 0", len(res.Products))
	}
}

func TestRecommendSimilar_BoundedCardinality(t *testing.T) {
	uc := newRecommendUC(t)

	res, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq("1", 2))
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(res.Products) > 2 {
		t.Errorf("RecommendSimilar() returned %d rows, want at most 2", len(res.Products))
	}
}

func TestRecommendSimilar_RoundTripIDs(t *testing.T) {
	uc := newRecommendUC(t)
	known := make(map[string]struct{})
	for _, p := range catalogFixture() {
		known[p.ProductID] = struct{}{}
	}

	for id := range known {
		res, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq(id, 3))
		if err != nil {
			t.Fatalf("RecommendSimilar(%q) error = %v", id, err)
		}
		for _, r := range res.Products {
			if _, ok := known[r.ProductID]; !ok {
				t.Errorf("RecommendSimilar(%q) returned unknown product %q", id, r.ProductID)
			}
		}
	}
}

func TestRecommendSimilar_TextuallyClosestFirst(t *testing.T) {
	uc := newRecommendUC(t)

	// "Organic Cotton Tote Bag" текстуально ближе к "Organic Cotton Shirt", чем к остальным
	res, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq("1", 2))
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(res.Products) != 2 {
		t.Fatalf("RecommendSimilar() returned %d rows, want 2", len(res.Products))
	}
	if res.Products[0].ProductID != "4" {
		t.Errorf("top recommendation = %q, want %q", res.Products[0].ProductID, "4")
	}
}

func TestRecommendSimilar_ModelNotReady(t *testing.T) {
	uc := NewRecommendUC(
		&mockProvider{err: e.ErrModelNotReady},
		&mockCatalogRepo{},
		newMockCacheRepo(),
		nopLogger{},
		5,
		"eco-friendly sustainable products",
	)

	if _, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq("1", 5)); !errors.Is(err, e.ErrModelNotReady) {
		t.Fatalf("RecommendSimilar() error = %v, want ErrModelNotReady", err)
	}
}

func TestChatbotRecommend_VocabularyRobustness(t *testing.T) {
	uc := newRecommendUC(t)

	// Запрос без единого терма из словаря: нулевые рейтинги, но ровно topN строк
	res, err := uc.ChatbotRecommend(context.Background(), NewChatbotRecommendReq("xyzzy quux zorblatt", 3))
	if err != nil {
		t.Fatalf("ChatbotRecommend() error = %v", err)
	}
	if len(res.Products) != 3 {
		t.Errorf("ChatbotRecommend() returned %d rows, want 3", len(res.Products))
	}

	// Стабильный порядок при нулевых рейтингах — исходный порядок каталога
	for i, want := range []string{"1", "2", "3"} {
		if res.Products[i].ProductID != want {
			t.Errorf("row %d = %q, want %q", i, res.Products[i].ProductID, want)
		}
	}
}

func TestChatbotRecommend_RelevantQuery(t *testing.T) {
	uc := newRecommendUC(t)

	res, err := uc.ChatbotRecommend(context.Background(), NewChatbotRecommendReq("bamboo toothbrush", 1))
	if err != nil {
		t.Fatalf("ChatbotRecommend() error = %v", err)
	}
	if len(res.Products) != 1 || res.Products[0].ProductID != "2" {
		t.Errorf("ChatbotRecommend() = %+v, want product 2", res.Products)
	}
}

func TestHomepageRecommendations_FallbackToCatalogPrefix(t *testing.T) {
	uc := NewRecommendUC(
		&mockProvider{err: e.ErrArtifactNotFound},
		&mockCatalogRepo{products: catalogFixture()},
		newMockCacheRepo(),
		nopLogger{},
		5,
		"eco-friendly sustainable products",
	)

	res, err := uc.HomepageRecommendations(context.Background(), 2)
	if err != nil {
		t.Fatalf("HomepageRecommendations() error = %v, want fallback", err)
	}
	if len(res.Products) != 2 {
		t.Fatalf("fallback returned %d rows, want 2", len(res.Products))
	}
	for i, want := range []string{"1", "2"} {
		if res.Products[i].ProductID != want {
			t.Errorf("fallback row %d = %q, want %q", i, res.Products[i].ProductID, want)
		}
	}
}

func TestHomepageRecommendations_UsesModelWhenAvailable(t *testing.T) {
	uc := newRecommendUC(t)

	res, err := uc.HomepageRecommendations(context.Background(), 3)
	if err != nil {
		t.Fatalf("HomepageRecommendations() error = %v", err)
	}
	if len(res.Products) != 3 {
		t.Errorf("HomepageRecommendations() returned %d rows, want 3", len(res.Products))
	}
}

func TestRecommendSimilar_ProjectionFields(t *testing.T) {
	uc := newRecommendUC(t)

	res, err := uc.RecommendSimilar(context.Background(), NewRecommendSimilarReq("2", 1))
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(res.Products) == 0 {
		t.Fatal("RecommendSimilar() returned no rows")
	}

	r := res.Products[0]
	if r.ProductID == "" || r.Name == "" || r.Category == "" {
		t.Errorf("projection is missing fields: %+v", r)
	}
}
