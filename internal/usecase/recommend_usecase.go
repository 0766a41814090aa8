package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecobazaar/ml-backend/internal/recommender"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
)

// RecommendUseCase реализует выдачу рекомендаций поверх загруженного артефакта.
type RecommendUseCase struct {
	provider      ModelProvider
	catalogRepo   CatalogRepository
	cacheRepo     CacheRepository
	logger        logger.Logger
	defaultTopN   int
	homepageQuery string
}

func NewRecommendUC(
	provider ModelProvider,
	catalogRepo CatalogRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
	defaultTopN int,
	homepageQuery string,
) *RecommendUseCase {
	return &RecommendUseCase{
		provider:      provider,
		catalogRepo:   catalogRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		defaultTopN:   defaultTopN,
		homepageQuery: homepageQuery,
	}
}

// RecommendSimilar возвращает товары, похожие на указанный. Вектор товара
// берётся из матрицы артефакта, повторная векторизация не выполняется;
// сам товар из выдачи исключается. Неизвестный product_id — это не ошибка,
// а пустой результат: вызывающий слой различает эти случаи только по логам.
func (u *RecommendUseCase) RecommendSimilar(ctx context.Context, req *RecommendSimilarReq) (*RecommendRes, error) {
	const op = "RecommendUseCase.RecommendSimilar"

	model, err := u.provider.Current()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	topN := u.normalizeTopN(req.TopN)
	productID := strings.TrimSpace(req.ProductID)

	if cached, err := u.cacheRepo.GetRecommendations(ctx, model.Version, productID, topN); err != nil {
		u.logger.Warnf("Recommendation cache lookup failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return NewRecommendRes(cached), nil
	}

	idx := model.IndexByProductID(productID)
	if idx == recommender.NoExclude {
		u.logger.Warnf("Product ID not found: %s", productID)
		return NewRecommendRes([]RecommendedProduct{}), nil
	}

	ranked, err := recommender.Rank(model.Matrix.Rows[idx], model.Matrix, topN, idx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recs := u.project(model, ranked)

	// Фоновое наполнение кэша
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := u.cacheRepo.SetRecommendations(bgCtx, model.Version, productID, topN, recs); err != nil {
			u.logger.Warnf("Failed to cache recommendations in background: %v", e.Wrap(op, err))
		}
	}()

	return NewRecommendRes(recs), nil
}

// ChatbotRecommend ищет товары по произвольному тексту. Текст трансформируется
// через замороженный векторизатор артефакта. Запрос без общих со словарём
// термов даёт нулевые рейтинги, но top-N строк всё равно возвращается.
func (u *RecommendUseCase) ChatbotRecommend(ctx context.Context, req *ChatbotRecommendReq) (*RecommendRes, error) {
	const op = "RecommendUseCase.ChatbotRecommend"

	model, err := u.provider.Current()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	query, err := model.Vectorizer.Transform(req.Message)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ranked, err := recommender.Rank(query, model.Matrix, u.normalizeTopN(req.TopN), recommender.NoExclude)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewRecommendRes(u.project(model, ranked)), nil
}

// HomepageRecommendations собирает подборку для главной страницы.
// Если артефакт недоступен, явно откатывается на первые topN строк каталога.
func (u *RecommendUseCase) HomepageRecommendations(ctx context.Context, topN int) (*RecommendRes, error) {
	const op = "RecommendUseCase.HomepageRecommendations"

	topN = u.normalizeTopN(topN)

	res, err := u.ChatbotRecommend(ctx, NewChatbotRecommendReq(u.homepageQuery, topN))
	if err == nil {
		return res, nil
	}

	if !isModelUnavailable(err) {
		return nil, e.Wrap(op, err)
	}

	u.logger.Warnf("Model unavailable, falling back to catalog prefix: %v", err)

	products, err := u.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if topN > len(products) {
		topN = len(products)
	}

	recs := make([]RecommendedProduct, 0, topN)
	for _, p := range products[:topN] {
		recs = append(recs, NewRecommendedProduct(p))
	}

	return NewRecommendRes(recs), nil
}

// project отображает ранжированные индексы строк в DTO рекомендаций.
func (u *RecommendUseCase) project(model *recommender.Model, ranked []recommender.Scored) []RecommendedProduct {
	recs := make([]RecommendedProduct, 0, len(ranked))
	for _, s := range ranked {
		recs = append(recs, NewRecommendedProduct(model.Products[s.Index]))
	}

	return recs
}

func (u *RecommendUseCase) normalizeTopN(topN int) int {
	if topN <= 0 {
		return u.defaultTopN
	}

	return topN
}

// isModelUnavailable сообщает, относится ли ошибка к недоступности артефакта.
// Только такие ошибки допускают откат на неранжированный префикс каталога.
func isModelUnavailable(err error) bool {
	return errors.Is(err, e.ErrModelNotReady) ||
		errors.Is(err, e.ErrArtifactNotFound) ||
		errors.Is(err, e.ErrArtifactCorrupt)
}
