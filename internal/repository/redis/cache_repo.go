package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecobazaar/ml-backend/internal/cfg"
	"github.com/ecobazaar/ml-backend/internal/repository/redis/converter"
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/clients"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует готовые списки рекомендаций. Ключ включает версию модели,
// поэтому после переобучения старые записи не отдаются и доживают до своего TTL.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.RecommendationConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.RecommendationConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetRecommendations возвращает закэшированный список рекомендаций
// или nil без ошибки при промахе.
func (c *CacheRepo) GetRecommendations(ctx context.Context, version, productID string, topN int) ([]usecase.RecommendedProduct, error) {
	key := c.recommendationKey(version, productID, topN)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == r.Nil {
			return nil, nil // cache miss
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.RecommendationRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, nil // cache miss
	}

	return c.conv.ToArrUseCase(models), nil
}

// SetRecommendations кэширует непустой список рекомендаций с заданным TTL.
// Пустые списки не кэшируются: пустота чаще всего временная (модель догружается).
func (c *CacheRepo) SetRecommendations(ctx context.Context, version, productID string, topN int, recs []usecase.RecommendedProduct) error {
	if len(recs) == 0 {
		return nil
	}

	data, err := json.Marshal(c.conv.ToArrRedisModel(recs))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	key := c.recommendationKey(version, productID, topN)
	if err := c.client.Client.Set(ctx, key, data, c.cfg.RecommendationTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// recommendationKey возвращает Redis-ключ списка рекомендаций.
func (c *CacheRepo) recommendationKey(version, productID string, topN int) string {
	return fmt.Sprintf("rec:%s:%s:%d", version, productID, topN)
}
