//go:generate goverter gen github.com/ecobazaar/ml-backend/internal/repository/redis/converter

package converter

import (
	"github.com/ecobazaar/ml-backend/internal/usecase"
)

// goverter:converter
type RecommendationConverter interface {
	ToRedisModel(entity *usecase.RecommendedProduct) *RecommendationRedisModel
	ToUseCase(model *RecommendationRedisModel) *usecase.RecommendedProduct
	ToArrRedisModel(entities []usecase.RecommendedProduct) []RecommendationRedisModel
	ToArrUseCase(models []RecommendationRedisModel) []usecase.RecommendedProduct
}
