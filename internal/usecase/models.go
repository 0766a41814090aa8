package usecase

import (
	"time"

	"github.com/ecobazaar/ml-backend/internal/domain"
)

// RECOMMEND USECASE

// RecommendSimilarReq — запрос похожих товаров по идентификатору.
type RecommendSimilarReq struct {
	ProductID string
	TopN      int
}

// ChatbotRecommendReq — запрос рекомендаций по произвольному тексту.
type ChatbotRecommendReq struct {
	Message string
	TopN    int
}

// RecommendRes — упорядоченный по убыванию близости список рекомендаций.
type RecommendRes struct {
	Products []RecommendedProduct
}

// RecommendedProduct — DTO рекомендации с фиксированным набором полей для внешнего использования.
type RecommendedProduct struct {
	ProductID       string
	Name            string
	Category        string
	CarbonFootprint float64
	Price           float64
	ImagePath       string
}

// CHATBOT USECASE

type ChatReq struct {
	Message string
	TopN    int
}

type ChatRes struct {
	Response        string
	Recommendations []RecommendedProduct
	Message         string
}

// TRAIN USECASE

// TrainRes — результат запуска обучения.
type TrainRes struct {
	Version   string
	ObjectKey string
	Products  int
	TrainedAt time.Time
}

// MAPPERS

func NewRecommendSimilarReq(productID string, topN int) *RecommendSimilarReq {
	return &RecommendSimilarReq{
		ProductID: productID,
		TopN:      topN,
	}
}

func NewChatbotRecommendReq(message string, topN int) *ChatbotRecommendReq {
	return &ChatbotRecommendReq{
		Message: message,
		TopN:    topN,
	}
}

func NewRecommendRes(products []RecommendedProduct) *RecommendRes {
	return &RecommendRes{Products: products}
}

func NewChatReq(message string, topN int) *ChatReq {
	return &ChatReq{
		Message: message,
		TopN:    topN,
	}
}

func NewChatRes(response string, recommendations []RecommendedProduct, message string) *ChatRes {
	return &ChatRes{
		Response:        response,
		Recommendations: recommendations,
		Message:         message,
	}
}

func NewTrainRes(version, objectKey string, products int, trainedAt time.Time) *TrainRes {
	return &TrainRes{
		Version:   version,
		ObjectKey: objectKey,
		Products:  products,
		TrainedAt: trainedAt,
	}
}

// NewRecommendedProduct проецирует строку каталога в DTO рекомендации.
func NewRecommendedProduct(p domain.Product) RecommendedProduct {
	return RecommendedProduct{
		ProductID:       p.ProductID,
		Name:            p.Name,
		Category:        p.Category,
		CarbonFootprint: p.CarbonFootprint,
		Price:           p.Price,
		ImagePath:       p.ImagePath,
	}
}
