package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/e"
)

const imageParams = "w=400&h=300&fit=crop&q=80&auto=format"

var photoIDPattern = regexp.MustCompile(`photo-([a-zA-Z0-9-]+)`)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RecommendationItem — представление рекомендации в ответе API.
// Image равен null, если у товара нет изображения.
type RecommendationItem struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	Image           *string `json:"image"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

// HomepageRecommendationItem — карточка подборки главной страницы.
// Помимо числовых полей несёт отображаемые строки цены и углеродного следа.
type HomepageRecommendationItem struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           string  `json:"price"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	Carbon          string  `json:"carbon"`
	Image           *string `json:"image"`
}

type HomepageRecommendationsResponse struct {
	Recommendations []HomepageRecommendationItem `json:"recommendations"`
}

type ChatbotResponse struct {
	Response        string               `json:"response"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Message         string               `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductIDRequired):
		return http.StatusBadRequest, e.ErrProductIDRequired.Error()
	case errors.Is(err, e.ErrMessageRequired):
		return http.StatusBadRequest, e.ErrMessageRequired.Error()
	case errors.Is(err, e.ErrInvalidTopN):
		return http.StatusBadRequest, e.ErrInvalidTopN.Error()
	case errors.Is(err, e.ErrModelNotReady):
		return http.StatusServiceUnavailable, e.ErrModelNotReady.Error()
	case errors.Is(err, e.ErrArtifactNotFound):
		return http.StatusServiceUnavailable, e.ErrModelNotReady.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// toRecommendationItems проецирует рекомендации в формат ответа,
// нормализуя ссылки на изображения.
func toRecommendationItems(recs []usecase.RecommendedProduct) []RecommendationItem {
	items := make([]RecommendationItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, RecommendationItem{
			ProductID:       r.ProductID,
			Name:            r.Name,
			Category:        r.Category,
			Price:           r.Price,
			CarbonFootprint: r.CarbonFootprint,
			Image:           fixImageURL(r.ImagePath),
		})
	}

	return items
}

// toHomepageItems проецирует рекомендации в формат карточек главной страницы.
func toHomepageItems(recs []usecase.RecommendedProduct) []HomepageRecommendationItem {
	items := make([]HomepageRecommendationItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, HomepageRecommendationItem{
			ProductID:       r.ProductID,
			Name:            r.Name,
			Category:        r.Category,
			Price:           "₹" + formatAmount(r.Price),
			CarbonFootprint: r.CarbonFootprint,
			Carbon:          formatAmount(r.CarbonFootprint) + " kg CO₂e",
			Image:           fixImageURL(r.ImagePath),
		})
	}

	return items
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixImageURL нормализует ссылки Unsplash под карточку товара 400x300.
// Ссылки вида .../photo-<id> переписываются на CDN images.unsplash.com,
// остальным unsplash-ссылкам параметры дописываются. Пустой путь — nil.
func fixImageURL(url string) *string {
	if url == "" {
		return nil
	}

	if !strings.Contains(url, "unsplash.com") {
		return &url
	}

	if strings.Contains(url, "/photo-") {
		if m := photoIDPattern.FindStringSubmatch(url); m != nil {
			fixed := "https://images.unsplash.com/photo-" + m[1] + "?" + imageParams
			return &fixed
		}
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	fixed := url + sep + imageParams

	return &fixed
}
