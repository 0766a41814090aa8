package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
)

const homepageDefaultTopN = 6

type RecommendHandler struct {
	recommendUsecase usecase.RecommendUC
	logger           logger.Logger
}

func NewRecommendHandler(recommendUsecase usecase.RecommendUC, logger logger.Logger) *RecommendHandler {
	return &RecommendHandler{recommendUsecase: recommendUsecase, logger: logger}
}

// productID принимает и строку, и JSON-число: клиенты исторически передают
// числовые идентификаторы, оба варианта приводятся к строке.
type productID string

func (p *productID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = productID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = productID(n.String())

	return nil
}

type recommendRequest struct {
	ProductID productID `json:"product_id"`
	TopN      int       `json:"top_n"`
}

type recommendationsRequest struct {
	TopN int `json:"top_n"`
}

// recommendSimilar
//
//	@Summary		Похожие товары
//	@Description	Возвращает товары, похожие на указанный, по убыванию близости
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recommendRequest	true	"Идентификатор товара и размер выдачи"
//	@Success		200		{object}	RecommendationsResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		503		{object}	ErrorResponse	"Модель ещё не загружена"
//	@Router			/recommend [post]
func (h *RecommendHandler) recommendSimilar(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if strings.TrimSpace(string(req.ProductID)) == "" {
		h.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrProductIDRequired.Error())
		WriteError(w, e.ErrProductIDRequired)
		return
	}
	if req.TopN < 0 {
		WriteError(w, e.ErrInvalidTopN)
		return
	}

	res, err := h.recommendUsecase.RecommendSimilar(r.Context(), usecase.NewRecommendSimilarReq(string(req.ProductID), req.TopN))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, RecommendationsResponse{
		Recommendations: toRecommendationItems(res.Products),
	})
}

// homepageRecommendations
//
//	@Summary		Подборка для главной страницы
//	@Description	Возвращает подборку эко-товаров; при недоступной модели — первые строки каталога
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			top_n	query		int	false	"Размер выдачи (по умолчанию 6)"
//	@Success		200		{object}	HomepageRecommendationsResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/recommendations [get]
func (h *RecommendHandler) homepageRecommendations(w http.ResponseWriter, r *http.Request) {
	topN := homepageDefaultTopN

	switch r.Method {
	case http.MethodGet:
		if raw := r.URL.Query().Get("top_n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				WriteError(w, e.ErrInvalidTopN)
				return
			}
			topN = parsed
		}
	case http.MethodPost:
		var req recommendationsRequest
		if err := decodeJSON(r, &req); err != nil {
			WriteError(w, err)
			return
		}
		if req.TopN != 0 {
			topN = req.TopN
		}
	}

	res, err := h.recommendUsecase.HomepageRecommendations(r.Context(), topN)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, HomepageRecommendationsResponse{
		Recommendations: toHomepageItems(res.Products),
	})
}
