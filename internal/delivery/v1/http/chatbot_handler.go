package http

import (
	"net/http"
	"strings"

	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
)

type ChatbotHandler struct {
	chatbotUsecase usecase.ChatbotUC
	logger         logger.Logger
}

func NewChatbotHandler(chatbotUsecase usecase.ChatbotUC, logger logger.Logger) *ChatbotHandler {
	return &ChatbotHandler{chatbotUsecase: chatbotUsecase, logger: logger}
}

type chatbotRequest struct {
	Message string `json:"message"`
	TopN    int    `json:"top_n"`
}

// chat
//
//	@Summary		Сообщение чат-боту
//	@Description	Разбирает сообщение и возвращает текст ответа со списком рекомендаций
//	@Tags			chatbot
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatbotRequest	true	"Сообщение пользователя"
//	@Success		200		{object}	ChatbotResponse
//	@Failure		400		{object}	ErrorResponse	"Пустое сообщение"
//	@Router			/chatbot [post]
func (h *ChatbotHandler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, e.ErrMessageRequired)
		return
	}

	res, err := h.chatbotUsecase.Reply(r.Context(), usecase.NewChatReq(req.Message, req.TopN))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ChatbotResponse{
		Response:        res.Response,
		Recommendations: toRecommendationItems(res.Recommendations),
		Message:         res.Message,
	})
}
