package http

import (
	"net/http"

	_ "github.com/ecobazaar/ml-backend/docs" // Импорт сгенерированных файлов
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(recUC usecase.RecommendUC, chatUC usecase.ChatbotUC) {
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Get("/", home)
	r.router.Get("/chatbot/health", chatbotHealth)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		recHandler := NewRecommendHandler(recUC, r.logger)
		chatHandler := NewChatbotHandler(chatUC, r.logger)
		registerRecommendRoutes(v1, recHandler)
		registerChatbotRoutes(v1, chatHandler)
	})
}

func registerRecommendRoutes(router chi.Router, h *RecommendHandler) {
	router.Post("/recommend", h.recommendSimilar)
	router.Get("/recommendations", h.homepageRecommendations)
	router.Post("/recommendations", h.homepageRecommendations)
}

func registerChatbotRoutes(router chi.Router, h *ChatbotHandler) {
	router.Post("/chatbot", h.chat)
}

func home(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{
		"message": "EcoBazaar ML Recommender API running!",
	})
}

func chatbotHealth(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "EcoBazaar Chatbot",
	})
}
