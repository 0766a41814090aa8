package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
)

var (
	greetings = map[string]struct{}{
		"hi": {}, "hello": {}, "hey": {}, "hai": {}, "hlo": {},
	}

	// Категории, которые чат-бот понимает как прямой фильтр каталога
	knownCategories = []string{"home", "kitchen", "clothing", "accessories"}

	numberPattern = regexp.MustCompile(`\b\d+\b`)
)

// ChatbotUseCase разбирает сообщение пользователя и выбирает сценарий ответа:
// приветствие, меню, фильтр по категории, поиск похожих по ID или текстовый поиск.
type ChatbotUseCase struct {
	recommendUC RecommendUC
	catalogRepo CatalogRepository
	logger      logger.Logger
	defaultTopN int
}

func NewChatbotUC(recommendUC RecommendUC, catalogRepo CatalogRepository, logger logger.Logger, defaultTopN int) *ChatbotUseCase {
	return &ChatbotUseCase{
		recommendUC: recommendUC,
		catalogRepo: catalogRepo,
		logger:      logger,
		defaultTopN: defaultTopN,
	}
}

// Reply обрабатывает сообщение чат-бота.
func (u *ChatbotUseCase) Reply(ctx context.Context, req *ChatReq) (*ChatRes, error) {
	const op = "ChatbotUseCase.Reply"

	message := strings.ToLower(strings.TrimSpace(req.Message))
	if message == "" {
		return nil, e.Wrap(op, e.ErrMessageRequired)
	}

	if _, ok := greetings[message]; ok {
		return NewChatRes("Hello 👋! How can I help you today?", []RecommendedProduct{}, message), nil
	}

	if strings.Contains(message, "help") || strings.Contains(message, "menu") {
		return NewChatRes(menuText(), []RecommendedProduct{}, message), nil
	}

	for _, category := range knownCategories {
		if strings.Contains(message, category) {
			return u.replyWithCategory(ctx, message, category)
		}
	}

	topN := req.TopN
	if topN <= 0 {
		topN = u.defaultTopN
	}

	if productID := numberPattern.FindString(message); productID != "" {
		res, err := u.recommendUC.RecommendSimilar(ctx, NewRecommendSimilarReq(productID, topN))
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		return NewChatRes(formatRecommendations(res.Products), res.Products, message), nil
	}

	res, err := u.recommendUC.ChatbotRecommend(ctx, NewChatbotRecommendReq(message, topN))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewChatRes(formatRecommendations(res.Products), res.Products, message), nil
}

// replyWithCategory отвечает товарами одной категории напрямую из каталога,
// без ранжирования. Каталог перечитывается на каждый такой запрос.
func (u *ChatbotUseCase) replyWithCategory(ctx context.Context, message, category string) (*ChatRes, error) {
	const op = "ChatbotUseCase.replyWithCategory"

	products, err := u.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recs := make([]RecommendedProduct, 0)
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			recs = append(recs, NewRecommendedProduct(p))
		}
	}

	response := fmt.Sprintf("Here are some %s items you may like:", category)

	return NewChatRes(response, recs, message), nil
}

// formatRecommendations собирает текст ответа чат-бота по списку рекомендаций.
func formatRecommendations(recs []RecommendedProduct) string {
	if len(recs) == 0 {
		return "I couldn't find any matching eco-friendly products. Try again 😊"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d eco-friendly product(s):\n\n", len(recs))
	for i, r := range recs {
		fmt.Fprintf(&sb, "%d. **%s** (%s)\n", i+1, r.Name, r.Category)
		fmt.Fprintf(&sb, "   💰 Price: ₹%s\n", formatNumber(r.Price))
		fmt.Fprintf(&sb, "   🌱 CO₂: %s kg\n", formatNumber(r.CarbonFootprint))
		fmt.Fprintf(&sb, "   🆔 ID: %s\n\n", r.ProductID)
	}

	return sb.String()
}

func menuText() string {
	return "You can ask me:\n• Home items\n• Kitchen\n• Clothing\n• Accessories\n• Product ID (ex: 'show product 3')"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
