package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ecobazaar/ml-backend/pkg/e"
)

type mockRecommendUC struct {
	similarReq *RecommendSimilarReq
	chatReq    *ChatbotRecommendReq
	res        *RecommendRes
	err        error
}

func (m *mockRecommendUC) RecommendSimilar(ctx context.Context, req *RecommendSimilarReq) (*RecommendRes, error) {
	m.similarReq = req
	return m.res, m.err
}

func (m *mockRecommendUC) ChatbotRecommend(ctx context.Context, req *ChatbotRecommendReq) (*RecommendRes, error) {
	m.chatReq = req
	return m.res, m.err
}

func (m *mockRecommendUC) HomepageRecommendations(ctx context.Context, topN int) (*RecommendRes, error) {
	return m.res, m.err
}

func newChatbotUC(rec *mockRecommendUC, catalog *mockCatalogRepo) *ChatbotUseCase {
	return NewChatbotUC(rec, catalog, nopLogger{}, 5)
}

func TestReply_EmptyMessage(t *testing.T) {
	uc := newChatbotUC(&mockRecommendUC{}, &mockCatalogRepo{})

	if _, err := uc.Reply(context.Background(), NewChatReq("   ", 0)); !errors.Is(err, e.ErrMessageRequired) {
		t.Fatalf("Reply() error = %v, want ErrMessageRequired", err)
	}
}

func TestReply_Greetings(t *testing.T) {
	uc := newChatbotUC(&mockRecommendUC{}, &mockCatalogRepo{})

	for _, greeting := range []string{"hi", "Hello", "HEY", "hai", "hlo", "  hello  "} {
		res, err := uc.Reply(context.Background(), NewChatReq(greeting, 0))
		if err != nil {
			t.Fatalf("Reply(%q) error = %v", greeting, err)
		}
		if !strings.Contains(res.Response, "Hello") {
			t.Errorf("Reply(%q) = %q, want greeting", greeting, res.Response)
		}
		if len(res.Recommendations) != 0 {
			t.Errorf("Reply(%q) returned recommendations for a greeting", greeting)
		}
	}
}

func TestReply_Menu(t *testing.T) {
	uc := newChatbotUC(&mockRecommendUC{}, &mockCatalogRepo{})

	for _, msg := range []string{"help", "show me the menu", "HELP me"} {
		res, err := uc.Reply(context.Background(), NewChatReq(msg, 0))
		if err != nil {
			t.Fatalf("Reply(%q) error = %v", msg, err)
		}
		if !strings.Contains(res.Response, "You can ask me") {
			t.Errorf("Reply(%q) = %q, want menu text", msg, res.Response)
		}
	}
}

func TestReply_CategoryFilter(t *testing.T) {
	catalog := &mockCatalogRepo{products: catalogFixture()}
	uc := newChatbotUC(&mockRecommendUC{}, catalog)

	res, err := uc.Reply(context.Background(), NewChatReq("show me accessories", 0))
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(res.Response, "accessories items") {
		t.Errorf("Reply() = %q, want category response", res.Response)
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0].ProductID != "1" {
		t.Errorf("Reply() recommendations = %+v, want only product 1", res.Recommendations)
	}
}

func TestReply_ProductIDExtraction(t *testing.T) {
	rec := &mockRecommendUC{res: NewRecommendRes([]RecommendedProduct{
		{ProductID: "4", Name: "Organic Cotton Shirt", Category: "Clothing", Price: 899, CarbonFootprint: 0.9},
	})}
	uc := newChatbotUC(rec, &mockCatalogRepo{})

	res, err := uc.Reply(context.Background(), NewChatReq("show product 12 please", 3))
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if rec.similarReq == nil {
		t.Fatal("Reply() did not route to RecommendSimilar")
	}
	if rec.similarReq.ProductID != "12" {
		t.Errorf("extracted product ID = %q, want %q", rec.similarReq.ProductID, "12")
	}
	if rec.similarReq.TopN != 3 {
		t.Errorf("TopN = %d, want 3", rec.similarReq.TopN)
	}
	if !strings.Contains(res.Response, "Organic Cotton Shirt") {
		t.Errorf("Reply() = %q, want formatted recommendation", res.Response)
	}
}

func TestReply_FreeTextSearch(t *testing.T) {
	rec := &mockRecommendUC{res: NewRecommendRes([]RecommendedProduct{
		{ProductID: "2", Name: "Bamboo Toothbrush Set", Category: "Home", Price: 149, CarbonFootprint: 0.2},
	})}
	uc := newChatbotUC(rec, &mockCatalogRepo{})

	res, err := uc.Reply(context.Background(), NewChatReq("something for brushing teeth", 0))
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if rec.chatReq == nil {
		t.Fatal("Reply() did not route to ChatbotRecommend")
	}
	if rec.chatReq.TopN != 5 {
		t.Errorf("TopN = %d, want default 5", rec.chatReq.TopN)
	}
	if !strings.Contains(res.Response, "I found 1 eco-friendly product(s)") {
		t.Errorf("Reply() = %q, want formatted recommendation", res.Response)
	}
	if !strings.Contains(res.Response, "₹149") {
		t.Errorf("Reply() = %q, want price line", res.Response)
	}
}

func TestReply_NoMatches(t *testing.T) {
	rec := &mockRecommendUC{res: NewRecommendRes([]RecommendedProduct{})}
	uc := newChatbotUC(rec, &mockCatalogRepo{})

	res, err := uc.Reply(context.Background(), NewChatReq("zorblatt", 0))
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(res.Response, "couldn't find any matching") {
		t.Errorf("Reply() = %q, want empty-result response", res.Response)
	}
}
