package http

import (
	"testing"

	"github.com/ecobazaar/ml-backend/internal/usecase"
)

func TestFixImageURL_Empty(t *testing.T) {
	if got := fixImageURL(""); got != nil {
		t.Errorf("fixImageURL(\"\") = %v, want nil", *got)
	}
}

func TestFixImageURL_NonUnsplashUntouched(t *testing.T) {
	url := "https://cdn.example.com/img/tote.jpg"

	got := fixImageURL(url)
	if got == nil || *got != url {
		t.Errorf("fixImageURL(%q) = %v, want unchanged", url, got)
	}
}

func TestFixImageURL_PhotoIDRewrittenToCDN(t *testing.T) {
	got := fixImageURL("https://unsplash.com/photos/photo-1556228453-efd6c1ff04f6")

	want := "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=400&h=300&fit=crop&q=80&auto=format"
	if got == nil || *got != want {
		t.Errorf("fixImageURL() = %v, want %q", got, want)
	}
}

func TestFixImageURL_ParamsAppended(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "no query string",
			url:  "https://unsplash.com/s/toothbrush",
			want: "https://unsplash.com/s/toothbrush?w=400&h=300&fit=crop&q=80&auto=format",
		},
		{
			name: "existing query string",
			url:  "https://unsplash.com/s/toothbrush?utm=1",
			want: "https://unsplash.com/s/toothbrush?utm=1&w=400&h=300&fit=crop&q=80&auto=format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixImageURL(tt.url)
			if got == nil || *got != tt.want {
				t.Errorf("fixImageURL(%q) = %v, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestToRecommendationItems(t *testing.T) {
	items := toRecommendationItems([]usecase.RecommendedProduct{
		{ProductID: "1", Name: "Tote Bag", Category: "Accessories", Price: 299, CarbonFootprint: 0.5, ImagePath: ""},
		{ProductID: "2", Name: "Toothbrush", Category: "Home", Price: 149, CarbonFootprint: 0.2, ImagePath: "https://cdn.example.com/brush.jpg"},
	})

	if len(items) != 2 {
		t.Fatalf("toRecommendationItems() returned %d items, want 2", len(items))
	}
	if items[0].Image != nil {
		t.Errorf("empty image path should map to null, got %v", *items[0].Image)
	}
	if items[1].Image == nil || *items[1].Image != "https://cdn.example.com/brush.jpg" {
		t.Errorf("image = %v, want original URL", items[1].Image)
	}
}

func TestToHomepageItems_DisplayFields(t *testing.T) {
	items := toHomepageItems([]usecase.RecommendedProduct{
		{ProductID: "1", Name: "Tote Bag", Category: "Accessories", Price: 299.5, CarbonFootprint: 0.8},
	})

	if len(items) != 1 {
		t.Fatalf("toHomepageItems() returned %d items, want 1", len(items))
	}
	if items[0].Price != "₹299.5" {
		t.Errorf("Price = %q, want %q", items[0].Price, "₹299.5")
	}
	if items[0].Carbon != "0.8 kg CO₂e" {
		t.Errorf("Carbon = %q, want %q", items[0].Carbon, "0.8 kg CO₂e")
	}
	if items[0].CarbonFootprint != 0.8 {
		t.Errorf("CarbonFootprint = %v, want 0.8", items[0].CarbonFootprint)
	}
}
