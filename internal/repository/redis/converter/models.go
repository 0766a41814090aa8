package converter

// RecommendationRedisModel — формат записи рекомендации в кэше.
type RecommendationRedisModel struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	Price           float64 `json:"price"`
	ImagePath       string  `json:"image_path"`
}
