package domain

// Product описывает строку каталога товаров
type Product struct {
	ProductID       string // строковый идентификатор, числовые ID приводятся к строке при загрузке
	Name            string
	Category        string
	Description     string
	Price           float64
	CarbonFootprint float64 // кг CO2, используется как эко-рейтинг
	ImagePath       string
}

func NewProduct(productID, name, category, description string, price, carbonFootprint float64, imagePath string) *Product {
	return &Product{
		ProductID:       productID,
		Name:            name,
		Category:        category,
		Description:     description,
		Price:           price,
		CarbonFootprint: carbonFootprint,
		ImagePath:       imagePath,
	}
}

// Meta возвращает текстовое описание товара для векторизации.
// Производное поле: всегда собирается заново из строки каталога, отдельно не хранится.
func (p *Product) Meta() string {
	return p.Name + " " + p.Category + " " + p.Description
}
