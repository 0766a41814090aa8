package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ecobazaar/ml-backend/internal/cfg"
	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// Колонки, без которых каталог не загружается. Остальные колонки необязательны:
// отсутствующий текст превращается в пустую строку, отсутствующее число — в ноль.
var requiredColumns = []string{"product_id", "name", "category", "description"}

// CatalogRepo читает и пишет CSV-выгрузку каталога товаров.
type CatalogRepo struct {
	cfg *cfg.CatalogCfg
}

func NewCatalogRepo(cfg *cfg.CatalogCfg) *CatalogRepo {
	return &CatalogRepo{cfg: cfg}
}

// LoadCatalog читает каталог из CSV-файла целиком и сохраняет порядок строк файла.
func (r *CatalogRepo) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	f, err := os.Open(r.cfg.CSVPath)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrCatalogLoad))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrCatalogLoad))
	}
	if len(records) == 0 {
		return []domain.Product{}, nil
	}

	columns, err := indexColumns(records[0])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(records)-1)
	for _, record := range records[1:] {
		product, err := parseRow(record, columns)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrCatalogLoad))
		}

		products = append(products, *product)
	}

	return products, nil
}

// SaveCatalog пишет каталог в CSV-файл с фиксированным набором колонок,
// создавая директорию при необходимости. Существующий файл перезаписывается.
func (r *CatalogRepo) SaveCatalog(ctx context.Context, products []domain.Product) error {
	if dir := filepath.Dir(r.cfg.CSVPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	f, err := os.Create(r.cfg.CSVPath)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"product_id", "name", "category", "description", "price", "carbon_footprint", "image_path"}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	for _, p := range products {
		record := []string{
			p.ProductID,
			p.Name,
			p.Category,
			p.Description,
			formatFloat(p.Price),
			formatFloat(p.CarbonFootprint),
			p.ImagePath,
		}
		if err := writer.Write(record); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return f.Sync()
}

// indexColumns сопоставляет имена колонок заголовка их позициям.
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, e.Wrap(fmt.Sprintf("column %q", name), e.ErrMissingColumns)
		}
	}

	return columns, nil
}

func parseRow(record []string, columns map[string]int) (*domain.Product, error) {
	price, err := parsePrice(field(record, columns, "price"))
	if err != nil {
		return nil, err
	}

	carbon, err := parseFloat(field(record, columns, "carbon_footprint"))
	if err != nil {
		return nil, e.Wrap("carbon_footprint", err)
	}

	return domain.NewProduct(
		strings.TrimSpace(field(record, columns, "product_id")),
		field(record, columns, "name"),
		field(record, columns, "category"),
		field(record, columns, "description"),
		price,
		carbon,
		field(record, columns, "image_path"),
	), nil
}

// field возвращает значение колонки или пустую строку, если колонки нет в файле.
func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}

	return record[idx]
}

// parsePrice разбирает цену как десятичное число, чтобы не терять точность
// на денежных значениях. Отрицательная цена — ошибка данных.
func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, e.Wrap(fmt.Sprintf("price %q", raw), e.ErrInvalidPrice)
	}
	if d.IsNegative() {
		return 0, e.Wrap(fmt.Sprintf("price %q", raw), e.ErrInvalidPrice)
	}

	return d.InexactFloat64(), nil
}

func parseFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
