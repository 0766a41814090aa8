package usecase

import (
	"context"

	"github.com/ecobazaar/ml-backend/pkg/e"
	"github.com/ecobazaar/ml-backend/pkg/logger"
)

// ExportUseCase выгружает живой каталог из PostgreSQL в CSV,
// который затем потребляет тренер.
type ExportUseCase struct {
	productRepo ProductRepository
	catalogRepo CatalogRepository
	logger      logger.Logger
}

func NewExportUC(productRepo ProductRepository, catalogRepo CatalogRepository, logger logger.Logger) *ExportUseCase {
	return &ExportUseCase{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Export читает все товары и записывает выгрузку каталога.
// Возвращает число выгруженных строк.
func (u *ExportUseCase) Export(ctx context.Context) (int, error) {
	const op = "ExportUseCase.Export"

	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	if len(products) == 0 {
		return 0, e.Wrap(op, e.ErrNoProducts)
	}

	if err := u.catalogRepo.SaveCatalog(ctx, products); err != nil {
		return 0, e.Wrap(op, err)
	}

	u.logger.Infof("Exported %d products to catalog CSV", len(products))

	return len(products), nil
}
