package e

import "fmt"

var (
	// Ошибки загрузки каталога
	ErrCatalogLoad    = fmt.Errorf("catalog load failed")
	ErrMissingColumns = fmt.Errorf("catalog is missing required columns")

	// Ошибки артефакта обученной модели
	ErrArtifactNotFound = fmt.Errorf("trained model artifact not found")
	ErrArtifactCorrupt  = fmt.Errorf("trained model artifact is corrupt")
	ErrModelNotReady    = fmt.Errorf("trained model is not loaded")

	// Внутренние ошибки векторизации и ранжирования
	ErrDimensionMismatch = fmt.Errorf("query vector dimension mismatch")
	ErrEmptyCorpus       = fmt.Errorf("empty corpus")
	ErrNotFitted         = fmt.Errorf("vectorizer is not fitted")

	// Внутренние ошибки экспорта
	ErrNoProducts = fmt.Errorf("no products found")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrProductIDRequired = fmt.Errorf("product_id is required")
	ErrMessageRequired   = fmt.Errorf("message is required")
	ErrInvalidTopN       = fmt.Errorf("top_n must be positive")
	ErrInvalidPrice      = fmt.Errorf("invalid price")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
