package recommender

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecobazaar/ml-backend/internal/domain"
	"github.com/ecobazaar/ml-backend/pkg/e"
)

// Model — артефакт обученной модели: замороженный векторизатор, матрица
// документов и снимок каталога. Три части всегда сохраняются и загружаются
// вместе, смешивать их из разных запусков обучения нельзя.
type Model struct {
	Version    string           `json:"version"`
	TrainedAt  time.Time        `json:"trained_at"`
	Vectorizer *Vectorizer      `json:"vectorizer"`
	Matrix     *Matrix          `json:"matrix"`
	Products   []domain.Product `json:"products"`
}

// Train обучает векторизатор на meta-текстах каталога и строит матрицу
// документов в порядке строк каталога. Version и TrainedAt проставляет вызывающий.
func Train(products []domain.Product, maxFeatures int) (*Model, error) {
	const op = "recommender.Train"

	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCorpus)
	}

	corpus := make([]string, len(products))
	for i := range products {
		corpus[i] = products[i].Meta()
	}

	vectorizer := NewVectorizer(maxFeatures)
	if err := vectorizer.Fit(corpus); err != nil {
		return nil, e.Wrap(op, err)
	}

	matrix := &Matrix{
		Rows: make([]SparseVector, len(corpus)),
		Cols: vectorizer.Dim,
	}
	for i, text := range corpus {
		row, err := vectorizer.Transform(text)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		matrix.Rows[i] = row
	}

	return &Model{
		Vectorizer: vectorizer,
		Matrix:     matrix,
		Products:   products,
	}, nil
}

// Validate проверяет инвариант артефакта: строка i матрицы соответствует
// строке i снимка каталога, размерности согласованы.
func (m *Model) Validate() error {
	switch {
	case m.Vectorizer == nil || m.Matrix == nil:
		return e.Wrap("artifact is incomplete", e.ErrArtifactCorrupt)
	case !m.Vectorizer.IsFitted():
		return e.Wrap("vectorizer is not fitted", e.ErrArtifactCorrupt)
	case len(m.Matrix.Rows) != len(m.Products):
		return e.Wrap(
			fmt.Sprintf("matrix rows: %d, catalog snapshot rows: %d", len(m.Matrix.Rows), len(m.Products)),
			e.ErrArtifactCorrupt,
		)
	case m.Matrix.Cols != m.Vectorizer.Dim:
		return e.Wrap(
			fmt.Sprintf("matrix cols: %d, vectorizer dim: %d", m.Matrix.Cols, m.Vectorizer.Dim),
			e.ErrArtifactCorrupt,
		)
	}

	return nil
}

// IndexByProductID возвращает индекс строки снимка каталога по идентификатору
// товара. Сравнение всегда строка к строке. Возвращает NoExclude, если товара нет.
func (m *Model) IndexByProductID(productID string) int {
	productID = strings.TrimSpace(productID)
	for i := range m.Products {
		if m.Products[i].ProductID == productID {
			return i
		}
	}

	return NoExclude
}
