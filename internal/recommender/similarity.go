package recommender

import (
	"sort"

	"github.com/ecobazaar/ml-backend/pkg/e"
)

// excludedScore — сигнальное значение для исключённой строки.
// Косинусная близость неотрицательных векторов лежит в [0, 1], поэтому -1
// гарантированно опускает строку в конец ранжирования.
const excludedScore = -1.0

// NoExclude передаётся в Rank, когда исключать из выдачи нечего.
const NoExclude = -1

// SparseVector — разреженный вектор фиксированной размерности.
// Indices отсортированы по возрастанию, Values им соответствуют поэлементно.
type SparseVector struct {
	Dim     int       `json:"dim"`
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Dot возвращает скалярное произведение двух разреженных векторов.
func Dot(a, b SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}

	return sum
}

// Matrix — документно-термная матрица: строка i соответствует строке i
// снимка каталога, использованного при обучении.
type Matrix struct {
	Rows []SparseVector `json:"rows"`
	Cols int            `json:"cols"`
}

// Scored — строка матрицы с её рейтингом близости.
type Scored struct {
	Index int
	Score float64
}

// Rank вычисляет косинусную близость запроса к каждой строке матрицы и
// возвращает topN строк с наибольшим рейтингом. Строки хранятся
// L2-нормированными, поэтому близость равна скалярному произведению.
//
// Равные рейтинги упорядочиваются по исходному порядку строк, результат
// детерминирован. exclude (индекс самого товара при поиске похожих)
// получает сигнальный рейтинг и в выдачу не попадает никогда.
// Пустая матрица даёт пустой результат без ошибки.
func Rank(query SparseVector, matrix *Matrix, topN int, exclude int) ([]Scored, error) {
	if matrix == nil || len(matrix.Rows) == 0 {
		return []Scored{}, nil
	}

	if query.Dim != matrix.Cols {
		return nil, e.ErrDimensionMismatch
	}

	if topN <= 0 {
		return []Scored{}, nil
	}

	scores := make([]float64, len(matrix.Rows))
	for i := range matrix.Rows {
		scores[i] = Dot(query, matrix.Rows[i])
	}

	if exclude >= 0 && exclude < len(scores) {
		scores[exclude] = excludedScore
	}

	idxs := make([]int, len(scores))
	for i := range idxs {
		idxs[i] = i
	}

	// Стабильная сортировка сохраняет порядок строк при равных рейтингах
	sort.SliceStable(idxs, func(i, j int) bool {
		return scores[idxs[i]] > scores[idxs[j]]
	})

	// topN приходит из пользовательского запроса и может превышать
	// размер матрицы на порядки, ёмкость ограничиваем числом строк
	capacity := topN
	if capacity > len(matrix.Rows) {
		capacity = len(matrix.Rows)
	}

	result := make([]Scored, 0, capacity)
	for _, idx := range idxs {
		if idx == exclude {
			continue
		}

		result = append(result, Scored{Index: idx, Score: scores[idx]})
		if len(result) == topN {
			break
		}
	}

	return result, nil
}
