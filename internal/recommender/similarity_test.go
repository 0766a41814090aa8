package recommender

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ecobazaar/ml-backend/pkg/e"
)

func denseToSparse(dense []float64) SparseVector {
	vec := SparseVector{Dim: len(dense)}
	norm := 0.0
	for _, v := range dense {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	for i, v := range dense {
		if v == 0 {
			continue
		}
		vec.Indices = append(vec.Indices, i)
		vec.Values = append(vec.Values, v/norm)
	}

	return vec
}

func testMatrix(rows ...[]float64) *Matrix {
	if len(rows) == 0 {
		return &Matrix{Cols: 0}
	}

	m := &Matrix{Cols: len(rows[0])}
	for _, r := range rows {
		m.Rows = append(m.Rows, denseToSparse(r))
	}

	return m
}

func TestRank_EmptyMatrix(t *testing.T) {
	got, err := Rank(SparseVector{Dim: 3}, &Matrix{Cols: 3}, 5, NoExclude)
	if err != nil {
		t.Fatalf("Rank() error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Errorf("Rank() returned %d rows, want 0", len(got))
	}
}

func TestRank_DimensionMismatch(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 0, 0},
		[]float64{0, 1, 0},
	)

	query := denseToSparse([]float64{1, 0})
	if _, err := Rank(query, matrix, 2, NoExclude); !errors.Is(err, e.ErrDimensionMismatch) {
		t.Fatalf("Rank() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestRank_ScoresNonIncreasing(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 0, 0, 0},
		[]float64{1, 1, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{1, 1, 1, 0},
	)

	query := denseToSparse([]float64{1, 1, 0, 0})
	got, err := Rank(query, matrix, 4, NoExclude)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores out of order at %d: %v > %v", i, got[i].Score, got[i-1].Score)
		}
	}

	if got[0].Index != 1 {
		t.Errorf("top result index = %d, want 1", got[0].Index)
	}
}

func TestRank_ExcludeNeverReturned(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 0},
		[]float64{1, 0},
		[]float64{0, 1},
	)

	// topN заведомо больше числа строк: исключённая строка всё равно не возвращается
	got, err := Rank(matrix.Rows[0], matrix, 10, 0)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Rank() returned %d rows, want 2", len(got))
	}
	for _, s := range got {
		if s.Index == 0 {
			t.Errorf("excluded row %d present in results", s.Index)
		}
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 0, 0},
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
	)

	// Запрос без общих термов: все рейтинги нулевые, порядок строк сохраняется
	query := SparseVector{Dim: 3}
	got, err := Rank(query, matrix, 3, NoExclude)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	for i, s := range got {
		if s.Index != i {
			t.Errorf("tie at position %d resolved to row %d, want %d", i, s.Index, i)
		}
		if s.Score != 0 {
			t.Errorf("score = %v, want 0", s.Score)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 1, 0},
		[]float64{1, 0, 1},
		[]float64{0, 1, 1},
		[]float64{1, 1, 1},
	)

	query := denseToSparse([]float64{1, 1, 1})
	first, err := Rank(query, matrix, 3, NoExclude)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := Rank(query, matrix, 3, NoExclude)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Rank() is not deterministic: %v != %v", first, again)
		}
	}
}

func TestRank_TopNLargerThanMatrix(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 0},
		[]float64{0, 1},
	)

	got, err := Rank(matrix.Rows[0], matrix, 100, NoExclude)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Rank() returned %d rows, want 2", len(got))
	}
}

func TestRank_HugeTopN(t *testing.T) {
	matrix := testMatrix(
		[]float64{1, 0},
		[]float64{0, 1},
	)

	got, err := Rank(matrix.Rows[0], matrix, 1<<62, NoExclude)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Rank() returned %d rows, want 2", len(got))
	}
}

func TestDot_Orthogonal(t *testing.T) {
	a := denseToSparse([]float64{1, 0, 0})
	b := denseToSparse([]float64{0, 1, 0})

	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
}

func TestDot_Identical(t *testing.T) {
	a := denseToSparse([]float64{1, 2, 3})

	if got := Dot(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("Dot() of normalized vector with itself = %v, want 1", got)
	}
}
