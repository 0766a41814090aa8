package recommender

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ecobazaar/ml-backend/pkg/e"
)

// Токен — два и более словарных символа: цифры входят в токены ("500ml"),
// односимвольные слова отбрасываются.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer — TF-IDF векторизатор. Словарь и IDF-веса фиксируются один раз
// при обучении; запросы в дальнейшем только трансформируются через
// замороженный словарь, повторное обучение на запросе недопустимо.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	Dim         int            `json:"dim"`
	MaxFeatures int            `json:"max_features"`

	fitted bool
}

// NewVectorizer создает необученный векторизатор.
// maxFeatures ограничивает словарь N самыми частотными термами корпуса.
func NewVectorizer(maxFeatures int) *Vectorizer {
	const defaultMaxFeatures = 5000

	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}

	return &Vectorizer{
		Vocabulary:  make(map[string]int),
		MaxFeatures: maxFeatures,
	}
}

// Fit строит словарь и IDF-веса по корпусу документов.
// Стоп-слова английского языка отбрасываются до подсчёта частот.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return e.ErrEmptyCorpus
	}

	df := make(map[string]int)    // в скольких документах встречается терм
	total := make(map[string]int) // суммарная частота терма по корпусу
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			total[tok]++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	if len(df) == 0 {
		return e.ErrEmptyCorpus
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}

	// Отбор MaxFeatures самых частотных термов, при равенстве частот — по алфавиту
	if len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}

	// Стабильный порядок индексов словаря
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Сглаженный IDF
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.Dim = len(terms)
	v.fitted = true

	return nil
}

// Transform преобразует текст в L2-нормированный TF-IDF вектор в координатах
// замороженного словаря. Текст без единого терма из словаря даёт нулевой вектор.
func (v *Vectorizer) Transform(text string) (SparseVector, error) {
	if !v.IsFitted() {
		return SparseVector{}, e.ErrNotFitted
	}

	tf := make(map[int]int)
	for _, tok := range tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			tf[idx]++
		}
	}

	vec := SparseVector{Dim: v.Dim}
	if len(tf) == 0 {
		return vec, nil
	}

	indices := make([]int, 0, len(tf))
	for idx := range tf {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	norm := 0.0
	values := make([]float64, len(indices))
	for i, idx := range indices {
		w := float64(tf[idx]) * v.IDF[idx]
		values[i] = w
		norm += w * w
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range values {
			values[i] /= norm
		}
	}

	vec.Indices = indices
	vec.Values = values

	return vec, nil
}

// IsFitted сообщает, обучен ли векторизатор. Учитывает и артефакты,
// восстановленные из JSON: у них флаг fitted не сериализуется.
func (v *Vectorizer) IsFitted() bool {
	return v.fitted || (len(v.Vocabulary) > 0 && len(v.IDF) == v.Dim)
}

// tokenize приводит текст к нижнему регистру, выделяет слова и отбрасывает стоп-слова.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}

	out := raw[:0]
	for _, t := range raw {
		if _, isStop := stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}

	return out
}
