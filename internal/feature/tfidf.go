package feature

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer es un TF-IDF con stopwords en inglés, n-gramas y poda de
// vocabulario. IDF suavizado ln((1+N)/(1+df))+1 y normalización L2 por fila.
type Vectorizer struct {
	// MaxFeatures limita el vocabulario (0 = sin límite).
	MaxFeatures int
	// MinDF descarta términos presentes en menos de MinDF documentos.
	MinDF int
	// rango de n-gramas [NgramMin, NgramMax]
	NgramMin int
	NgramMax int

	vocabulary map[string]int
	idf        []float64
}

var tokenRe = regexp.MustCompile(`\w\w+`)

// NewVectorizer arma el vectorizador del índice global: vocabulario
// acotado a 10000 términos, n-gramas de 1 a 3, df mínimo 2.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		MaxFeatures: 10000,
		MinDF:       2,
		NgramMin:    1,
		NgramMax:    3,
	}
}

// NewTitleVectorizer es la variante sin poda que usa el ranking de títulos
// del flujo content-based (unigramas, sin límite de vocabulario).
func NewTitleVectorizer() *Vectorizer {
	return &Vectorizer{MinDF: 1, NgramMin: 1, NgramMax: 1}
}

// FitTransform construye el vocabulario sobre el corpus y devuelve
// un vector sparse L2-normalizado por documento.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, error) {
	if len(docs) == 0 {
		return nil, errors.New("corpus vacío")
	}

	ngramsPerDoc := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		grams := v.ngrams(tokenize(doc))
		ngramsPerDoc[i] = grams

		seen := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			df[g]++
		}
	}

	// filtrar por df mínimo
	terms := make([]string, 0, len(df))
	for term, n := range df {
		if n >= v.MinDF {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, errors.New("sin términos: corpus demasiado chico para min_df")
	}

	// poda de vocabulario: se quedan los términos más frecuentes
	// (por df, empates en orden alfabético)
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if df[terms[i]] != df[terms[j]] {
				return df[terms[i]] > df[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	out := make([]Vector, len(docs))
	for i, grams := range ngramsPerDoc {
		out[i] = v.vectorize(grams)
	}
	return out, nil
}

// Dimension es el tamaño del vocabulario ajustado.
func (v *Vectorizer) Dimension() int {
	return len(v.vocabulary)
}

func (v *Vectorizer) vectorize(grams []string) Vector {
	vec := make(Vector)
	for _, g := range grams {
		if idx, ok := v.vocabulary[g]; ok {
			vec[idx]++
		}
	}
	for idx := range vec {
		vec[idx] *= v.idf[idx]
	}
	// normalización L2
	if norm := vec.Norm(); norm > 0 {
		vec.Scale(1 / norm)
	}
	return vec
}

// tokenize: minúsculas, tokens alfanuméricos de 2+ caracteres, sin stopwords.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := englishStopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (v *Vectorizer) ngrams(tokens []string) []string {
	lo, hi := v.NgramMin, v.NgramMax
	if lo <= 0 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if hi == 1 {
		return tokens
	}
	var out []string
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
