package similarity

import (
	"errors"
	"sort"

	"myshop-ml/internal/feature"
)

// Pesos del bloque de texto. Hoy solo se aplica "default" como multiplicador
// global del TF-IDF; los pesos por campo quedan declarados para tuning.
var textWeights = map[string]float64{
	"subcategory": 3.0,
	"category":    2.0,
	"tags":        1.5,
	"default":     1.2,
}

// ErrInsufficientData: con menos de 2 filas no hay vecinos que buscar.
var ErrInsufficientData = errors.New("dataset insuficiente para construir el índice")

// Composite concatena horizontalmente el TF-IDF pesado con el bloque
// numérico escalado. textDim es el tamaño del vocabulario: las columnas
// numéricas van después, en el mismo orden de fila que los records.
func Composite(text []feature.Vector, nums *feature.NumericBlock, textDim int) []feature.Vector {
	out := make([]feature.Vector, len(text))
	w := textWeights["default"]

	for i, tv := range text {
		v := make(feature.Vector, len(tv)+len(nums.Columns))
		for idx, val := range tv {
			v[idx] = val * w
		}
		for j, val := range nums.Rows[i] {
			if val != 0 {
				v[textDim+j] = val
			}
		}
		out[i] = v
	}
	return out
}

// Neighbor es un vecino por distancia coseno (ascendente = más parecido).
type Neighbor struct {
	Row      int
	Distance float64
}

// Index es un índice de vecinos por fuerza bruta con distancia coseno.
type Index struct {
	vectors []feature.Vector
	k       int
}

// NewIndex construye el índice sobre la matriz compuesta.
// k = min(30, filas-1) + 1: el +1 reserva el lugar del propio punto de
// consulta, que siempre sale como su vecino más cercano y el caller descarta.
func NewIndex(vectors []feature.Vector) (*Index, error) {
	if len(vectors) < 2 {
		return nil, ErrInsufficientData
	}
	k := len(vectors) - 1
	if k > 30 {
		k = 30
	}
	return &Index{vectors: vectors, k: k + 1}, nil
}

// K es la cantidad máxima de vecinos que devuelve una consulta.
func (ix *Index) K() int { return ix.k }

// Neighbors devuelve los k vecinos de la fila dada, ordenados por
// distancia coseno ascendente. La propia fila aparece primera (distancia ~0).
func (ix *Index) Neighbors(row, k int) []Neighbor {
	if row < 0 || row >= len(ix.vectors) {
		return nil
	}
	if k <= 0 || k > ix.k {
		k = ix.k
	}
	if k > len(ix.vectors) {
		k = len(ix.vectors)
	}

	query := ix.vectors[row]
	all := make([]Neighbor, len(ix.vectors))
	for i, v := range ix.vectors {
		all[i] = Neighbor{Row: i, Distance: 1 - feature.CosineSimilarity(query, v)}
	}
	sort.SliceStable(all, func(a, b int) bool {
		if all[a].Distance != all[b].Distance {
			return all[a].Distance < all[b].Distance
		}
		return all[a].Row < all[b].Row
	})
	return all[:k]
}
