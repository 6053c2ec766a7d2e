package feature

import "myshop-ml/internal/models"

// Columnas numéricas candidatas y su peso de importancia.
// El peso se aplica después de normalizar cada columna a [0,1].
var numericWeights = map[string]float64{
	"price":              0.5,
	"discountPercentage": 2.0,
	"rating":             3.0,
	"stock":              1.0,
}

var numericColumns = []string{"price", "discountPercentage", "rating", "stock"}

// NumericBlock es el bloque numérico escalado: una fila por record,
// columnas en el orden de numericColumns con prefijo "scaled_".
type NumericBlock struct {
	Columns []string
	Rows    [][]float64
}

// ScaleNumeric normaliza cada columna con min-max sobre el batch actual
// (la escala es relativa al dataset, no fija) y aplica los pesos.
// Una columna constante escala a 0.
func ScaleNumeric(records []models.Record) *NumericBlock {
	nb := &NumericBlock{
		Columns: make([]string, len(numericColumns)),
		Rows:    make([][]float64, len(records)),
	}
	for j, col := range numericColumns {
		nb.Columns[j] = "scaled_" + col
	}
	for i := range nb.Rows {
		nb.Rows[i] = make([]float64, len(numericColumns))
	}

	for j, col := range numericColumns {
		min, max := 0.0, 0.0
		for i := range records {
			v := numericValue(&records[i], col)
			if i == 0 || v < min {
				min = v
			}
			if i == 0 || v > max {
				max = v
			}
		}

		span := max - min
		w, hasW := numericWeights[col]
		if !hasW {
			w = 1.0
		}

		for i := range records {
			var scaled float64
			if span > 0 {
				scaled = (numericValue(&records[i], col) - min) / span
			}
			nb.Rows[i][j] = scaled * w
		}
	}
	return nb
}

func numericValue(r *models.Record, col string) float64 {
	switch col {
	case "price":
		return r.Price
	case "discountPercentage":
		return r.DiscountPercentage
	case "rating":
		return r.Rating
	case "stock":
		return r.Stock
	default:
		return 0
	}
}
