package feature

import (
	"math"
	"testing"

	"myshop-ml/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func colIndex(t *testing.T, nb *NumericBlock, name string) int {
	t.Helper()
	for j, c := range nb.Columns {
		if c == name {
			return j
		}
	}
	t.Fatalf("columna %q no existe en %v", name, nb.Columns)
	return -1
}

func TestScaleNumericMinMax(t *testing.T) {
	records := []models.Record{
		{Stock: 10},
		{Stock: 20},
		{Stock: 30},
	}

	nb := ScaleNumeric(records)
	j := colIndex(t, nb, "scaled_stock")

	// stock tiene peso 1.0: la columna queda en min-max puro
	want := []float64{0, 0.5, 1.0}
	for i, w := range want {
		if !almostEqual(nb.Rows[i][j], w) {
			t.Errorf("fila %d: scaled_stock = %v, esperaba %v", i, nb.Rows[i][j], w)
		}
	}
}

func TestScaleNumericWeights(t *testing.T) {
	records := []models.Record{
		{Price: 0, DiscountPercentage: 0, Rating: 0},
		{Price: 100, DiscountPercentage: 50, Rating: 5},
	}

	nb := ScaleNumeric(records)

	cases := []struct {
		col  string
		want float64 // valor de la fila máxima tras el peso
	}{
		{"scaled_price", 0.5},
		{"scaled_discountPercentage", 2.0},
		{"scaled_rating", 3.0},
	}
	for _, tc := range cases {
		j := colIndex(t, nb, tc.col)
		if !almostEqual(nb.Rows[0][j], 0) {
			t.Errorf("%s fila 0 = %v, esperaba 0", tc.col, nb.Rows[0][j])
		}
		if !almostEqual(nb.Rows[1][j], tc.want) {
			t.Errorf("%s fila 1 = %v, esperaba %v", tc.col, nb.Rows[1][j], tc.want)
		}
	}
}

func TestScaleNumericConstantColumn(t *testing.T) {
	records := []models.Record{
		{Price: 42, Rating: 4},
		{Price: 42, Rating: 4},
	}

	nb := ScaleNumeric(records)
	for _, col := range []string{"scaled_price", "scaled_rating"} {
		j := colIndex(t, nb, col)
		for i := range nb.Rows {
			if nb.Rows[i][j] != 0 {
				t.Errorf("%s fila %d = %v, una columna constante escala a 0", col, i, nb.Rows[i][j])
			}
		}
	}
}

func TestScaleNumericColumnOrder(t *testing.T) {
	nb := ScaleNumeric([]models.Record{{}})
	want := []string{"scaled_price", "scaled_discountPercentage", "scaled_rating", "scaled_stock"}
	if len(nb.Columns) != len(want) {
		t.Fatalf("columnas = %v", nb.Columns)
	}
	for j, w := range want {
		if nb.Columns[j] != w {
			t.Fatalf("columna %d = %q, esperaba %q", j, nb.Columns[j], w)
		}
	}
}
