package similarity

import (
	"testing"

	"myshop-ml/internal/feature"
)

func TestNewIndexInsufficientData(t *testing.T) {
	cases := [][]feature.Vector{
		nil,
		{},
		{{0: 1}},
	}
	for _, vectors := range cases {
		if _, err := NewIndex(vectors); err != ErrInsufficientData {
			t.Errorf("NewIndex con %d filas: err = %v, esperaba ErrInsufficientData", len(vectors), err)
		}
	}
}

func TestNewIndexKClamp(t *testing.T) {
	cases := []struct {
		rows int
		want int // min(30, rows-1) + 1
	}{
		{2, 2},
		{5, 5},
		{31, 31},
		{100, 31},
	}
	for _, tc := range cases {
		vectors := make([]feature.Vector, tc.rows)
		for i := range vectors {
			vectors[i] = feature.Vector{i: 1}
		}
		ix, err := NewIndex(vectors)
		if err != nil {
			t.Fatal(err)
		}
		if ix.K() != tc.want {
			t.Errorf("rows=%d: K() = %d, esperaba %d", tc.rows, ix.K(), tc.want)
		}
	}
}

func TestNeighborsSelfFirst(t *testing.T) {
	vectors := []feature.Vector{
		{0: 1, 1: 1},
		{0: 1},
		{2: 1},
	}
	ix, err := NewIndex(vectors)
	if err != nil {
		t.Fatal(err)
	}

	got := ix.Neighbors(0, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, esperaba 3", len(got))
	}
	if got[0].Row != 0 {
		t.Fatalf("el primer vecino debe ser la propia fila, fue %d", got[0].Row)
	}
	if got[0].Distance > 1e-9 {
		t.Fatalf("distancia a sí mismo = %v", got[0].Distance)
	}
	// la fila 1 comparte el término 0; la fila 2 es ortogonal
	if got[1].Row != 1 || got[2].Row != 2 {
		t.Fatalf("orden de vecinos = [%d %d], esperaba [1 2]", got[1].Row, got[2].Row)
	}
}

func TestNeighborsKOutOfRange(t *testing.T) {
	vectors := []feature.Vector{{0: 1}, {0: 1, 1: 1}, {1: 1}}
	ix, err := NewIndex(vectors)
	if err != nil {
		t.Fatal(err)
	}

	if got := ix.Neighbors(-1, 2); got != nil {
		t.Errorf("fila negativa: %v, esperaba nil", got)
	}
	if got := ix.Neighbors(3, 2); got != nil {
		t.Errorf("fila fuera de rango: %v, esperaba nil", got)
	}
	// k fuera de rango cae al máximo del índice
	if got := ix.Neighbors(0, 99); len(got) != ix.K() {
		t.Errorf("k=99: len = %d, esperaba %d", len(got), ix.K())
	}
}

func TestCompositeOffsetsAndWeights(t *testing.T) {
	text := []feature.Vector{
		{0: 1.0, 3: 0.5},
		{},
	}
	nums := &feature.NumericBlock{
		Columns: []string{"scaled_price", "scaled_rating"},
		Rows: [][]float64{
			{0.25, 0},
			{0, 3.0},
		},
	}

	got := Composite(text, nums, 5)

	w := textWeights["default"]
	if got[0][0] != 1.0*w || got[0][3] != 0.5*w {
		t.Errorf("bloque de texto sin el peso global: %v", got[0])
	}
	if got[0][5] != 0.25 {
		t.Errorf("scaled_price debería ir en el offset textDim: %v", got[0])
	}
	if _, ok := got[0][6]; ok {
		t.Error("un valor numérico 0 no debería materializarse en el sparse")
	}
	if got[1][6] != 3.0 {
		t.Errorf("scaled_rating de la fila 1 en offset textDim+1: %v", got[1])
	}
}
