package feature

import "math"

// Vector es un vector sparse: índice de término -> peso.
type Vector map[int]float64

func (v Vector) Dot(other Vector) float64 {
	// iterar sobre el más chico
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for i, x := range a {
		if y, ok := b[i]; ok {
			sum += x * y
		}
	}
	return sum
}

func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Scale multiplica el vector in place por un factor.
func (v Vector) Scale(f float64) {
	for i := range v {
		v[i] *= f
	}
}

// CosineSimilarity entre dos vectores sparse; 0 si alguno es nulo.
func CosineSimilarity(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}
