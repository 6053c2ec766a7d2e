package dataset

import (
	"regexp"
	"strings"

	"myshop-ml/internal/models"
)

// Se elimina todo lo que no sea alfanumérico o espacio, campo por campo.
var punctRe = regexp.MustCompile(`[^\w\s]`)

// CombinedText concatena los campos descriptivos en un solo blob.
// El orden de los campos y el separador de un espacio son fijos:
// el TF-IDF usa n-gramas y la adyacencia de términos depende de esto.
func CombinedText(r *models.Record) string {
	parts := []string{
		r.Subcategory,
		strings.Join(r.Tags, ", "),
		r.Brand,
		r.Title,
		r.Description,
		r.SKU,
		r.Category,
	}
	for i, p := range parts {
		parts[i] = punctRe.ReplaceAllString(p, "")
	}
	return strings.Join(parts, " ")
}
