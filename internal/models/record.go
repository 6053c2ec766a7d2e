package models

import "time"

// Valores de relleno del merge cuando un producto no tiene señal de usuario.
const (
	NoUser        = "no_user"
	GuestUsername = "guest"
	DefaultSize   = "M"

	TypeCart          = "cart"
	TypeWishlist      = "wishlist"
	TypeView          = "view"
	TypeNoInteraction = "no_interaction"
)

// Record es la fila canónica del dataset: un par (usuario, producto)
// observado en alguna fuente, o el producto solo cuando nadie lo tocó.
// Todo producto del catálogo aparece al menos una vez.
type Record struct {
	UserID          string
	Username        string
	ProductID       string
	Quantity        int
	Size            string
	InteractionDate time.Time
	Type            string

	Title              string
	Description        string
	Category           string
	Subcategory        string
	Tags               TagList
	Brand              string
	SKU                string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              float64

	CombinedText string
}

// Info proyecta el record al formato de respuesta del endpoint content-based.
func (r *Record) Info(similarity float64) ProductInfo {
	return ProductInfo{
		ProductID:          r.ProductID,
		Title:              r.Title,
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		Rating:             r.Rating,
		Stock:              r.Stock,
		Subcategory:        r.Subcategory,
		Category:           r.Category,
		Brand:              r.Brand,
		SKU:                r.SKU,
		TitleSimilarity:    similarity,
	}
}
