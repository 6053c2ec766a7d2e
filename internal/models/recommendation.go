package models

import "time"

// Recommendation es el historial que se guarda en Mongo cada vez
// que se sirve una lista personalizada (best-effort, nunca rompe la respuesta).
type Recommendation struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"userId"        json:"userId"`
	Strategy   string    `bson:"strategy"      json:"strategy"` // personalized | fallback
	ProductIDs []string  `bson:"productIds"    json:"productIds"`
	CreatedAt  time.Time `bson:"createdAt"     json:"createdAt"`
}

// AdminSummary es el resumen de /admin/summary: tamaños de colecciones
// y huecos del catálogo que degradan al recomendador.
type AdminSummary struct {
	TotalUsers            int64 `json:"totalUsers"`
	TotalProducts         int64 `json:"totalProducts"`
	TotalInteractions     int64 `json:"totalInteractions"`
	ProductsNoSubcategory int64 `json:"productsWithoutSubcategory"`
	ProductsNoTags        int64 `json:"productsWithoutTags"`
	RecommendationsServed int64 `json:"recommendationsServed"`
}
