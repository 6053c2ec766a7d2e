package service

import (
	"context"

	"myshop-ml/internal/config"
	"myshop-ml/internal/db"
	"myshop-ml/internal/models"
	"myshop-ml/internal/repository"
)

// AdminService arma el resumen de /admin/summary: tamaños de colecciones
// y productos con huecos de metadata que degradan las recomendaciones
// (sin subcategoría no entran al pool content-based, sin tags no matchean).
type AdminService struct {
	cfg *config.Config
}

func NewAdminService(cfg *config.Config) *AdminService {
	return &AdminService{cfg: cfg}
}

func (s *AdminService) Summary(ctx context.Context) (*models.AdminSummary, error) {
	conn, err := db.Open(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	users := repository.NewUserRepository(conn.DB())
	products := repository.NewProductRepository(conn.DB())
	interactions := repository.NewInteractionRepository(conn.DB())
	recs := repository.NewRecommendationRepository(conn.DB())

	out := &models.AdminSummary{}

	if out.TotalUsers, err = users.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalProducts, err = products.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalInteractions, err = interactions.Count(ctx); err != nil {
		return nil, err
	}
	if out.ProductsNoSubcategory, err = products.CountMissing(ctx, "subcategory"); err != nil {
		return nil, err
	}
	if out.ProductsNoTags, err = products.CountMissing(ctx, "tags"); err != nil {
		return nil, err
	}
	if out.RecommendationsServed, err = recs.Count(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
