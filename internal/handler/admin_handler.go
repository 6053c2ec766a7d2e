package handler

import (
	"encoding/json"
	"net/http"

	"myshop-ml/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: s}
}

// @Summary Resumen del catálogo y las colecciones (ADMIN)
// @Description Tamaños de colecciones y productos con metadata incompleta que degradan al recomendador.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdminSummary
// @Router /admin/summary [get]
func (h *AdminHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}
