package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"myshop-ml/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones content-based para un producto
// @Tags recommend
// @Produce json
// @Param productId path string true "productId"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.ProductInfo
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recommendations/content/{productId} [get]
func (h *RecommendHandler) GetContentBased(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	productID := chi.URLParam(r, "productId")
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.ContentBased(r.Context(), productID, refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// writeError mapea errores del servicio a códigos HTTP:
// validación => 400, producto inexistente => 404, el resto => 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidProductID):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrProductNotFound):
		status = http.StatusNotFound
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// @Summary Recomendaciones personalizadas para un usuario
// @Description Nunca responde error: userId inválido o cualquier falla interna degradan a la lista de fallback.
// @Tags recommend
// @Produce json
// @Param userId path string true "userId (hex de 24 caracteres)"
// @Param n query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} string
// @Router /recommendations/personalized/{userId} [get]
func (h *RecommendHandler) GetPersonalized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := chi.URLParam(r, "userId")
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	refresh := r.URL.Query().Get("refresh") == "true"

	ids := h.svc.Personalized(r.Context(), userID, n, refresh)
	_ = json.NewEncoder(w).Encode(ids)
}

// @Summary Productos vecinos según el índice global (texto + numérico)
// @Tags recommend
// @Produce json
// @Param productId path string true "productId"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recommendations/similar/{productId} [get]
func (h *RecommendHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ids, err := h.svc.Similar(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	_ = json.NewEncoder(w).Encode(ids)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones personalizadas en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param userId path string true "userId (hex de 24 caracteres)"
// @Param n query int false "cantidad de recomendaciones (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Router /recommendations/personalized/{userId}/ws [get]
func (h *RecommendHandler) GetPersonalizedWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	userID := chi.URLParam(r, "userId")
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	_ = conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, armando dataset…",
	})

	// etapas del pipeline, para que el frontend muestre progreso
	for _, stage := range []string{"merge", "features", "ranking"} {
		_ = conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": stage,
		})
	}

	ids := h.svc.Personalized(r.Context(), userID, n, true)

	_ = conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"productIds":  ids,
		"generatedAt": time.Now(),
	})
}
