package main

import (
	"log"
	"net/http"

	_ "myshop-ml/docs" // swagger docs

	"myshop-ml/internal/cache"
	"myshop-ml/internal/config"
	"myshop-ml/internal/handler"
	"myshop-ml/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title My-Shop Recommender API
// @version 1.0
// @description Recomendaciones de productos (content-based, personalizadas y fallback) sobre Mongo + Redis
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Redis es opcional: sin cache el servicio igual responde
	cache.InitRedis(cfg)

	// services (cada operación abre y cierra su propia conexión a Mongo)
	recSvc := service.NewRecommendService(cfg)
	authSvc := service.NewAuthService(cfg)
	adminSvc := service.NewAdminService(cfg)

	// handlers
	recH := handler.NewRecommendHandler(recSvc)
	authH := handler.NewAuthHandler(authSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// solo los frontends de la tienda pueden llamar desde el browser
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/content/{productId}", recH.GetContentBased)
		r.Get("/personalized/{userId}", recH.GetPersonalized)
		r.Get("/personalized/{userId}/ws", recH.GetPersonalizedWS)
		r.Get("/similar/{productId}", recH.GetSimilar)
	})

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))
		r.Use(handler.AdminOnly())

		r.Get("/admin/summary", adminH.GetSummary)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
