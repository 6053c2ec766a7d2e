package repository

import (
	"context"

	"myshop-ml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecommendationRepository guarda el historial de listas servidas.
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{col: db.Collection("recommendations")}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	_, err := r.col.InsertOne(ctx, bson.M{
		"userId":     rec.UserID,
		"strategy":   rec.Strategy,
		"productIds": rec.ProductIDs,
		"createdAt":  rec.CreatedAt,
	})
	return err
}

func (r *RecommendationRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
