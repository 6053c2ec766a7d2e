package repository

import (
	"context"

	"myshop-ml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InteractionRepository struct {
	col *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{col: db.Collection("interactions")}
}

func (r *InteractionRepository) FindAll(ctx context.Context) ([]models.InteractionDoc, error) {
	return r.find(ctx, bson.M{})
}

// FindByUser trae las interacciones de un usuario. El userId llega como
// string hex de 24 caracteres; en Mongo está guardado como ObjectID.
func (r *InteractionRepository) FindByUser(ctx context.Context, userID string) ([]models.InteractionDoc, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// formato inválido: no hay interacciones que buscar
		return nil, nil
	}
	return r.find(ctx, bson.M{"userId": oid})
}

func (r *InteractionRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *InteractionRepository) find(ctx context.Context, filter bson.M) ([]models.InteractionDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.InteractionDoc
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, models.InteractionDoc{
			UserID:          asString(raw["userId"]),
			ProductID:       asString(raw["productId"]),
			InteractionDate: asTime(raw["interactionDate"]),
			Type:            asString(raw["type"]),
		})
	}
	return out, cur.Err()
}
