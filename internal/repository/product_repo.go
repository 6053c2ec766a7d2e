package repository

import (
	"context"

	"myshop-ml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// FindAll trae el catálogo completo. Columnas que no usa el pipeline
// (dimensions, reviews, image, warrantyInformation, etc.) no se decodifican;
// tags se normaliza vía models.TagList sin importar cómo venga guardado.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.ProductDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProductDoc
	for cur.Next(ctx) {
		var p models.ProductDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// Sample devuelve n productos al azar vía agregación $sample.
// Es la última línea del fallback cuando el dataset viene vacío.
func (r *ProductRepository) Sample(ctx context.Context, n int) ([]string, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		if id := asString(raw["_id"]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, cur.Err()
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountMissing cuenta productos sin el campo dado (o con valor vacío);
// sirve para el resumen de calidad del catálogo.
func (r *ProductRepository) CountMissing(ctx context.Context, field string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{field: bson.M{"$exists": false}},
		bson.M{field: nil},
		bson.M{field: ""},
		bson.M{field: bson.A{}},
	}})
}
