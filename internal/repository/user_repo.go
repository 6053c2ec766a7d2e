package repository

import (
	"context"

	"myshop-ml/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindAll trae todos los usuarios con solo los campos que usa el merge.
// image, role, password, email y phone no se proyectan: datos sensibles
// que no deben llegar al dataset.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.UserDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserDoc
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}

		u := models.UserDoc{
			ID:               asString(raw["_id"]),
			Username:         asString(raw["username"]),
			CartProducts:     decodeEntries(raw["cartProducts"]),
			WishListProducts: decodeEntries(raw["wishListProducts"]),
		}
		out = append(out, u)
	}
	return out, cur.Err()
}

// decodeEntries tolera basura: si la lista no es lista o una entrada
// no es un doc bien formado, se salta esa entrada y sigue.
func decodeEntries(v any) []models.ListEntry {
	arr, ok := v.(bson.A)
	if !ok {
		return nil
	}

	var out []models.ListEntry
	for _, item := range arr {
		doc, ok := item.(bson.M)
		if !ok {
			continue
		}
		e := models.ListEntry{
			ProductID: asString(doc["_id"]),
			Size:      asString(doc["size"]),
		}
		if e.ProductID == "" {
			continue
		}
		if q, ok := asInt(doc["quantity"]); ok {
			e.Quantity = &q
		}
		out = append(out, e)
	}
	return out
}

// ================== cuentas (auth) ==================

func (r *UserRepository) FindAccountByEmail(ctx context.Context, email string) (*models.AccountDoc, error) {
	var raw bson.M
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeAccount(raw), nil
}

func (r *UserRepository) InsertAccount(ctx context.Context, username, email, passwordHash string) (*models.AccountDoc, error) {
	id := primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, bson.M{
		"_id":      id,
		"username": username,
		"email":    email,
		"password": passwordHash,
		"role":     "user",
	})
	if err != nil {
		return nil, err
	}
	return &models.AccountDoc{
		ID:       id.Hex(),
		Username: username,
		Email:    email,
		Role:     "user",
	}, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func decodeAccount(raw bson.M) *models.AccountDoc {
	return &models.AccountDoc{
		ID:           asString(raw["_id"]),
		Username:     asString(raw["username"]),
		Email:        asString(raw["email"]),
		PasswordHash: asString(raw["password"]),
		Role:         asString(raw["role"]),
	}
}
