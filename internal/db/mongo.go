package db

import (
	"context"
	"log"
	"time"

	"myshop-ml/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

// Conn es una conexión a Mongo con alcance de una sola operación:
// se abre justo antes de usarla y se cierra SIEMPRE (defer conn.Close()).
type Conn struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open conecta a Mongo con timeout acotado de selección de servidor.
func Open(ctx context.Context, cfg *config.Config) (*Conn, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(connectTimeout)

	ctxTimeout, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctxTimeout, opts)
	if err != nil {
		return nil, err
	}

	return &Conn{
		client: client,
		db:     client.Database(cfg.MongoDB),
	}, nil
}

func (c *Conn) DB() *mongo.Database {
	return c.db
}

// Close libera la conexión. Se ignora el error: cerrar nunca debe
// romper la respuesta de la operación que abrió la conexión.
func (c *Conn) Close() {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.client.Disconnect(ctx); err != nil {
		log.Printf("[mongo] error cerrando conexión: %v", err)
	}
}
