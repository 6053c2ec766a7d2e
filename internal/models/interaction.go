package models

import "time"

// InteractionDoc es un evento de comportamiento (colección interactions).
// userId viene como ObjectID en Mongo y se normaliza a string hex al decodificar;
// una interactionDate no parseable queda en el cero de time.Time.
type InteractionDoc struct {
	UserID          string    `json:"userId" bson:"-"`
	ProductID       string    `json:"productId" bson:"-"`
	InteractionDate time.Time `json:"interactionDate" bson:"-"`
	Type            string    `json:"type" bson:"-"`
}
