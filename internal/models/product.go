package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TagList normaliza el campo "tags" de productos, que en la colección
// puede venir como array, como string suelto o no venir.
// Después de decodificar siempre es una lista de strings.
type TagList []string

func (t *TagList) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}

	switch bt {
	case bsontype.Array:
		var raw []any
		if err := rv.Unmarshal(&raw); err != nil {
			return err
		}
		out := make(TagList, 0, len(raw))
		for _, v := range raw {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(v))
			}
		}
		*t = out
	case bsontype.String:
		if s, ok := rv.StringValueOK(); ok && s != "" {
			*t = TagList{s}
		} else {
			*t = nil
		}
	default:
		// null / undefined / tipo inesperado
		*t = nil
	}
	return nil
}

// ProductDoc es la fila del catálogo (colección products).
// Los _id de productos son strings (uuid), no ObjectID.
type ProductDoc struct {
	ID                 string  `json:"productId" bson:"_id"`
	Title              string  `json:"title" bson:"title"`
	Description        string  `json:"description" bson:"description"`
	Category           string  `json:"category" bson:"category"`
	Subcategory        string  `json:"subcategory" bson:"subcategory"`
	Tags               TagList `json:"tags" bson:"tags"`
	Brand              string  `json:"brand" bson:"brand"`
	SKU                string  `json:"sku" bson:"sku"`
	Price              float64 `json:"price" bson:"price"`
	DiscountPercentage float64 `json:"discountPercentage" bson:"discountPercentage"`
	Rating             float64 `json:"rating" bson:"rating"`
	Stock              float64 `json:"stock" bson:"stock"`
}

// ProductInfo es lo que devuelve /recommendations/content/{productId}.
type ProductInfo struct {
	ProductID          string  `json:"productId"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              float64 `json:"stock"`
	Subcategory        string  `json:"subcategory"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand"`
	SKU                string  `json:"sku"`
	TitleSimilarity    float64 `json:"title_similarity"`
}
