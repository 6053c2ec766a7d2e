package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helpers de normalización: todo identificador sale como string canónico
// y toda fecha como time.Time. Los docs vienen con tipos mezclados
// (ObjectID vs string uuid, Date vs string), así que nunca se comparan
// valores crudos de Mongo aguas abajo.

// asString convierte identificadores nativos de Mongo a string.
func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case primitive.ObjectID:
		return x.Hex()
	default:
		return fmt.Sprint(x)
	}
}

// asTime convierte fechas de Mongo a time.Time.
// Una fecha no parseable queda en el cero de time.Time (marcador de "falta").
func asTime(v any) time.Time {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time()
	case time.Time:
		return x
	case string:
		if t, err := time.Parse(time.RFC3339, x); err == nil {
			return t
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}
