package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAsString(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("665f1e9c2b8a4d0012345678")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"uuid-123", "uuid-123"},
		{oid, "665f1e9c2b8a4d0012345678"},
		{int32(7), "7"},
	}
	for _, tc := range cases {
		if got := asString(tc.in); got != tc.want {
			t.Errorf("asString(%v) = %q, esperaba %q", tc.in, got, tc.want)
		}
	}
}

func TestAsTime(t *testing.T) {
	ref := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	if got := asTime(primitive.NewDateTimeFromTime(ref)); !got.Equal(ref) {
		t.Errorf("DateTime: %v, esperaba %v", got, ref)
	}
	if got := asTime(ref); !got.Equal(ref) {
		t.Errorf("time.Time: %v, esperaba %v", got, ref)
	}
	if got := asTime("2025-03-15T10:30:00Z"); !got.Equal(ref) {
		t.Errorf("RFC3339: %v, esperaba %v", got, ref)
	}
	// no parseable o tipo desconocido => cero (marcador de faltante)
	if got := asTime("15/03/2025"); !got.IsZero() {
		t.Errorf("fecha inválida: %v, esperaba cero", got)
	}
	if got := asTime(42); !got.IsZero() {
		t.Errorf("tipo desconocido: %v, esperaba cero", got)
	}
}

func TestAsFloat64(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{int32(3), 3},
		{int64(9), 9},
		{2.5, 2.5},
		{"texto", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asFloat64(tc.in); got != tc.want {
			t.Errorf("asFloat64(%v) = %v, esperaba %v", tc.in, got, tc.want)
		}
	}
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{int32(3), 3, true},
		{int64(9), 9, true},
		{2.0, 2, true},
		{"3", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := asInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("asInt(%v) = (%v, %v), esperaba (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
