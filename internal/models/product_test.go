package models

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func decodeTags(t *testing.T, doc bson.M) TagList {
	t.Helper()
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	var p ProductDoc
	if err := bson.Unmarshal(raw, &p); err != nil {
		t.Fatal(err)
	}
	return p.Tags
}

func TestTagListDecode(t *testing.T) {
	cases := []struct {
		name string
		doc  bson.M
		want TagList
	}{
		{"array", bson.M{"_id": "p1", "tags": bson.A{"mouse", "usb"}}, TagList{"mouse", "usb"}},
		{"string suelto", bson.M{"_id": "p1", "tags": "mouse"}, TagList{"mouse"}},
		{"string vacío", bson.M{"_id": "p1", "tags": ""}, nil},
		{"null", bson.M{"_id": "p1", "tags": nil}, nil},
		{"ausente", bson.M{"_id": "p1"}, nil},
		{"array con null y número", bson.M{"_id": "p1", "tags": bson.A{"mouse", nil, int32(7)}}, TagList{"mouse", "7"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeTags(t, tc.doc)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("tags = %#v, esperaba %#v", got, tc.want)
			}
		})
	}
}
