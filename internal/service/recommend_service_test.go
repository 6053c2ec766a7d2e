package service

import (
	"testing"
	"time"

	"myshop-ml/internal/dataset"
	"myshop-ml/internal/models"
)

func rec(productID, subcategory, brand string, tags models.TagList, title string, rating, discount float64) models.Record {
	r := models.Record{
		UserID:             models.NoUser,
		ProductID:          productID,
		Subcategory:        subcategory,
		Brand:              brand,
		Tags:               tags,
		Title:              title,
		Rating:             rating,
		DiscountPercentage: discount,
	}
	r.CombinedText = dataset.CombinedText(&r)
	return r
}

// ====== personalizado ======

func TestRankPersonalizedExcludesInteracted(t *testing.T) {
	records := []models.Record{
		rec("p1", "s", "b", nil, "uno", 4.0, 0),
		rec("p2", "s", "b", nil, "dos", 5.0, 0),
		rec("p3", "s", "b", nil, "tres", 3.0, 0),
	}
	interactions := []models.InteractionDoc{
		{UserID: "u1", ProductID: "p2", Type: "view", InteractionDate: time.Now()},
	}

	got := rankPersonalized(records, interactions, 10)
	for _, id := range got {
		if id == "p2" {
			t.Fatal("un producto interactuado no puede recomendarse")
		}
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, esperaba 2", len(got))
	}
	// sin conteos, desempata rating desc
	if got[0] != "p1" || got[1] != "p3" {
		t.Fatalf("orden = %v, esperaba [p1 p3]", got)
	}
}

func TestRankPersonalizedZeroInteractionsKeepsAll(t *testing.T) {
	records := []models.Record{
		rec("p1", "s", "b", nil, "uno", 3.0, 10),
		rec("p2", "s", "b", nil, "dos", 4.5, 0),
		rec("p3", "s", "b", nil, "tres", 4.5, 30),
	}

	// sin interacciones no hay exclusión: todo el catálogo se rankea
	got := rankPersonalized(records, nil, 10)
	if len(got) != 3 {
		t.Fatalf("len = %d, esperaba 3", len(got))
	}
	// rating desc, empate por descuento desc
	want := []string{"p3", "p2", "p1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orden = %v, esperaba %v", got, want)
		}
	}
}

func TestRankPersonalizedTopN(t *testing.T) {
	var records []models.Record
	for i := 0; i < 20; i++ {
		records = append(records, rec(string(rune('a'+i)), "s", "b", nil, "t", float64(i), 0))
	}
	got := rankPersonalized(records, nil, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, esperaba 5", len(got))
	}
}

func TestIsValidUserID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"null", false},
		{"NULL", false},
		{"undefined", false},
		{"none", false},
		{"abc", false},
		{"665f1e9c2b8a4d0012345678", true},
		{"665F1E9C2B8A4D0012345678", true},
		{"665f1e9c2b8a4d001234567z", false}, // no-hex
		{"665f1e9c2b8a4d00123456789", false}, // 25 chars
	}
	for _, tc := range cases {
		if got := IsValidUserID(tc.id); got != tc.want {
			t.Errorf("IsValidUserID(%q) = %v, esperaba %v", tc.id, got, tc.want)
		}
	}
}

// ====== fallback ======

func TestSampleFallbackFewerThanN(t *testing.T) {
	records := []models.Record{
		rec("p1", "s", "b", nil, "t", 0, 0),
		rec("p1", "s", "b", nil, "t", 0, 0), // duplicado por par usuario-producto
		rec("p2", "s", "b", nil, "t", 0, 0),
	}
	got := sampleFallback(records, 10)
	if len(got) != 2 {
		t.Fatalf("len = %d, esperaba 2 distintos", len(got))
	}
	if got[0] != "p1" || got[1] != "p2" {
		t.Fatalf("con menos ítems que topN se preserva el orden: %v", got)
	}
}

func TestSampleFallbackExactlyN(t *testing.T) {
	var records []models.Record
	for i := 0; i < 30; i++ {
		records = append(records, rec(string(rune('a'+i)), "s", "b", nil, "t", 0, 0))
	}

	got := sampleFallback(records, 10)
	if len(got) != 10 {
		t.Fatalf("len = %d, esperaba 10", len(got))
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("id repetido en el muestreo sin reemplazo: %s", id)
		}
		seen[id] = true
	}
}

func TestSampleFallbackEmpty(t *testing.T) {
	if got := sampleFallback(nil, 10); len(got) != 0 {
		t.Fatalf("dataset vacío: %v, esperaba vacío", got)
	}
}

// ====== content-based ======

func TestContentRelatedRankingAndFilter(t *testing.T) {
	target := rec("p0", "electronics", "Logi", models.TagList{"mouse"}, "Wireless Mouse Pro", 4.5, 0)
	records := []models.Record{
		target,
		rec("p1", "electronics", "Logi", models.TagList{"mouse"}, "Wireless Mouse", 4.0, 0),
		rec("p2", "electronics", "Logi", models.TagList{"keyboard"}, "Wireless Keyboard", 4.2, 0),
		rec("p3", "electronics", "Acme", models.TagList{"cable"}, "HDMI Cable", 3.9, 0),
		rec("p4", "clothing", "Logi", models.TagList{"mouse"}, "Wireless Mouse", 4.8, 0),
	}

	got, err := contentRelated(records, &records[0])
	if err != nil {
		t.Fatal(err)
	}

	ids := map[string]bool{}
	for _, p := range got {
		ids[p.ProductID] = true
	}
	// p3: ni tags ni marca en común; p4: otra subcategoría
	if ids["p3"] || ids["p4"] {
		t.Fatalf("el filtro dejó pasar candidatos inválidos: %v", ids)
	}
	// p1 comparte tag, p2 comparte marca (or inclusivo)
	if !ids["p1"] || !ids["p2"] {
		t.Fatalf("faltan candidatos válidos: %v", ids)
	}

	// el objetivo encabeza (similitud 1) y p1 rankea sobre p2
	pos := map[string]int{}
	for i, p := range got {
		pos[p.ProductID] = i
	}
	if pos["p0"] != 0 {
		t.Errorf("el propio objetivo debería rankear primero, quedó en %d", pos["p0"])
	}
	if pos["p1"] > pos["p2"] {
		t.Errorf("Wireless Mouse debería rankear sobre Wireless Keyboard: %v", got)
	}
}

func TestContentRelatedEmptyPool(t *testing.T) {
	target := rec("p0", "nicho-solitario", "b", nil, "t", 0, 0)
	records := []models.Record{
		rec("p1", "electronics", "b", nil, "t", 0, 0),
	}

	got, err := contentRelated(records, &target)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("sin candidatos de la subcategoría esperaba vacío, hay %v", got)
	}
}

func TestTagsIntersect(t *testing.T) {
	cases := []struct {
		a, b models.TagList
		want bool
	}{
		{models.TagList{"mouse", "usb"}, models.TagList{"usb"}, true},
		{models.TagList{"mouse"}, models.TagList{"keyboard"}, false},
		{nil, models.TagList{"mouse"}, false},
		{models.TagList{"mouse"}, nil, false},
		{nil, nil, false},
	}
	for _, tc := range cases {
		if got := tagsIntersect(tc.a, tc.b); got != tc.want {
			t.Errorf("tagsIntersect(%v, %v) = %v, esperaba %v", tc.a, tc.b, got, tc.want)
		}
	}
}

// ====== vecinos ======

func TestNeighborIDsExcludesSelf(t *testing.T) {
	records := []models.Record{
		rec("p1", "electronics", "Logi", models.TagList{"mouse"}, "Wireless Mouse Black", 4.0, 5),
		rec("p2", "electronics", "Logi", models.TagList{"mouse"}, "Wireless Mouse White", 4.5, 10),
		rec("p3", "clothing", "Zara", models.TagList{"shirt"}, "Cotton Shirt Wireless", 3.0, 0),
	}

	got, err := neighborIDs(records, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range got {
		if id == "p1" {
			t.Fatal("el propio producto no puede ser su vecino")
		}
	}
	if len(got) == 0 {
		t.Fatal("esperaba al menos un vecino")
	}
	// p2 comparte casi todo el texto con p1; debe salir antes que p3
	if got[0] != "p2" {
		t.Fatalf("primer vecino = %q, esperaba p2", got[0])
	}
}

func TestNeighborIDsInsufficientData(t *testing.T) {
	records := []models.Record{
		rec("p1", "electronics", "Logi", nil, "Wireless Mouse", 4.0, 0),
	}
	if _, err := neighborIDs(records, 0, 3); err == nil {
		t.Fatal("con una sola fila el índice debe fallar")
	}
}
