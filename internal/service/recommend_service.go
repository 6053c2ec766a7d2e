package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"myshop-ml/internal/cache"
	"myshop-ml/internal/config"
	"myshop-ml/internal/dataset"
	"myshop-ml/internal/db"
	"myshop-ml/internal/feature"
	"myshop-ml/internal/models"
	"myshop-ml/internal/repository"
	"myshop-ml/internal/similarity"
)

const (
	DefaultTopN = 10
	MaxTopN     = 50 // por seguridad, no deja pedir 1000 ítems

	cacheTTLSeconds = 300

	// vecinos que se piden al índice: 10 útiles + el propio punto de consulta
	neighborQueryK = 11
)

var (
	ErrInvalidProductID = errors.New("product_id is required")
	ErrProductNotFound  = errors.New("product not found")
)

// RecommendService corre el pipeline completo por pedido:
// normalizar → mergear → features → (índice) → generar.
// No guarda estado entre requests; la conexión a Mongo se abre al
// principio de cada operación y se libera siempre al salir.
type RecommendService struct {
	cfg *config.Config
}

func NewRecommendService(cfg *config.Config) *RecommendService {
	return &RecommendService{cfg: cfg}
}

// buildDataset lee el snapshot completo del store y lo reconcilia
// en el dataset canónico.
func buildDataset(ctx context.Context, conn *db.Conn) ([]models.Record, error) {
	users, err := repository.NewUserRepository(conn.DB()).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("leyendo users: %w", err)
	}
	interactions, err := repository.NewInteractionRepository(conn.DB()).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("leyendo interactions: %w", err)
	}
	products, err := repository.NewProductRepository(conn.DB()).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("leyendo products: %w", err)
	}
	return dataset.Merge(users, interactions, products, time.Now()), nil
}

// ====== content-based ======

// ContentBased devuelve productos parecidos a uno dado: misma subcategoría,
// ranking por similitud de títulos, filtro por tags o marca.
func (s *RecommendService) ContentBased(ctx context.Context, productID string, refresh bool) ([]models.ProductInfo, error) {
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	cacheKey := "rec:content:" + productID
	if !refresh {
		var cached []models.ProductInfo
		if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	conn, err := db.Open(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	records, err := buildDataset(ctx, conn)
	if err != nil {
		return nil, err
	}

	target := findRecord(records, productID)
	if target == nil {
		return nil, ErrProductNotFound
	}

	out, err := contentRelated(records, target)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, cacheKey, out, cacheTTLSeconds); err != nil {
		log.Printf("error cacheando content-based en Redis: %v", err)
	}
	return out, nil
}

func findRecord(records []models.Record, productID string) *models.Record {
	for i := range records {
		if records[i].ProductID == productID {
			return &records[i]
		}
	}
	return nil
}

// contentRelated es el núcleo puro del flujo content-based.
//
//  a) candidatos = filas con la subcategoría del objetivo
//  b) ranking descendente por similitud coseno de títulos, con un TF-IDF
//     ajustado solo sobre este pool (independiente del índice global)
//  c) se quedan los que comparten algún tag O la marca (or inclusivo)
//  d) pool vacío => resultado vacío; el caller decide qué hacer
func contentRelated(records []models.Record, target *models.Record) ([]models.ProductInfo, error) {
	var pool []*models.Record
	for i := range records {
		if records[i].Subcategory == target.Subcategory {
			pool = append(pool, &records[i])
		}
	}
	if len(pool) == 0 {
		return []models.ProductInfo{}, nil
	}

	// TF-IDF de títulos: corpus = candidatos + objetivo al final
	titles := make([]string, 0, len(pool)+1)
	for _, r := range pool {
		titles = append(titles, r.Title)
	}
	titles = append(titles, target.Title)

	vecs, err := feature.NewTitleVectorizer().FitTransform(titles)
	if err != nil {
		return nil, fmt.Errorf("vectorizando títulos: %w", err)
	}
	targetVec := vecs[len(vecs)-1]

	type scored struct {
		rec *models.Record
		sim float64
	}
	ranked := make([]scored, len(pool))
	for i, r := range pool {
		ranked[i] = scored{rec: r, sim: feature.CosineSimilarity(targetVec, vecs[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sim > ranked[j].sim })

	out := make([]models.ProductInfo, 0, len(ranked))
	for _, c := range ranked {
		if tagsIntersect(c.rec.Tags, target.Tags) || c.rec.Brand == target.Brand {
			out = append(out, c.rec.Info(c.sim))
		}
	}
	return out, nil
}

func tagsIntersect(a, b models.TagList) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// ====== personalizado ======

// Personalized rankea productos no vistos por el usuario. Este camino
// nunca devuelve error: cualquier falla degrada a la lista de fallback
// y, en el peor de los casos, a una lista vacía.
func (s *RecommendService) Personalized(ctx context.Context, userID string, topN int, refresh bool) []string {
	if topN <= 0 {
		topN = DefaultTopN
	} else if topN > MaxTopN {
		topN = MaxTopN
	}

	cacheKey := fmt.Sprintf("rec:user:%s:n:%d", userID, topN)
	if !refresh {
		var cached []string
		if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached
		}
	}

	conn, err := db.Open(ctx, s.cfg)
	if err != nil {
		log.Printf("[recommend] mongo no disponible: %v", err)
		return []string{}
	}
	defer conn.Close()

	records, err := buildDataset(ctx, conn)
	if err != nil {
		log.Printf("[recommend] error armando dataset: %v", err)
		return s.fallback(ctx, conn, nil, topN)
	}

	ids, strategy := s.personalizedOrFallback(ctx, conn, records, userID, topN)

	// historial best-effort: no rompemos la respuesta si falla
	recRepo := repository.NewRecommendationRepository(conn.DB())
	if err := recRepo.Insert(ctx, &models.Recommendation{
		UserID:     userID,
		Strategy:   strategy,
		ProductIDs: ids,
		CreatedAt:  time.Now(),
	}); err != nil {
		log.Printf("error guardando recomendación en Mongo: %v", err)
	}

	if err := cache.SetJSON(ctx, cacheKey, ids, cacheTTLSeconds); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}
	return ids
}

func (s *RecommendService) personalizedOrFallback(
	ctx context.Context,
	conn *db.Conn,
	records []models.Record,
	userID string,
	topN int,
) ([]string, string) {

	if !IsValidUserID(userID) {
		return s.fallback(ctx, conn, records, topN), "fallback"
	}

	interactions, err := repository.NewInteractionRepository(conn.DB()).FindByUser(ctx, userID)
	if err != nil {
		log.Printf("[recommend] error leyendo interacciones de %s: %v", userID, err)
		return s.fallback(ctx, conn, records, topN), "fallback"
	}
	if len(interactions) == 0 {
		return s.fallback(ctx, conn, records, topN), "fallback"
	}

	ids := rankPersonalized(records, interactions, topN)
	if len(ids) == 0 {
		// el usuario ya tocó todos los candidatos
		return s.fallback(ctx, conn, records, topN), "fallback"
	}
	return ids, "personalized"
}

// rankPersonalized excluye lo ya interactuado y ordena los candidatos por
// (interacciones desc, rating desc, descuento desc). Ese triple orden
// descendente es el contrato de ranking.
func rankPersonalized(records []models.Record, interactions []models.InteractionDoc, topN int) []string {
	interacted := make(map[string]struct{}, len(interactions))
	counts := make(map[string]int, len(interactions))
	for _, it := range interactions {
		if it.ProductID == "" {
			continue
		}
		interacted[it.ProductID] = struct{}{}
		counts[it.ProductID]++
	}

	var candidates []*models.Record
	for i := range records {
		if len(interactions) > 0 {
			if _, ok := interacted[records[i].ProductID]; ok {
				continue
			}
		}
		candidates = append(candidates, &records[i])
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if counts[a.ProductID] != counts[b.ProductID] {
			return counts[a.ProductID] > counts[b.ProductID]
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.DiscountPercentage > b.DiscountPercentage
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ProductID
	}
	return out
}

// IsValidUserID exige el formato de ObjectID en hex (24 caracteres) y
// rechaza los placeholders que mandan los frontends ("null", "undefined", "none").
func IsValidUserID(userID string) bool {
	switch strings.ToLower(userID) {
	case "", "null", "undefined", "none":
		return false
	}
	if len(userID) != 24 {
		return false
	}
	for _, c := range userID {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ====== fallback ======

// fallback nunca falla: si no hay dataset muestrea productos directo de
// Mongo; cualquier error interno termina en lista vacía.
func (s *RecommendService) fallback(ctx context.Context, conn *db.Conn, records []models.Record, topN int) []string {
	if len(records) == 0 {
		if conn == nil {
			return []string{}
		}
		ids, err := repository.NewProductRepository(conn.DB()).Sample(ctx, topN)
		if err != nil {
			log.Printf("[recommend] fallback $sample falló: %v", err)
			return []string{}
		}
		return ids
	}
	return sampleFallback(records, topN)
}

// sampleFallback muestrea hasta topN productIds distintos del dataset,
// sin reemplazo.
func sampleFallback(records []models.Record, topN int) []string {
	seen := make(map[string]struct{}, len(records))
	var distinct []string
	for i := range records {
		id := records[i].ProductID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	if len(distinct) <= topN {
		return distinct
	}

	out := make([]string, 0, topN)
	for _, idx := range rand.Perm(len(distinct))[:topN] {
		out = append(out, distinct[idx])
	}
	return out
}

// ====== vecinos por índice global ======

// Similar responde con los 10 vecinos más cercanos en la matriz compuesta
// (texto TF-IDF pesado + bloque numérico escalado). Si el producto no está
// en el dataset, o no hay datos suficientes para un índice, degrada a fallback.
func (s *RecommendService) Similar(ctx context.Context, productID string) ([]string, error) {
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	conn, err := db.Open(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	records, err := buildDataset(ctx, conn)
	if err != nil {
		return nil, err
	}

	// para consultas de contenido el índice se arma por producto distinto
	unique := uniqueByProduct(records)

	row := -1
	for i := range unique {
		if unique[i].ProductID == productID {
			row = i
			break
		}
	}
	if row < 0 {
		return s.fallback(ctx, conn, unique, DefaultTopN), nil
	}

	ids, err := neighborIDs(unique, row, neighborQueryK)
	if err != nil {
		// datos insuficientes para vectorizar/indexar => degradar
		log.Printf("[recommend] índice no disponible (%v), usando fallback", err)
		return s.fallback(ctx, conn, unique, DefaultTopN), nil
	}
	return ids, nil
}

// neighborIDs arma la matriz compuesta sobre los records dados y consulta
// k vecinos de la fila objetivo, descartando el primero (el propio punto).
func neighborIDs(records []models.Record, row, k int) ([]string, error) {
	texts := make([]string, len(records))
	for i := range records {
		texts[i] = records[i].CombinedText
	}

	vectorizer := feature.NewVectorizer()
	textVecs, err := vectorizer.FitTransform(texts)
	if err != nil {
		return nil, err
	}

	nums := feature.ScaleNumeric(records)
	composite := similarity.Composite(textVecs, nums, vectorizer.Dimension())

	index, err := similarity.NewIndex(composite)
	if err != nil {
		return nil, err
	}

	neighbors := index.Neighbors(row, k)
	var out []string
	for _, n := range neighbors {
		if n.Row == row {
			continue
		}
		out = append(out, records[n.Row].ProductID)
	}
	return out, nil
}

func uniqueByProduct(records []models.Record) []models.Record {
	seen := make(map[string]struct{}, len(records))
	var out []models.Record
	for i := range records {
		if _, ok := seen[records[i].ProductID]; ok {
			continue
		}
		seen[records[i].ProductID] = struct{}{}
		out = append(out, records[i])
	}
	return out
}
