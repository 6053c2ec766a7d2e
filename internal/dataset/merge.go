package dataset

import (
	"time"

	"myshop-ml/internal/models"
)

// pairing es una fila intermedia (usuario, producto) antes del join
// contra el catálogo.
type pairing struct {
	userID    string
	username  string
	productID string
	quantity  *int
	size      string
	date      time.Time
	typ       string
}

type pairKey struct {
	userID    string
	productID string
}

// Merge reconcilia usuarios (carrito + wishlist), interacciones y catálogo
// en el dataset canónico: una fila por par (usuario, producto) observado,
// y una fila "sin usuario" por cada producto que nadie tocó.
//
// `now` es el valor de relleno para fechas faltantes; con un snapshot y un
// now fijos el resultado es idéntico corrida tras corrida.
//
// Reglas:
//   - el type de carrito/wishlist gana sobre el de interactions
//   - join right-preserving contra products: todo producto queda recomendable
//   - filas de productos borrados entre fetch y merge se descartan
func Merge(
	users []models.UserDoc,
	interactions []models.InteractionDoc,
	products []models.ProductDoc,
	now time.Time,
) []models.Record {

	// 1-2) aplanar carritos y wishlists en filas de comportamiento
	pairs := make(map[pairKey]*pairing)
	var order []pairKey

	add := func(u *models.UserDoc, entries []models.ListEntry, typ string) {
		for _, e := range entries {
			if e.ProductID == "" {
				continue
			}
			k := pairKey{userID: u.ID, productID: e.ProductID}
			if _, ok := pairs[k]; ok {
				// carrito va antes que wishlist: el primero gana
				continue
			}
			pairs[k] = &pairing{
				userID:    u.ID,
				username:  u.Username,
				productID: e.ProductID,
				quantity:  e.Quantity,
				size:      e.Size,
				typ:       typ,
			}
			order = append(order, k)
		}
	}

	for i := range users {
		add(&users[i], users[i].CartProducts, models.TypeCart)
	}
	for i := range users {
		add(&users[i], users[i].WishListProducts, models.TypeWishlist)
	}

	// 3) outer join con interactions sobre (user_id, productId)
	for _, it := range interactions {
		if it.ProductID == "" {
			continue
		}
		k := pairKey{userID: it.UserID, productID: it.ProductID}
		if p, ok := pairs[k]; ok {
			// el type de carrito/wishlist tiene precedencia
			if p.typ == "" {
				p.typ = it.Type
			}
			if p.date.IsZero() {
				p.date = it.InteractionDate
			}
			continue
		}
		pairs[k] = &pairing{
			userID:    it.UserID,
			productID: it.ProductID,
			date:      it.InteractionDate,
			typ:       it.Type,
		}
		order = append(order, k)
	}

	// agrupar pares por producto preservando el orden de aparición
	byProduct := make(map[string][]*pairing)
	for _, k := range order {
		byProduct[k.productID] = append(byProduct[k.productID], pairs[k])
	}

	// 4-6) join right-preserving contra el catálogo + política de faltantes
	var out []models.Record
	for i := range products {
		p := &products[i]
		rows := byProduct[p.ID]
		if len(rows) == 0 {
			r := fillRecord(nil, p, now)
			out = append(out, r)
			continue
		}
		for _, row := range rows {
			out = append(out, fillRecord(row, p, now))
		}
	}
	return out
}

// fillRecord arma el Record final aplicando los rellenos documentados.
// row == nil significa que ningún usuario tocó el producto.
func fillRecord(row *pairing, p *models.ProductDoc, now time.Time) models.Record {
	r := models.Record{
		UserID:          models.NoUser,
		Username:        models.GuestUsername,
		ProductID:       p.ID,
		Quantity:        1,
		Size:            models.DefaultSize,
		InteractionDate: now,
		Type:            models.TypeNoInteraction,

		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Subcategory:        p.Subcategory,
		Tags:               p.Tags,
		Brand:              p.Brand,
		SKU:                p.SKU,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
	}

	if row != nil {
		if row.userID != "" {
			r.UserID = row.userID
		}
		if row.username != "" {
			r.Username = row.username
		}
		if row.quantity != nil {
			r.Quantity = *row.quantity
		}
		if row.size != "" {
			r.Size = row.size
		}
		if !row.date.IsZero() {
			r.InteractionDate = row.date
		}
		// hubo fila de comportamiento pero sin type resuelto => "view"
		if row.typ != "" {
			r.Type = row.typ
		} else {
			r.Type = models.TypeView
		}
	}

	r.CombinedText = CombinedText(&r)
	return r
}
