package models

// ListEntry es un elemento de carrito o wishlist dentro del documento de usuario.
type ListEntry struct {
	ProductID string `json:"productId" bson:"_id"`
	Quantity  *int   `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Size      string `json:"size,omitempty" bson:"size,omitempty"`
}

// UserDoc es la vista del usuario que consume el pipeline.
// Solo se decodifican los campos que participan del merge:
// image, role, password, email y phone se quedan en Mongo y
// nunca llegan a los consumidores del dataset.
type UserDoc struct {
	ID               string      `json:"userId" bson:"-"`
	Username         string      `json:"username" bson:"username"`
	CartProducts     []ListEntry `json:"cartProducts,omitempty" bson:"cartProducts,omitempty"`
	WishListProducts []ListEntry `json:"wishListProducts,omitempty" bson:"wishListProducts,omitempty"`
}

// AccountDoc es el documento completo de la colección users, usado
// solo por el flujo de auth (register/login), no por el pipeline.
type AccountDoc struct {
	ID           string `json:"userId" bson:"-"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password"`
	Role         string `json:"role" bson:"role"`
}
