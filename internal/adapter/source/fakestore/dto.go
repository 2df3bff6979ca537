package fakestore

// Product is a product record as returned by GET /products.
// Pointer fields distinguish "missing" from zero values during validation.
type Product struct {
	ID          *int     `json:"id" validate:"required"`
	Title       string   `json:"title"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image" validate:"omitempty,uri"`
	Rating      Rating   `json:"rating"`
}

// Rating is the nested rating object of a product
type Rating struct {
	Rate  float64 `json:"rate" validate:"gte=0,lte=5"`
	Count int     `json:"count" validate:"gte=0"`
}
