package cart

// AddItemInput is the request to add one variant to the cart.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// QuickAddInput adds a product using its default variant.
type QuickAddInput struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SetQuantityInput replaces the quantity of an existing line. Zero and
// negative values remove the line, so the field carries no minimum.
type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}
