package order

// CheckoutItem is one line of a checkout.
// swagger:model CheckoutItem
type CheckoutItem struct {
	MenuItemID string `json:"menu_item_id" binding:"required"       example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity   int    `json:"quantity"     binding:"required,min=1" example:"2"`
}

// CheckoutRequest places an order. The customer comes from the bearer token.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	LocationID      string         `json:"location_id"      binding:"required"                        example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	DeliveryType    DeliveryType   `json:"delivery_type"    binding:"required,oneof=delivery pickup"  example:"delivery"`
	DeliveryAddress string         `json:"delivery_address" binding:"required_if=DeliveryType delivery,max=300" example:"Calle 10 #43-12, Medellin"`
	PaymentMethod   string         `json:"payment_method"   binding:"required,max=40"                 example:"cash"`
	Items           []CheckoutItem `json:"items"            binding:"required,min=1,dive"`
}

// UpdateStatusRequest is the admin status change body.
// swagger:model UpdateOrderStatusRequest
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required" example:"preparing"`
}
