package main

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
)

// codeRequest carries a pickup or drop-off code.
// swagger:model CodeRequest
type codeRequest struct {
	Code string `json:"code" binding:"required" example:"042817"`
}

// reasonRequest carries a cancellation reason.
// swagger:model ReasonRequest
type reasonRequest struct {
	Reason string `json:"reason" binding:"required,max=500" example:"flat tire"`
}

// swagger:model AssignRequest
type assignRequest struct {
	RiderID string `json:"rider_id" binding:"required" example:"7c1f3b0e-4b7a-4a52-9a0e-2f6d8f9e1c11"`
}

// forceCompleteRequest closes a delivery without codes. Earning overrides the
// rider's share when set.
// swagger:model ForceCompleteRequest
type forceCompleteRequest struct {
	RiderID string           `json:"rider_id" binding:"required" example:"7c1f3b0e-4b7a-4a52-9a0e-2f6d8f9e1c11"`
	Earning *decimal.Decimal `json:"earning"  swaggertype:"string" example:"15.00"`
}

type checkoutResponse struct {
	*order.Order
	DeliveryID string `json:"delivery_id,omitempty"`
}

// customerDelivery is a delivery as its customer sees it.
type customerDelivery struct {
	delivery.View
	ConfirmationCode string `json:"confirmation_code"`
}

// riderDelivery is a delivery as its assigned rider sees it.
type riderDelivery struct {
	delivery.View
	VerificationCode string `json:"verification_code"`
}

type adminDelivery struct {
	delivery.View
	VerificationCode string `json:"verification_code"`
	ConfirmationCode string `json:"confirmation_code"`
}
