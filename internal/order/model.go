package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	LocationID      string          `json:"location_id"`
	DeliveryType    DeliveryType    `json:"delivery_type"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	PickupAddress   string          `json:"pickup_address"`
	PaymentMethod   string          `json:"payment_method"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	Items           []Item          `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Item struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// Subtotal is the sum of line prices, before the delivery fee.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Manual status moves an admin may make. Delivery orders only reach
// in_transit, delivered and cancelled through their delivery.
var manualMoves = map[DeliveryType]map[Status][]Status{
	DeliveryTypePickup: {
		StatusPending:   {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusDelivered, StatusCancelled},
	},
	DeliveryTypeDelivery: {
		StatusPending:   {StatusPreparing},
		StatusPreparing: {StatusReady},
	},
}

// CanMove reports whether an admin may set an order of type t from one status
// to another.
func CanMove(t DeliveryType, from, to Status) bool {
	for _, s := range manualMoves[t][from] {
		if s == to {
			return true
		}
	}
	return false
}
