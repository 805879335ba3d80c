package delivery

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/identity"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusOffered   Status = "offered"
	StatusAssigned  Status = "assigned"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOffered, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Delivery is the transport leg of an order. Codes never leave this struct
// through JSON; handlers expose them only to the party meant to hold them.
type Delivery struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	RiderID            *string         `json:"rider_id"`
	CustomerID         string          `json:"customer_id"`
	PickupLocation     string          `json:"pickup_location"`
	DeliveryAddress    string          `json:"delivery_address"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	CommissionRate     decimal.Decimal `json:"commission_rate"`
	CommissionAmount   decimal.Decimal `json:"commission_amount"`
	RiderEarning       decimal.Decimal `json:"rider_earning"`
	Status             Status          `json:"status"`
	VerificationCode   string          `json:"-"`
	ConfirmationCode   string          `json:"-"`
	AssignedAt         *time.Time      `json:"assigned_at,omitempty"`
	PickedUpAt         *time.Time      `json:"picked_up_at,omitempty"`
	DeliveredAt        *time.Time      `json:"delivered_at,omitempty"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (d *Delivery) assignedTo(riderID string) bool {
	return d.RiderID != nil && *d.RiderID == riderID
}

// Event is one row of a delivery's audit trail.
type Event struct {
	ID         int64         `json:"id"`
	DeliveryID string        `json:"delivery_id"`
	FromStatus Status        `json:"from_status,omitempty"`
	ToStatus   Status        `json:"to_status"`
	Action     Action        `json:"action"`
	ActorID    string        `json:"actor_id"`
	ActorRole  identity.Role `json:"actor_role"`
	Note       string        `json:"note,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

type Filter struct {
	RiderID       string
	CustomerID    string
	OrderID       string
	Status        Status
	DeliveredFrom *time.Time
	DeliveredTo   *time.Time
	Limit         int
}

// View is a delivery joined with the display fields admin screens need.
type View struct {
	Delivery
	RiderName               string          `json:"rider_name,omitempty"`
	RiderPhone              string          `json:"rider_phone,omitempty"`
	RiderRegistrationNumber string          `json:"rider_registration_number,omitempty"`
	OrderTotal              decimal.Decimal `json:"order_total"`
	PaymentMethod           string          `json:"payment_method,omitempty"`
}

// Actor is whoever triggers a transition; recorded on the audit row.
type Actor struct {
	ID   string
	Role identity.Role
}

// RoleSystem marks transitions made by the dispatcher itself.
const RoleSystem identity.Role = "system"

var SystemActor = Actor{ID: "dispatch", Role: RoleSystem}
