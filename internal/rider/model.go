package rider

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusDeleted   Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

// Rider is a courier account. The totals and balance are written only by
// the delivery ledger when a delivery completes.
type Rider struct {
	ID                 string          `json:"id"`
	AccountID          string          `json:"account_id"`
	RegistrationNumber string          `json:"registration_number"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email,omitempty"`
	VehicleType        string          `json:"vehicle_type"`
	VehicleNumber      string          `json:"vehicle_number,omitempty"`
	TelegramChatID     *int64          `json:"telegram_chat_id,omitempty"`
	Status             Status          `json:"status"`
	TotalDeliveries    int             `json:"total_deliveries"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	Rating             decimal.Decimal `json:"rating"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RegisterInput is the self-registration body.
// swagger:model RegisterRiderRequest
type RegisterInput struct {
	Name           string `json:"name"             binding:"required,min=2,max=100"                      example:"Laura Gomez"`
	Phone          string `json:"phone"            binding:"required,min=7,max=20"                       example:"+573001234567"`
	Email          string `json:"email"            binding:"omitempty,email"                             example:"laura@example.com"`
	VehicleType    string `json:"vehicle_type"     binding:"required,oneof=bicycle scooter motorcycle car" example:"motorcycle"`
	VehicleNumber  string `json:"vehicle_number"   binding:"max=20"                                      example:"ABC12D"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// PublicProfile is what customers see of the rider carrying their order.
type PublicProfile struct {
	ID                 string          `json:"id"`
	RegistrationNumber string          `json:"registration_number"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	VehicleType        string          `json:"vehicle_type"`
	TotalDeliveries    int             `json:"total_deliveries"`
	Rating             decimal.Decimal `json:"rating"`
}
