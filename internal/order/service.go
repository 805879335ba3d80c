package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shares the gin binding tags so direct callers get the same checks as HTTP.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Catalog is what checkout needs from the catalog service.
type Catalog interface {
	FetchMenuItem(ctx context.Context, id string) (*MenuItemDTO, error)
	FetchLocation(ctx context.Context, id string) (*LocationDTO, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Checkout prices the request against the catalog and stores a pending
// order. Client-sent prices are never trusted.
func (s *Service) Checkout(ctx context.Context, customerID string, req CheckoutRequest) (*Order, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer is required", ErrInvalidOrder)
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	addr := strings.TrimSpace(req.DeliveryAddress)
	if req.DeliveryType == DeliveryTypeDelivery && addr == "" {
		return nil, fmt.Errorf("%w: delivery address is required", ErrInvalidOrder)
	}

	loc, err := s.catalog.FetchLocation(ctx, req.LocationID)
	if err != nil {
		return nil, catalogErr(err)
	}
	if req.DeliveryType == DeliveryTypeDelivery && !loc.Delivers {
		return nil, fmt.Errorf("%w: location %s does not deliver", ErrInvalidOrder, loc.ID)
	}

	now := time.Now().UTC()
	o := &Order{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		LocationID:    loc.ID,
		DeliveryType:  req.DeliveryType,
		PickupAddress: loc.Address,
		PaymentMethod: req.PaymentMethod,
		DeliveryFee:   decimal.Zero,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.DeliveryType == DeliveryTypeDelivery {
		o.DeliveryAddress = addr
		o.DeliveryFee = loc.DeliveryFee
	}

	for _, line := range req.Items {
		m, err := s.catalog.FetchMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, catalogErr(err)
		}
		if !m.Available {
			return nil, fmt.Errorf("%w: %s is not available", ErrInvalidOrder, m.Name)
		}
		o.Items = append(o.Items, Item{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			MenuItemID: m.ID,
			Name:       m.Name,
			UnitPrice:  m.Price,
			Quantity:   line.Quantity,
		})
	}
	o.TotalAmount = o.Subtotal().Add(o.DeliveryFee)

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]Order, error) {
	return s.repo.ListByCustomer(ctx, customerID, limit, offset)
}

func (s *Service) ListUndispatched(ctx context.Context, limit int) ([]Order, error) {
	return s.repo.ListUndispatched(ctx, limit)
}

// UpdateStatus is the admin's manual move along the kitchen workflow.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (*Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMove(o.DeliveryType, o.Status, to) {
		return nil, fmt.Errorf("%w: %s order from %s to %s", ErrInvalidTransition, o.DeliveryType, o.Status, to)
	}
	if err := s.repo.SetStatusFrom(ctx, id, o.Status, to); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func catalogErr(err error) error {
	if errors.Is(err, ErrUnknownItem) || errors.Is(err, ErrUnknownLocation) {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return err
}
