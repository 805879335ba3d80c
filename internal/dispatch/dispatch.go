package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
)

var ErrNotDeliveryOrder = errors.New("order is not for delivery")

// Ledger is the delivery ledger as the dispatcher drives it.
type Ledger interface {
	Create(ctx context.Context, in delivery.NewDelivery, by delivery.Actor) (*delivery.Delivery, error)
	GetByOrder(ctx context.Context, orderID string) (*delivery.Delivery, error)
	List(ctx context.Context, f delivery.Filter) ([]delivery.View, error)
	Offer(ctx context.Context, id string, by delivery.Actor) (*delivery.Delivery, error)
	Accept(ctx context.Context, id, riderID string) (*delivery.Delivery, error)
	AdminAssign(ctx context.Context, id, riderID string, admin delivery.Actor) (*delivery.Delivery, error)
}

type Orders interface {
	Get(ctx context.Context, id string) (*order.Order, error)
	ListUndispatched(ctx context.Context, limit int) ([]order.Order, error)
}

// Dispatcher turns delivery orders into deliveries and puts them in front of
// riders. Whoever accepts first gets the job; there is no scoring.
type Dispatcher struct {
	ledger    Ledger
	orders    Orders
	rate      decimal.Decimal
	autoOffer bool
}

func New(ledger Ledger, orders Orders, commissionRate decimal.Decimal, autoOffer bool) *Dispatcher {
	return &Dispatcher{ledger: ledger, orders: orders, rate: commissionRate, autoOffer: autoOffer}
}

// CreateFromOrder returns the order's delivery, creating it first if needed.
func (d *Dispatcher) CreateFromOrder(ctx context.Context, o *order.Order) (*delivery.Delivery, error) {
	if o.DeliveryType != order.DeliveryTypeDelivery {
		return nil, fmt.Errorf("%w: %s", ErrNotDeliveryOrder, o.ID)
	}
	if existing, err := d.ledger.GetByOrder(ctx, o.ID); err == nil {
		return existing, nil
	} else if !errors.Is(err, delivery.ErrNotFound) {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, fmt.Errorf("%w: order %s is %s", delivery.ErrInvalidState, o.ID, o.Status)
	}

	dl, err := d.ledger.Create(ctx, delivery.NewDelivery{
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		PickupLocation:  o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryFee:     o.DeliveryFee,
		CommissionRate:  d.rate,
	}, delivery.SystemActor)
	if errors.Is(err, delivery.ErrDuplicateOrder) {
		// Lost a race with another creator.
		return d.ledger.GetByOrder(ctx, o.ID)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[dispatch] delivery %s created for order %s", dl.ID, o.ID)

	if d.autoOffer {
		offered, err := d.ledger.Offer(ctx, dl.ID, delivery.SystemActor)
		if err != nil {
			// Left pending; the sweep offers it later.
			log.Printf("[dispatch] offer %s: %v", dl.ID, err)
			return dl, nil
		}
		return offered, nil
	}
	return dl, nil
}

func (d *Dispatcher) CreateForOrderID(ctx context.Context, orderID string) (*delivery.Delivery, error) {
	o, err := d.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return d.CreateFromOrder(ctx, o)
}

func (d *Dispatcher) Offer(ctx context.Context, id string, by delivery.Actor) (*delivery.Delivery, error) {
	return d.ledger.Offer(ctx, id, by)
}

func (d *Dispatcher) Accept(ctx context.Context, id, riderID string) (*delivery.Delivery, error) {
	dl, err := d.ledger.Accept(ctx, id, riderID)
	if err != nil {
		return nil, err
	}
	log.Printf("[dispatch] delivery %s accepted by rider %s", id, riderID)
	return dl, nil
}

func (d *Dispatcher) AssignManually(ctx context.Context, id, riderID string, admin delivery.Actor) (*delivery.Delivery, error) {
	dl, err := d.ledger.AdminAssign(ctx, id, riderID, admin)
	if err != nil {
		return nil, err
	}
	log.Printf("[dispatch] delivery %s assigned to rider %s by %s", id, riderID, admin.ID)
	return dl, nil
}

// OpenOffers lists deliveries any active rider may accept.
func (d *Dispatcher) OpenOffers(ctx context.Context) ([]delivery.View, error) {
	return d.ledger.List(ctx, delivery.Filter{Status: delivery.StatusOffered})
}

// SweepResult counts what one sweep did.
type SweepResult struct {
	Created int
	Offered int
}

// Sweep creates deliveries for delivery orders that never got one and offers
// every delivery still pending. It never cancels or reassigns.
func (d *Dispatcher) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult

	orders, err := d.orders.ListUndispatched(ctx, 100)
	if err != nil {
		return res, fmt.Errorf("list undispatched orders: %w", err)
	}
	for i := range orders {
		dl, err := d.CreateFromOrder(ctx, &orders[i])
		if err != nil {
			log.Printf("[dispatch] sweep create for order %s: %v", orders[i].ID, err)
			continue
		}
		res.Created++
		if dl.Status == delivery.StatusOffered {
			res.Offered++
		}
	}

	if !d.autoOffer {
		return res, nil
	}
	pending, err := d.ledger.List(ctx, delivery.Filter{Status: delivery.StatusPending, Limit: 500})
	if err != nil {
		return res, fmt.Errorf("list pending deliveries: %w", err)
	}
	for _, v := range pending {
		if _, err := d.ledger.Offer(ctx, v.ID, delivery.SystemActor); err != nil {
			// Someone else moved it first.
			if errors.Is(err, delivery.ErrInvalidState) {
				continue
			}
			log.Printf("[dispatch] sweep offer %s: %v", v.ID, err)
			continue
		}
		res.Offered++
	}
	return res, nil
}
