package delivery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/events"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

// RiderLookup is the part of the rider registry the ledger reads.
type RiderLookup interface {
	GetByID(ctx context.Context, id string) (*rider.Rider, error)
	IsActive(ctx context.Context, id string) (bool, error)
}

// Service is the delivery ledger: the only writer of delivery state and of
// rider earnings.
type Service struct {
	repo   Repository
	riders RiderLookup
	pub    events.Publisher
	now    func() time.Time
}

func NewService(repo Repository, riders RiderLookup, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{repo: repo, riders: riders, pub: pub, now: func() time.Time { return time.Now().UTC() }}
}

type NewDelivery struct {
	OrderID         string
	CustomerID      string
	PickupLocation  string
	DeliveryAddress string
	DeliveryFee     decimal.Decimal
	CommissionRate  decimal.Decimal
}

func (s *Service) Create(ctx context.Context, in NewDelivery, by Actor) (*Delivery, error) {
	if in.OrderID == "" || in.CustomerID == "" || strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, fmt.Errorf("%w: order, customer and delivery address are required", ErrInvalidInput)
	}
	commission, earning, err := Split(in.DeliveryFee, in.CommissionRate)
	if err != nil {
		return nil, err
	}
	vcode, err := NewCode()
	if err != nil {
		return nil, err
	}
	ccode, err := NewCode()
	if err != nil {
		return nil, err
	}
	now := s.now()
	d := &Delivery{
		ID:               uuid.NewString(),
		OrderID:          in.OrderID,
		CustomerID:       in.CustomerID,
		PickupLocation:   in.PickupLocation,
		DeliveryAddress:  strings.TrimSpace(in.DeliveryAddress),
		DeliveryFee:      in.DeliveryFee,
		CommissionRate:   in.CommissionRate,
		CommissionAmount: commission,
		RiderEarning:     earning,
		Status:           ActionCreate.Target(),
		VerificationCode: vcode,
		ConfirmationCode: ccode,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	ev := Event{Action: ActionCreate, ActorID: by.ID, ActorRole: by.Role}
	if err := s.repo.Create(ctx, d, ev); err != nil {
		return nil, err
	}
	s.publish(ctx, d, ActionCreate)
	return d, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Delivery, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByOrder(ctx context.Context, orderID string) (*Delivery, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

func (s *Service) List(ctx context.Context, f Filter) ([]View, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Events(ctx context.Context, id string) ([]Event, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Events(ctx, id)
}

// Offer makes a pending delivery visible to every active rider.
func (s *Service) Offer(ctx context.Context, id string, by Actor) (*Delivery, error) {
	return s.apply(ctx, id, ActionOffer, func(d *Delivery) (Effects, error) {
		if err := Check(ActionOffer, d.Status); err != nil {
			return Effects{}, err
		}
		d.Status = ActionOffer.Target()
		return Effects{Event: eventBy(ActionOffer, by, "")}, nil
	})
}

// Accept hands an offered delivery to the first active rider who asks. Any
// later caller sees ErrAlreadyAssigned.
func (s *Service) Accept(ctx context.Context, id, riderID string) (*Delivery, error) {
	active, err := s.riders.IsActive(ctx, riderID)
	if err != nil {
		return nil, riderErr(riderID, err)
	}
	if !active {
		return nil, fmt.Errorf("%w: %s", ErrRiderNotActive, riderID)
	}
	return s.apply(ctx, id, ActionAccept, func(d *Delivery) (Effects, error) {
		if d.Status == StatusAssigned || d.Status == StatusInTransit {
			return Effects{}, ErrAlreadyAssigned
		}
		if err := Check(ActionAccept, d.Status); err != nil {
			return Effects{}, err
		}
		now := s.now()
		d.RiderID = &riderID
		d.AssignedAt = &now
		d.Status = ActionAccept.Target()
		return Effects{Event: eventBy(ActionAccept, Actor{ID: riderID, Role: identity.RoleRider}, "")}, nil
	})
}

// ConfirmPickup moves the delivery into transit once the assigned rider
// presents the verification code handed over at the counter.
func (s *Service) ConfirmPickup(ctx context.Context, id, riderID, code string) (*Delivery, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, ActionPickup, func(d *Delivery) (Effects, error) {
		if err := Check(ActionPickup, d.Status); err != nil {
			return Effects{}, err
		}
		if !d.assignedTo(riderID) {
			return Effects{}, ErrNotParticipant
		}
		if err := MatchCode(d.VerificationCode, code); err != nil {
			return Effects{}, err
		}
		now := s.now()
		d.PickedUpAt = &now
		d.Status = ActionPickup.Target()
		return Effects{
			OrderStatus: order.StatusInTransit,
			Event:       eventBy(ActionPickup, Actor{ID: riderID, Role: identity.RoleRider}, ""),
		}, nil
	})
}

// ConfirmDropoff completes the delivery and posts the rider's earning in the
// same transaction. by is the customer or the assigned rider.
func (s *Service) ConfirmDropoff(ctx context.Context, id string, by Actor, code string) (*Delivery, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, ActionDropoff, func(d *Delivery) (Effects, error) {
		// The status check is also what keeps a retry from posting twice.
		if err := Check(ActionDropoff, d.Status); err != nil {
			return Effects{}, err
		}
		if by.ID != d.CustomerID && !d.assignedTo(by.ID) {
			return Effects{}, ErrNotParticipant
		}
		if err := MatchCode(d.ConfirmationCode, code); err != nil {
			return Effects{}, err
		}
		now := s.now()
		d.DeliveredAt = &now
		d.Status = ActionDropoff.Target()
		return Effects{
			OrderStatus: order.StatusDelivered,
			Credit:      &Credit{RiderID: *d.RiderID, Amount: d.RiderEarning},
			Event:       eventBy(ActionDropoff, by, ""),
		}, nil
	})
}

// Cancel is rider abandonment: the rider is released and the delivery is
// offered again with the same codes.
func (s *Service) Cancel(ctx context.Context, id, riderID, reason string) (*Delivery, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	return s.apply(ctx, id, ActionRiderCancel, func(d *Delivery) (Effects, error) {
		if err := Check(ActionRiderCancel, d.Status); err != nil {
			return Effects{}, err
		}
		if !d.assignedTo(riderID) {
			return Effects{}, ErrNotParticipant
		}
		eff := Effects{Event: eventBy(ActionRiderCancel, Actor{ID: riderID, Role: identity.RoleRider}, reason)}
		// Only pickup moves the order; before it the kitchen still owns the status.
		if d.Status == StatusInTransit {
			eff.OrderStatus = order.StatusReady
		}
		now := s.now()
		d.RiderID = nil
		d.AssignedAt = nil
		d.PickedUpAt = nil
		d.CancellationReason = &reason
		d.CancelledAt = &now
		d.Status = ActionRiderCancel.Target()
		return eff, nil
	})
}

// AdminAssign sets the rider directly without checking rider status.
func (s *Service) AdminAssign(ctx context.Context, id, riderID string, admin Actor) (*Delivery, error) {
	if _, err := s.rider(ctx, riderID); err != nil {
		return nil, err
	}
	return s.apply(ctx, id, ActionAdminAssign, func(d *Delivery) (Effects, error) {
		if err := Check(ActionAdminAssign, d.Status); err != nil {
			return Effects{}, err
		}
		now := s.now()
		d.RiderID = &riderID
		d.AssignedAt = &now
		d.Status = ActionAdminAssign.Target()
		return Effects{Event: eventBy(ActionAdminAssign, admin, "rider="+riderID)}, nil
	})
}

func (s *Service) AdminForcePickup(ctx context.Context, id string, admin Actor) (*Delivery, error) {
	return s.apply(ctx, id, ActionAdminForcePickup, func(d *Delivery) (Effects, error) {
		if err := Check(ActionAdminForcePickup, d.Status); err != nil {
			return Effects{}, err
		}
		now := s.now()
		d.PickedUpAt = &now
		d.Status = ActionAdminForcePickup.Target()
		return Effects{OrderStatus: order.StatusInTransit, Event: eventBy(ActionAdminForcePickup, admin, "")}, nil
	})
}

// AdminForceComplete delivers without codes and posts to riderID. A non-nil
// earning overrides the rider's share; the commission takes the remainder.
func (s *Service) AdminForceComplete(ctx context.Context, id, riderID string, earning *decimal.Decimal, admin Actor) (*Delivery, error) {
	if _, err := s.rider(ctx, riderID); err != nil {
		return nil, err
	}
	return s.apply(ctx, id, ActionAdminForceComplete, func(d *Delivery) (Effects, error) {
		if err := Check(ActionAdminForceComplete, d.Status); err != nil {
			return Effects{}, err
		}
		note := "rider=" + riderID
		if earning != nil {
			commission, err := SplitWithEarning(d.DeliveryFee, *earning)
			if err != nil {
				return Effects{}, err
			}
			d.CommissionAmount, d.RiderEarning = commission, *earning
			note += " earning=" + earning.StringFixed(MoneyPlaces)
		}
		now := s.now()
		d.RiderID = &riderID
		if d.PickedUpAt == nil {
			d.PickedUpAt = &now
		}
		d.DeliveredAt = &now
		d.Status = ActionAdminForceComplete.Target()
		return Effects{
			OrderStatus: order.StatusDelivered,
			Credit:      &Credit{RiderID: riderID, Amount: d.RiderEarning},
			Event:       eventBy(ActionAdminForceComplete, admin, note),
		}, nil
	})
}

// AdminCancel ends the delivery and its order for good.
func (s *Service) AdminCancel(ctx context.Context, id, reason string, admin Actor) (*Delivery, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	return s.apply(ctx, id, ActionAdminCancel, func(d *Delivery) (Effects, error) {
		if err := Check(ActionAdminCancel, d.Status); err != nil {
			return Effects{}, err
		}
		now := s.now()
		d.CancellationReason = &reason
		d.CancelledAt = &now
		d.Status = ActionAdminCancel.Target()
		return Effects{OrderStatus: order.StatusCancelled, Event: eventBy(ActionAdminCancel, admin, reason)}, nil
	})
}

// apply runs fn under the repository lock and refuses any status change the
// transition table does not allow.
func (s *Service) apply(ctx context.Context, id string, a Action, fn Mutation) (*Delivery, error) {
	d, err := s.repo.Mutate(ctx, id, func(d *Delivery) (Effects, error) {
		from := d.Status
		eff, err := fn(d)
		if err != nil {
			return Effects{}, err
		}
		if d.Status != from && !CanTransition(from, d.Status) {
			return Effects{}, fmt.Errorf("%w: %s cannot move %s to %s", ErrInvalidState, a, from, d.Status)
		}
		return eff, nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, d, a)
	return d, nil
}

func (s *Service) rider(ctx context.Context, id string) (*rider.Rider, error) {
	rd, err := s.riders.GetByID(ctx, id)
	if err != nil {
		return nil, riderErr(id, err)
	}
	return rd, nil
}

func riderErr(id string, err error) error {
	if errors.Is(err, rider.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrRiderNotFound, id)
	}
	return err
}

// publish runs after commit. The ledger is the source of truth, so a failed
// notification is logged and dropped.
func (s *Service) publish(ctx context.Context, d *Delivery, a Action) {
	e := events.Event{
		Type:       "delivery." + string(a),
		DeliveryID: d.ID,
		OrderID:    d.OrderID,
		CustomerID: d.CustomerID,
		Status:     string(d.Status),
		At:         d.UpdatedAt,
	}
	if d.RiderID != nil {
		e.RiderID = *d.RiderID
	}
	if err := s.pub.Publish(ctx, e); err != nil {
		log.Printf("[events] publish %s for delivery %s: %v", e.Type, d.ID, err)
	}
}

func eventBy(a Action, by Actor, note string) Event {
	return Event{Action: a, ActorID: by.ID, ActorRole: by.Role, Note: note}
}
