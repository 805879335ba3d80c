// Package memory keeps orders, riders and deliveries in process. One mutex
// guards all three so a delivery mutation and its side effects land together,
// the same unit the Postgres repositories get from a transaction.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

type Store struct {
	mu         sync.Mutex
	orders     map[string]order.Order
	riders     map[string]rider.Rider
	deliveries map[string]delivery.Delivery
	byOrder    map[string]string
	events     map[string][]delivery.Event
	lastEvent  int64
}

func New() *Store {
	return &Store{
		orders:     map[string]order.Order{},
		riders:     map[string]rider.Rider{},
		deliveries: map[string]delivery.Delivery{},
		byOrder:    map[string]string{},
		events:     map[string][]delivery.Event{},
	}
}

func (s *Store) Orders() *Orders         { return &Orders{s} }
func (s *Store) Riders() *Riders         { return &Riders{s} }
func (s *Store) Deliveries() *Deliveries { return &Deliveries{s} }

// ---------- orders ----------

type Orders struct{ s *Store }

var _ order.Repository = (*Orders)(nil)

func cloneOrder(o order.Order) order.Order {
	o.Items = append([]order.Item(nil), o.Items...)
	return o
}

func (r *Orders) Create(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; ok {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	r.s.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *Orders) GetByID(_ context.Context, id string) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *Orders) ListByCustomer(_ context.Context, customerID string, limit, offset int) ([]order.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	r.s.mu.Lock()
	var out []order.Order
	for _, o := range r.s.orders {
		if o.CustomerID == customerID {
			o.Items = nil
			out = append(out, o)
		}
	}
	r.s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Orders) SetStatusFrom(_ context.Context, id string, from, to order.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return order.ErrNotFound
	}
	if o.Status != from {
		return fmt.Errorf("%w: order %s is no longer %s", order.ErrInvalidTransition, id, from)
	}
	o.Status, o.UpdatedAt = to, time.Now().UTC()
	r.s.orders[id] = o
	return nil
}

func (r *Orders) ListUndispatched(_ context.Context, limit int) ([]order.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	r.s.mu.Lock()
	var out []order.Order
	for _, o := range r.s.orders {
		if o.DeliveryType != order.DeliveryTypeDelivery || o.Status.Terminal() {
			continue
		}
		if _, ok := r.s.byOrder[o.ID]; ok {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	r.s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------- riders ----------

type Riders struct{ s *Store }

var _ rider.Repository = (*Riders)(nil)

func (r *Riders) Create(_ context.Context, rd *rider.Rider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.riders {
		if x.AccountID == rd.AccountID {
			return rider.ErrAlreadyRegistered
		}
		if x.RegistrationNumber == rd.RegistrationNumber {
			return rider.ErrDuplicateNumber
		}
	}
	r.s.riders[rd.ID] = *rd
	return nil
}

func (r *Riders) GetByID(_ context.Context, id string) (*rider.Rider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rd, ok := r.s.riders[id]
	if !ok {
		return nil, rider.ErrNotFound
	}
	return &rd, nil
}

func (r *Riders) GetByAccount(_ context.Context, accountID string) (*rider.Rider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rd := range r.s.riders {
		if rd.AccountID == accountID {
			return &rd, nil
		}
	}
	return nil, rider.ErrNotFound
}

func (r *Riders) List(_ context.Context, status rider.Status) ([]rider.Rider, error) {
	r.s.mu.Lock()
	var out []rider.Rider
	for _, rd := range r.s.riders {
		if status == "" || rd.Status == status {
			out = append(out, rd)
		}
	}
	r.s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Riders) SetStatus(_ context.Context, id string, from []rider.Status, to rider.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rd, ok := r.s.riders[id]
	if !ok {
		return rider.ErrNotFound
	}
	for _, f := range from {
		if rd.Status == f {
			rd.Status, rd.UpdatedAt = to, time.Now().UTC()
			r.s.riders[id] = rd
			return nil
		}
	}
	return fmt.Errorf("%w: rider is %s", rider.ErrInvalidTransition, rd.Status)
}

func (r *Riders) ActiveTelegramChats(context.Context) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []int64
	for _, rd := range r.s.riders {
		if rd.Status == rider.StatusActive && rd.TelegramChatID != nil {
			out = append(out, *rd.TelegramChatID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// ---------- deliveries ----------

type Deliveries struct{ s *Store }

var _ delivery.Repository = (*Deliveries)(nil)

func (r *Deliveries) Create(_ context.Context, d *delivery.Delivery, ev delivery.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.byOrder[d.OrderID]; ok {
		return delivery.ErrDuplicateOrder
	}
	r.s.deliveries[d.ID] = *d
	r.s.byOrder[d.OrderID] = d.ID
	ev.DeliveryID, ev.ToStatus = d.ID, d.Status
	r.s.appendEvent(ev, d.CreatedAt)
	return nil
}

func (r *Deliveries) GetByID(_ context.Context, id string) (*delivery.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.deliveries[id]
	if !ok {
		return nil, delivery.ErrNotFound
	}
	return &d, nil
}

func (r *Deliveries) GetByOrderID(_ context.Context, orderID string) (*delivery.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.byOrder[orderID]
	if !ok {
		return nil, delivery.ErrNotFound
	}
	d := r.s.deliveries[id]
	return &d, nil
}

func (r *Deliveries) List(_ context.Context, f delivery.Filter) ([]delivery.View, error) {
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	r.s.mu.Lock()
	var out []delivery.View
	for _, d := range r.s.deliveries {
		if !matches(d, f) {
			continue
		}
		v := delivery.View{Delivery: d}
		if d.RiderID != nil {
			if rd, ok := r.s.riders[*d.RiderID]; ok {
				v.RiderName, v.RiderPhone, v.RiderRegistrationNumber = rd.Name, rd.Phone, rd.RegistrationNumber
			}
		}
		if o, ok := r.s.orders[d.OrderID]; ok {
			v.OrderTotal, v.PaymentMethod = o.TotalAmount, o.PaymentMethod
		}
		out = append(out, v)
	}
	r.s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func matches(d delivery.Delivery, f delivery.Filter) bool {
	switch {
	case f.RiderID != "" && (d.RiderID == nil || *d.RiderID != f.RiderID):
		return false
	case f.CustomerID != "" && d.CustomerID != f.CustomerID:
		return false
	case f.OrderID != "" && d.OrderID != f.OrderID:
		return false
	case f.Status != "" && d.Status != f.Status:
		return false
	}
	if f.DeliveredFrom != nil && (d.DeliveredAt == nil || d.DeliveredAt.Before(*f.DeliveredFrom)) {
		return false
	}
	if f.DeliveredTo != nil && (d.DeliveredAt == nil || !d.DeliveredAt.Before(*f.DeliveredTo)) {
		return false
	}
	return true
}

func (r *Deliveries) Events(_ context.Context, deliveryID string) ([]delivery.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]delivery.Event(nil), r.s.events[deliveryID]...), nil
}

// Mutate checks every effect before writing any of them.
func (r *Deliveries) Mutate(_ context.Context, id string, fn delivery.Mutation) (*delivery.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.deliveries[id]
	if !ok {
		return nil, delivery.ErrNotFound
	}
	d := cur
	eff, err := fn(&d)
	if err != nil {
		return nil, err
	}

	var o order.Order
	if eff.OrderStatus != "" {
		if o, ok = r.s.orders[d.OrderID]; !ok {
			return nil, fmt.Errorf("mirror order %s: %w", d.OrderID, order.ErrNotFound)
		}
	}
	var rd rider.Rider
	if eff.Credit != nil {
		if rd, ok = r.s.riders[eff.Credit.RiderID]; !ok {
			return nil, fmt.Errorf("credit rider %s: %w", eff.Credit.RiderID, delivery.ErrRiderNotFound)
		}
	}

	now := time.Now().UTC()
	d.UpdatedAt = now
	r.s.deliveries[id] = d
	if eff.OrderStatus != "" {
		o.Status, o.UpdatedAt = eff.OrderStatus, now
		r.s.orders[o.ID] = o
	}
	if eff.Credit != nil {
		rd.TotalDeliveries++
		rd.TotalEarnings = rd.TotalEarnings.Add(eff.Credit.Amount)
		rd.CurrentBalance = rd.CurrentBalance.Add(eff.Credit.Amount)
		rd.UpdatedAt = now
		r.s.riders[rd.ID] = rd
	}
	ev := eff.Event
	ev.DeliveryID, ev.FromStatus, ev.ToStatus = d.ID, cur.Status, d.Status
	r.s.appendEvent(ev, now)
	return &d, nil
}

// appendEvent requires s.mu.
func (s *Store) appendEvent(ev delivery.Event, at time.Time) {
	s.lastEvent++
	ev.ID, ev.CreatedAt = s.lastEvent, at
	s.events[ev.DeliveryID] = append(s.events[ev.DeliveryID], ev)
}
