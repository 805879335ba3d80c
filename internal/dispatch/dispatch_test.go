package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
	"github.com/MikeMC777/ordenes-delivery/internal/store/memory"
)

var rate = decimal.RequireFromString("0.20")

type env struct {
	mem    *memory.Store
	ledger *delivery.Service
	disp   *dispatch.Dispatcher
}

func newEnv(autoOffer bool) *env {
	mem := memory.New()
	ledger := delivery.NewService(mem.Deliveries(), rider.NewService(mem.Riders(), nil), nil)
	orders := order.NewService(mem.Orders(), nil)
	return &env{mem: mem, ledger: ledger, disp: dispatch.New(ledger, orders, rate, autoOffer)}
}

func (e *env) seedOrder(t *testing.T, typ order.DeliveryType, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o := &order.Order{
		ID:              uuid.NewString(),
		CustomerID:      "cust-1",
		LocationID:      "centro",
		DeliveryType:    typ,
		DeliveryAddress: "Calle 10 #43-12",
		PickupAddress:   "Carrera 50 #10-20",
		PaymentMethod:   "cash",
		DeliveryFee:     decimal.RequireFromString("10.00"),
		TotalAmount:     decimal.RequireFromString("30.00"),
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if typ == order.DeliveryTypePickup {
		o.DeliveryAddress, o.DeliveryFee = "", decimal.Zero
	}
	if err := e.mem.Orders().Create(context.Background(), o); err != nil {
		t.Fatal(err)
	}
	return o
}

func TestCreateFromOrder_Idempotent(t *testing.T) {
	t.Parallel()
	e := newEnv(true)
	ctx := context.Background()
	o := e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusPending)

	first, err := e.disp.CreateFromOrder(ctx, o)
	if err != nil {
		t.Fatalf("CreateFromOrder: %v", err)
	}
	if first.Status != delivery.StatusOffered {
		t.Fatalf("auto offer: status=%s", first.Status)
	}
	if !first.CommissionAmount.Equal(decimal.RequireFromString("2.00")) || !first.RiderEarning.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("split=%s/%s", first.CommissionAmount, first.RiderEarning)
	}

	again, err := e.disp.CreateForOrderID(ctx, o.ID)
	if err != nil || again.ID != first.ID {
		t.Fatalf("second create: %v id=%v", err, again)
	}
}

func TestCreateFromOrder_Rejects(t *testing.T) {
	t.Parallel()
	e := newEnv(false)
	ctx := context.Background()

	pick := e.seedOrder(t, order.DeliveryTypePickup, order.StatusReady)
	if _, err := e.disp.CreateFromOrder(ctx, pick); !errors.Is(err, dispatch.ErrNotDeliveryOrder) {
		t.Fatalf("pickup order: err=%v", err)
	}
	done := e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusCancelled)
	if _, err := e.disp.CreateFromOrder(ctx, done); !errors.Is(err, delivery.ErrInvalidState) {
		t.Fatalf("cancelled order: err=%v", err)
	}
	if _, err := e.disp.CreateForOrderID(ctx, "missing"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("missing order: err=%v", err)
	}

	o := e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusPreparing)
	d, err := e.disp.CreateFromOrder(ctx, o)
	if err != nil || d.Status != delivery.StatusPending {
		t.Fatalf("without auto offer: %v %v", err, d)
	}
}

func TestSweep(t *testing.T) {
	t.Parallel()
	e := newEnv(true)
	ctx := context.Background()

	a := e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusPending)
	e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusReady)
	e.seedOrder(t, order.DeliveryTypePickup, order.StatusPending)
	e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusDelivered)

	// One delivery left pending, as if its offer had failed.
	stuck, err := e.ledger.Create(ctx, delivery.NewDelivery{
		OrderID: a.ID, CustomerID: a.CustomerID, DeliveryAddress: a.DeliveryAddress,
		DeliveryFee: a.DeliveryFee, CommissionRate: rate,
	}, delivery.SystemActor)
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.disp.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if res.Created != 1 || res.Offered != 2 {
		t.Fatalf("sweep=%+v, want created=1 offered=2", res)
	}
	got, _ := e.ledger.Get(ctx, stuck.ID)
	if got.Status != delivery.StatusOffered {
		t.Fatalf("stuck delivery status=%s", got.Status)
	}

	res, err = e.disp.Sweep(ctx)
	if err != nil || res.Created != 0 || res.Offered != 0 {
		t.Fatalf("second sweep=%+v err=%v", res, err)
	}

	offers, err := e.disp.OpenOffers(ctx)
	if err != nil || len(offers) != 2 {
		t.Fatalf("OpenOffers=%d err=%v", len(offers), err)
	}
}

func TestSweep_WithoutAutoOfferOnlyCreates(t *testing.T) {
	t.Parallel()
	e := newEnv(false)
	e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusReady)

	res, err := e.disp.Sweep(context.Background())
	if err != nil || res.Created != 1 || res.Offered != 0 {
		t.Fatalf("sweep=%+v err=%v", res, err)
	}
	offers, _ := e.disp.OpenOffers(context.Background())
	if len(offers) != 0 {
		t.Fatalf("offers=%d", len(offers))
	}
}

func TestAcceptAndAssignManually(t *testing.T) {
	t.Parallel()
	e := newEnv(true)
	ctx := context.Background()
	now := time.Now().UTC()
	for _, id := range []string{"r1", "r2"} {
		if err := e.mem.Riders().Create(ctx, &rider.Rider{
			ID: id, AccountID: "acct-" + id, RegistrationNumber: "RD-" + id, Status: rider.StatusActive, CreatedAt: now,
		}); err != nil {
			t.Fatal(err)
		}
	}

	d1, _ := e.disp.CreateFromOrder(ctx, e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusReady))
	if _, err := e.disp.Accept(ctx, d1.ID, "r1"); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if _, err := e.disp.Accept(ctx, d1.ID, "r2"); !errors.Is(err, delivery.ErrAlreadyAssigned) {
		t.Fatalf("second accept: err=%v", err)
	}

	admin := delivery.Actor{ID: "admin-1", Role: identity.RoleAdmin}
	d2, _ := e.disp.CreateFromOrder(ctx, e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusReady))
	got, err := e.disp.AssignManually(ctx, d2.ID, "r2", admin)
	if err != nil || got.RiderID == nil || *got.RiderID != "r2" {
		t.Fatalf("AssignManually: %v %+v", err, got)
	}
	// Reassignment while still assigned is an admin privilege.
	if got, err = e.disp.AssignManually(ctx, d2.ID, "r1", admin); err != nil || *got.RiderID != "r1" {
		t.Fatalf("reassign: %v", err)
	}
}

func TestStartSweeper(t *testing.T) {
	t.Parallel()
	e := newEnv(true)
	o := e.seedOrder(t, order.DeliveryTypeDelivery, order.StatusReady)

	s, err := dispatch.StartSweeper(e.disp, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("StartSweeper: %v", err)
	}
	defer func() { _ = s.Shutdown() }()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if d, err := e.ledger.GetByOrder(context.Background(), o.ID); err == nil && d.Status == delivery.StatusOffered {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("sweeper never dispatched the order")
}
