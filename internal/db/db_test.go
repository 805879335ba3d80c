package db_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/db"
	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

// Runs against a disposable database: TEST_POSTGRES_DSN=postgres://... go test ./internal/db
func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Second run is a no-op.
	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	return pool
}

func seedRider(t *testing.T, repo *rider.PGRepo, status rider.Status) *rider.Rider {
	t.Helper()
	id := uuid.NewString()
	r := &rider.Rider{
		ID:                 id,
		AccountID:          "acct-" + id,
		RegistrationNumber: "RD-" + id[:6],
		Name:               "Test Rider",
		Phone:              "+573000000000",
		VehicleType:        "bicycle",
		Status:             status,
		TotalEarnings:      decimal.Zero,
		CurrentBalance:     decimal.Zero,
		Rating:             decimal.NewFromInt(5),
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), r); err != nil {
		t.Fatalf("create rider: %v", err)
	}
	return r
}

func TestPostgresLedger(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()

	orders := order.NewPGRepo(pool)
	riders := rider.NewPGRepo(pool)
	svc := delivery.NewService(delivery.NewPGRepo(pool), rider.NewService(riders, nil), nil)

	now := time.Now().UTC()
	o := &order.Order{
		ID:              uuid.NewString(),
		CustomerID:      "cust-" + uuid.NewString()[:8],
		LocationID:      "centro",
		DeliveryType:    order.DeliveryTypeDelivery,
		DeliveryAddress: "Calle 10 #43-12",
		PickupAddress:   "Carrera 50 #10-20",
		PaymentMethod:   "cash",
		DeliveryFee:     decimal.RequireFromString("20.00"),
		TotalAmount:     decimal.RequireFromString("45.00"),
		Status:          order.StatusReady,
		Items: []order.Item{{
			ID: uuid.NewString(), MenuItemID: "burger", Name: "Burger",
			UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Items[0].OrderID = o.ID
	if err := orders.Create(ctx, o); err != nil {
		t.Fatalf("create order: %v", err)
	}

	d, err := svc.Create(ctx, delivery.NewDelivery{
		OrderID: o.ID, CustomerID: o.CustomerID, PickupLocation: o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress, DeliveryFee: o.DeliveryFee,
		CommissionRate: decimal.RequireFromString("0.20"),
	}, delivery.SystemActor)
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	if _, err := svc.Create(ctx, delivery.NewDelivery{
		OrderID: o.ID, CustomerID: o.CustomerID, DeliveryAddress: o.DeliveryAddress,
		DeliveryFee: o.DeliveryFee, CommissionRate: decimal.RequireFromString("0.20"),
	}, delivery.SystemActor); !errors.Is(err, delivery.ErrDuplicateOrder) {
		t.Fatalf("duplicate: err=%v", err)
	}
	if _, err := svc.Offer(ctx, d.ID, delivery.SystemActor); err != nil {
		t.Fatalf("offer: %v", err)
	}

	contenders := make([]*rider.Rider, 8)
	for i := range contenders {
		contenders[i] = seedRider(t, riders, rider.StatusActive)
	}
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins []string
	)
	for _, r := range contenders {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Accept(ctx, d.ID, id)
			if err == nil {
				mu.Lock()
				wins = append(wins, id)
				mu.Unlock()
				return
			}
			if !errors.Is(err, delivery.ErrAlreadyAssigned) && !errors.Is(err, delivery.ErrInvalidState) {
				t.Errorf("accept: %v", err)
			}
		}(r.ID)
	}
	wg.Wait()
	if len(wins) != 1 {
		t.Fatalf("winners=%d", len(wins))
	}
	winner := wins[0]

	if _, err := svc.ConfirmPickup(ctx, d.ID, winner, d.VerificationCode); err != nil {
		t.Fatalf("pickup: %v", err)
	}
	by := delivery.Actor{ID: o.CustomerID, Role: identity.RoleCustomer}
	if _, err := svc.ConfirmDropoff(ctx, d.ID, by, d.ConfirmationCode); err != nil {
		t.Fatalf("dropoff: %v", err)
	}
	if _, err := svc.ConfirmDropoff(ctx, d.ID, by, d.ConfirmationCode); !errors.Is(err, delivery.ErrInvalidState) {
		t.Fatalf("second dropoff: err=%v", err)
	}

	r, err := riders.GetByID(ctx, winner)
	if err != nil {
		t.Fatal(err)
	}
	if r.TotalDeliveries != 1 || !r.TotalEarnings.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("rider ledger: %d %s", r.TotalDeliveries, r.TotalEarnings)
	}
	got, err := orders.GetByID(ctx, o.ID)
	if err != nil || got.Status != order.StatusDelivered || len(got.Items) != 1 {
		t.Fatalf("order: %v %+v", err, got)
	}
	evs, err := svc.Events(ctx, d.ID)
	if err != nil || len(evs) != 5 {
		t.Fatalf("events=%d err=%v", len(evs), err)
	}

	views, err := svc.List(ctx, delivery.Filter{RiderID: winner})
	if err != nil || len(views) != 1 || views[0].RiderName != "Test Rider" {
		t.Fatalf("list: %v %+v", err, views)
	}
}

func TestPostgresRiderUniqueness(t *testing.T) {
	pool := connect(t)
	repo := rider.NewPGRepo(pool)
	r := seedRider(t, repo, rider.StatusPending)

	dup := *r
	dup.ID = uuid.NewString()
	dup.RegistrationNumber = "RD-" + dup.ID[:6]
	if err := repo.Create(context.Background(), &dup); !errors.Is(err, rider.ErrAlreadyRegistered) {
		t.Fatalf("same account: err=%v", err)
	}
	dup.AccountID = "acct-" + dup.ID
	dup.RegistrationNumber = r.RegistrationNumber
	if err := repo.Create(context.Background(), &dup); !errors.Is(err, rider.ErrDuplicateNumber) {
		t.Fatalf("same number: err=%v", err)
	}
}

func TestPostgresMalformedIDs(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	deliveries := delivery.NewPGRepo(pool)
	svc := delivery.NewService(deliveries, rider.NewService(rider.NewPGRepo(pool), nil), nil)

	for _, id := range []string{"", "not-a-uuid", "42"} {
		if _, err := svc.Get(ctx, id); !errors.Is(err, delivery.ErrNotFound) {
			t.Errorf("Get(%q): err=%v", id, err)
		}
		if _, err := svc.Offer(ctx, id, delivery.SystemActor); !errors.Is(err, delivery.ErrNotFound) {
			t.Errorf("Offer(%q): err=%v", id, err)
		}
		if _, err := deliveries.Events(ctx, id); !errors.Is(err, delivery.ErrNotFound) {
			t.Errorf("Events(%q): err=%v", id, err)
		}
		if _, err := order.NewPGRepo(pool).GetByID(ctx, id); !errors.Is(err, order.ErrNotFound) {
			t.Errorf("order GetByID(%q): err=%v", id, err)
		}
		if _, err := rider.NewPGRepo(pool).GetByID(ctx, id); !errors.Is(err, rider.ErrNotFound) {
			t.Errorf("rider GetByID(%q): err=%v", id, err)
		}
	}
	views, err := svc.List(ctx, delivery.Filter{RiderID: "not-a-uuid"})
	if err != nil || len(views) != 0 {
		t.Fatalf("list by malformed rider: %v %d", err, len(views))
	}
}
