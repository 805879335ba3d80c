package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/store/memory"
)

//
// ---------- FAKE CATALOG ----------
//

func fakeCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	items := map[string]order.MenuItemDTO{
		"burger": {ID: "burger", Name: "Burger", Price: decimal.RequireFromString("12.50"), Available: true},
		"fries":  {ID: "fries", Name: "Fries", Price: decimal.RequireFromString("4.00"), Available: true},
		"soup":   {ID: "soup", Name: "Soup of the day", Price: decimal.RequireFromString("6.00"), Available: false},
	}
	locations := map[string]order.LocationDTO{
		"centro": {ID: "centro", Name: "Centro", Address: "Carrera 50 #10-20", DeliveryFee: decimal.RequireFromString("3.50"), Delivers: true},
		"kiosk":  {ID: "kiosk", Name: "Kiosk", Address: "Parque 1", DeliveryFee: decimal.Zero, Delivers: false},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 2 {
			http.NotFound(w, r)
			return
		}
		var (
			v  any
			ok bool
		)
		switch parts[0] {
		case "menu-items":
			v, ok = items[parts[1]]
		case "locations":
			v, ok = locations[parts[1]]
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newService(t *testing.T) *order.Service {
	t.Helper()
	return order.NewService(memory.New().Orders(), order.NewExt(fakeCatalog(t).URL))
}

func TestCheckout_PricesFromCatalog(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	o, err := svc.Checkout(context.Background(), "cust-1", order.CheckoutRequest{
		LocationID:      "centro",
		DeliveryType:    order.DeliveryTypeDelivery,
		DeliveryAddress: "  Calle 10 #43-12 ",
		PaymentMethod:   "cash",
		Items:           []order.CheckoutItem{{MenuItemID: "burger", Quantity: 2}, {MenuItemID: "fries", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if o.Status != order.StatusPending || o.DeliveryAddress != "Calle 10 #43-12" || o.PickupAddress != "Carrera 50 #10-20" {
		t.Fatalf("order=%+v", o)
	}
	if !o.DeliveryFee.Equal(decimal.RequireFromString("3.50")) {
		t.Errorf("fee=%s", o.DeliveryFee)
	}
	// 2*12.50 + 4.00 + 3.50
	if !o.TotalAmount.Equal(decimal.RequireFromString("32.50")) {
		t.Errorf("total=%s, want 32.50", o.TotalAmount)
	}

	got, err := svc.Get(context.Background(), o.ID)
	if err != nil || len(got.Items) != 2 {
		t.Fatalf("Get: %v items=%d", err, len(got.Items))
	}
	list, _ := svc.ListByCustomer(context.Background(), "cust-1", 10, 0)
	if len(list) != 1 {
		t.Fatalf("ListByCustomer=%d", len(list))
	}
}

func TestCheckout_PickupHasNoFee(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	o, err := svc.Checkout(context.Background(), "cust-1", order.CheckoutRequest{
		LocationID:    "kiosk",
		DeliveryType:  order.DeliveryTypePickup,
		PaymentMethod: "card",
		Items:         []order.CheckoutItem{{MenuItemID: "fries", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if !o.DeliveryFee.IsZero() || !o.TotalAmount.Equal(decimal.RequireFromString("12")) || o.DeliveryAddress != "" {
		t.Fatalf("pickup order=%+v", o)
	}
}

func TestCheckout_Rejects(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	base := func() order.CheckoutRequest {
		return order.CheckoutRequest{
			LocationID:      "centro",
			DeliveryType:    order.DeliveryTypeDelivery,
			DeliveryAddress: "Calle 1",
			PaymentMethod:   "cash",
			Items:           []order.CheckoutItem{{MenuItemID: "burger", Quantity: 1}},
		}
	}

	tests := []struct {
		name   string
		mutate func(r *order.CheckoutRequest)
	}{
		{"no items", func(r *order.CheckoutRequest) { r.Items = nil }},
		{"zero quantity", func(r *order.CheckoutRequest) { r.Items[0].Quantity = 0 }},
		{"blank address", func(r *order.CheckoutRequest) { r.DeliveryAddress = "   " }},
		{"bad delivery type", func(r *order.CheckoutRequest) { r.DeliveryType = "drone" }},
		{"unknown item", func(r *order.CheckoutRequest) { r.Items[0].MenuItemID = "lobster" }},
		{"unavailable item", func(r *order.CheckoutRequest) { r.Items[0].MenuItemID = "soup" }},
		{"unknown location", func(r *order.CheckoutRequest) { r.LocationID = "moon" }},
		{"location does not deliver", func(r *order.CheckoutRequest) { r.LocationID = "kiosk" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(&req)
			if _, err := svc.Checkout(context.Background(), "cust-1", req); !errors.Is(err, order.ErrInvalidOrder) {
				t.Fatalf("err=%v, want ErrInvalidOrder", err)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	deliv, err := svc.Checkout(ctx, "cust-1", order.CheckoutRequest{
		LocationID: "centro", DeliveryType: order.DeliveryTypeDelivery, DeliveryAddress: "Calle 1",
		PaymentMethod: "cash", Items: []order.CheckoutItem{{MenuItemID: "burger", Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateStatus(ctx, deliv.ID, order.StatusPreparing); err != nil {
		t.Fatalf("pending->preparing: %v", err)
	}
	o, err := svc.UpdateStatus(ctx, deliv.ID, order.StatusReady)
	if err != nil || o.Status != order.StatusReady {
		t.Fatalf("preparing->ready: %v", err)
	}
	// Delivery orders are finished by their delivery, not by hand.
	if _, err := svc.UpdateStatus(ctx, deliv.ID, order.StatusDelivered); !errors.Is(err, order.ErrInvalidTransition) {
		t.Fatalf("ready->delivered on delivery order: err=%v", err)
	}
	if _, err := svc.UpdateStatus(ctx, deliv.ID, "lost"); !errors.Is(err, order.ErrInvalidStatus) {
		t.Fatalf("unknown status: err=%v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "nope", order.StatusReady); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("unknown order: err=%v", err)
	}

	pick, err := svc.Checkout(ctx, "cust-1", order.CheckoutRequest{
		LocationID: "kiosk", DeliveryType: order.DeliveryTypePickup,
		PaymentMethod: "cash", Items: []order.CheckoutItem{{MenuItemID: "fries", Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, to := range []order.Status{order.StatusPreparing, order.StatusReady, order.StatusDelivered} {
		if _, err := svc.UpdateStatus(ctx, pick.ID, to); err != nil {
			t.Fatalf("pickup order to %s: %v", to, err)
		}
	}
	if _, err := svc.UpdateStatus(ctx, pick.ID, order.StatusCancelled); !errors.Is(err, order.ErrInvalidTransition) {
		t.Fatalf("cancel after delivered: err=%v", err)
	}
}

func TestCanMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ      order.DeliveryType
		from, to order.Status
		ok       bool
	}{
		{order.DeliveryTypeDelivery, order.StatusPending, order.StatusPreparing, true},
		{order.DeliveryTypeDelivery, order.StatusPreparing, order.StatusReady, true},
		{order.DeliveryTypeDelivery, order.StatusReady, order.StatusInTransit, false},
		{order.DeliveryTypeDelivery, order.StatusPending, order.StatusCancelled, false},
		{order.DeliveryTypePickup, order.StatusReady, order.StatusDelivered, true},
		{order.DeliveryTypePickup, order.StatusPending, order.StatusCancelled, true},
		{order.DeliveryTypePickup, order.StatusDelivered, order.StatusCancelled, false},
	}
	for _, tc := range tests {
		if got := order.CanMove(tc.typ, tc.from, tc.to); got != tc.ok {
			t.Errorf("CanMove(%s, %s, %s)=%v, want %v", tc.typ, tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestExt_CatalogErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	ext := order.NewExt(srv.URL)
	_, err := ext.FetchMenuItem(context.Background(), "burger")
	if err == nil || errors.Is(err, order.ErrUnknownItem) {
		t.Fatalf("err=%v, want upstream failure", err)
	}

	svc := order.NewService(memory.New().Orders(), ext)
	_, err = svc.Checkout(context.Background(), "cust-1", order.CheckoutRequest{
		LocationID: "centro", DeliveryType: order.DeliveryTypePickup, PaymentMethod: "cash",
		Items: []order.CheckoutItem{{MenuItemID: "burger", Quantity: 1}},
	})
	if err == nil || errors.Is(err, order.ErrInvalidOrder) {
		t.Fatalf("catalog outage reported as bad input: %v", err)
	}
}
