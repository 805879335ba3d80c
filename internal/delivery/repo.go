package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/order"
)

// Credit is the ledger posting made when a delivery completes.
type Credit struct {
	RiderID string
	Amount  decimal.Decimal
}

// Effects are the writes that must commit together with a delivery change.
type Effects struct {
	// OrderStatus is mirrored onto the parent order when set.
	OrderStatus order.Status
	Credit      *Credit
	// Event carries Action, ActorID, ActorRole and Note; the repository fills
	// in the delivery id and statuses.
	Event Event
}

// Mutation edits a locked copy of a delivery. Returning an error aborts the
// whole unit with nothing written.
type Mutation func(d *Delivery) (Effects, error)

type Repository interface {
	Create(ctx context.Context, d *Delivery, ev Event) error
	GetByID(ctx context.Context, id string) (*Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*Delivery, error)
	List(ctx context.Context, f Filter) ([]View, error)
	Events(ctx context.Context, deliveryID string) ([]Event, error)
	Mutate(ctx context.Context, id string, fn Mutation) (*Delivery, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const deliveryColumns = `
    d.id::text, d.order_id::text, d.rider_id::text, d.customer_id, d.pickup_location, d.delivery_address,
    d.delivery_fee::text, d.commission_rate::text, d.commission_amount::text, d.rider_earning::text,
    d.status, d.verification_code, d.confirmation_code,
    d.assigned_at, d.picked_up_at, d.delivered_at, d.cancellation_reason, d.cancelled_at,
    d.created_at, d.updated_at`

func scanDelivery(row pgx.Row, extra ...any) (*Delivery, error) {
	var d Delivery
	dest := []any{
		&d.ID, &d.OrderID, &d.RiderID, &d.CustomerID, &d.PickupLocation, &d.DeliveryAddress,
		&d.DeliveryFee, &d.CommissionRate, &d.CommissionAmount, &d.RiderEarning,
		&d.Status, &d.VerificationCode, &d.ConfirmationCode,
		&d.AssignedAt, &d.PickedUpAt, &d.DeliveredAt, &d.CancellationReason, &d.CancelledAt,
		&d.CreatedAt, &d.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PGRepo) Create(ctx context.Context, d *Delivery, ev Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO deliveries (id, order_id, customer_id, pickup_location, delivery_address,
      delivery_fee, commission_rate, commission_amount, rider_earning, status,
      verification_code, confirmation_code, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$13)
  `, d.ID, d.OrderID, d.CustomerID, d.PickupLocation, d.DeliveryAddress,
		d.DeliveryFee, d.CommissionRate, d.CommissionAmount, d.RiderEarning, d.Status,
		d.VerificationCode, d.ConfirmationCode, d.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateOrder
		}
		return err
	}
	ev.DeliveryID, ev.ToStatus = d.ID, d.Status
	if err := insertEvent(ctx, tx, ev, d.CreatedAt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	d, err := scanDelivery(r.db.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries d WHERE d.id = $1`, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (r *PGRepo) GetByOrderID(ctx context.Context, orderID string) (*Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	uid, err := uuid.Parse(orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	d, err := scanDelivery(r.db.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries d WHERE d.order_id = $1`, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (r *PGRepo) List(ctx context.Context, f Filter) ([]View, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	riderID, ok := optionalID(f.RiderID)
	if !ok {
		return nil, nil
	}
	orderID, ok := optionalID(f.OrderID)
	if !ok {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
    SELECT `+deliveryColumns+`,
      COALESCE(r.name, ''), COALESCE(r.phone, ''), COALESCE(r.registration_number, ''),
      o.total_amount::text, o.payment_method
    FROM deliveries d
    JOIN orders o ON o.id = d.order_id
    LEFT JOIN riders r ON r.id = d.rider_id
    WHERE ($1::uuid IS NULL OR d.rider_id = $1)
      AND ($2 = '' OR d.customer_id = $2)
      AND ($3::uuid IS NULL OR d.order_id = $3)
      AND ($4 = '' OR d.status = $4)
      AND ($5::timestamptz IS NULL OR d.delivered_at >= $5)
      AND ($6::timestamptz IS NULL OR d.delivered_at < $6)
    ORDER BY d.created_at DESC
    LIMIT $7
  `, riderID, f.CustomerID, orderID, string(f.Status), f.DeliveredFrom, f.DeliveredTo, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []View
	for rows.Next() {
		var v View
		d, err := scanDelivery(rows, &v.RiderName, &v.RiderPhone, &v.RiderRegistrationNumber, &v.OrderTotal, &v.PaymentMethod)
		if err != nil {
			return nil, err
		}
		v.Delivery = *d
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PGRepo) Events(ctx context.Context, deliveryID string) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	uid, err := uuid.Parse(deliveryID)
	if err != nil {
		return nil, ErrNotFound
	}

	rows, err := r.db.Query(ctx, `
    SELECT id, delivery_id::text, COALESCE(from_status, ''), to_status, action, actor_id, actor_role, note, created_at
    FROM delivery_events WHERE delivery_id = $1
    ORDER BY id
  `, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.DeliveryID, &e.FromStatus, &e.ToStatus, &e.Action, &e.ActorID, &e.ActorRole, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Mutate locks the delivery row, applies fn and commits the delivery update,
// the order mirror, the rider credit and the audit row as one transaction.
func (r *PGRepo) Mutate(ctx context.Context, id string, fn Mutation) (*Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	d, err := scanDelivery(tx.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries d WHERE d.id = $1 FOR UPDATE`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	from := d.Status
	eff, err := fn(d)
	if err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now().UTC()

	// The row lock already serialises writers; the status guard makes the
	// update a compare-and-swap as well.
	tag, err := tx.Exec(ctx, `
    UPDATE deliveries SET
      rider_id = $2::uuid, status = $3, commission_amount = $4, rider_earning = $5,
      assigned_at = $6, picked_up_at = $7, delivered_at = $8,
      cancellation_reason = $9, cancelled_at = $10, updated_at = $11
    WHERE id = $1 AND status = $12
  `, d.ID, d.RiderID, d.Status, d.CommissionAmount, d.RiderEarning,
		d.AssignedAt, d.PickedUpAt, d.DeliveredAt,
		d.CancellationReason, d.CancelledAt, d.UpdatedAt, from)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: delivery %s changed concurrently", ErrInvalidState, d.ID)
	}

	if eff.OrderStatus != "" {
		tag, err := tx.Exec(ctx, `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, d.OrderID, eff.OrderStatus)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("mirror order %s: %w", d.OrderID, order.ErrNotFound)
		}
	}

	if eff.Credit != nil {
		riderID, err := uuid.Parse(eff.Credit.RiderID)
		if err != nil {
			return nil, fmt.Errorf("credit rider %s: %w", eff.Credit.RiderID, ErrRiderNotFound)
		}
		tag, err := tx.Exec(ctx, `
      UPDATE riders SET
        total_deliveries = total_deliveries + 1,
        total_earnings = total_earnings + $2,
        current_balance = current_balance + $2,
        updated_at = NOW()
      WHERE id = $1
    `, riderID, eff.Credit.Amount)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("credit rider %s: %w", eff.Credit.RiderID, ErrRiderNotFound)
		}
	}

	ev := eff.Event
	ev.DeliveryID, ev.FromStatus, ev.ToStatus = d.ID, from, d.Status
	if err := insertEvent(ctx, tx, ev, d.UpdatedAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func insertEvent(ctx context.Context, tx pgx.Tx, ev Event, at time.Time) error {
	var from *string
	if ev.FromStatus != "" {
		s := string(ev.FromStatus)
		from = &s
	}
	_, err := tx.Exec(ctx, `
    INSERT INTO delivery_events (delivery_id, from_status, to_status, action, actor_id, actor_role, note, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, ev.DeliveryID, from, ev.ToStatus, ev.Action, ev.ActorID, ev.ActorRole, ev.Note, at)
	return err
}

// optionalID parses a uuid filter value. An empty value means no filter; a
// malformed one cannot match any row.
func optionalID(s string) (*uuid.UUID, bool) {
	if s == "" {
		return nil, true
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, false
	}
	return &u, true
}
