package rider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("rider not found")
	ErrAlreadyRegistered = errors.New("account already registered as a rider")
	ErrDuplicateNumber   = errors.New("registration number taken")
	ErrInvalidTransition = errors.New("rider status change not allowed")
	ErrAccountInvalid    = errors.New("account is not valid for rider registration")
	ErrInvalidInput      = errors.New("invalid rider registration")
)

type Repository interface {
	Create(ctx context.Context, r *Rider) error
	GetByID(ctx context.Context, id string) (*Rider, error)
	GetByAccount(ctx context.Context, accountID string) (*Rider, error)
	List(ctx context.Context, status Status) ([]Rider, error)
	// SetStatus moves the rider to `to` only from one of `from`.
	SetStatus(ctx context.Context, id string, from []Status, to Status) error
	ActiveTelegramChats(ctx context.Context) ([]int64, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const riderColumns = `
    id::text, account_id, registration_number, name, phone, email, vehicle_type, vehicle_number,
    telegram_chat_id, status, total_deliveries, total_earnings::text, current_balance::text, rating::text,
    created_at, updated_at`

func scanRider(row pgx.Row) (*Rider, error) {
	var r Rider
	if err := row.Scan(&r.ID, &r.AccountID, &r.RegistrationNumber, &r.Name, &r.Phone, &r.Email, &r.VehicleType, &r.VehicleNumber,
		&r.TelegramChatID, &r.Status, &r.TotalDeliveries, &r.TotalEarnings, &r.CurrentBalance, &r.Rating,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *PGRepo) Create(ctx context.Context, r *Rider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.db.Exec(ctx, `
		INSERT INTO riders (id, account_id, registration_number, name, phone, email, vehicle_type, vehicle_number,
		  telegram_chat_id, status, rating, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12)
	`, r.ID, r.AccountID, r.RegistrationNumber, r.Name, r.Phone, r.Email, r.VehicleType, r.VehicleNumber,
		r.TelegramChatID, r.Status, r.Rating, r.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "riders_registration_number_key" {
			return ErrDuplicateNumber
		}
		return ErrAlreadyRegistered
	}
	return err
}

func (p *PGRepo) GetByID(ctx context.Context, id string) (*Rider, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return p.getOne(ctx, `SELECT `+riderColumns+` FROM riders WHERE id = $1`, uid)
}

func (p *PGRepo) GetByAccount(ctx context.Context, accountID string) (*Rider, error) {
	return p.getOne(ctx, `SELECT `+riderColumns+` FROM riders WHERE account_id = $1`, accountID)
}

func (p *PGRepo) getOne(ctx context.Context, sql string, arg any) (*Rider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	r, err := scanRider(p.db.QueryRow(ctx, sql, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (p *PGRepo) List(ctx context.Context, status Status) ([]Rider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := p.db.Query(ctx, `
		SELECT `+riderColumns+` FROM riders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Rider
	for rows.Next() {
		r, err := scanRider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (p *PGRepo) SetStatus(ctx context.Context, id string, from []Status, to Status) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := p.db.Exec(ctx, `
		UPDATE riders SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = ANY($2)
	`, uid, allowed, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		cur, err := p.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: rider is %s", ErrInvalidTransition, cur.Status)
	}
	return nil
}

func (p *PGRepo) ActiveTelegramChats(ctx context.Context) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := p.db.Query(ctx, `
		SELECT telegram_chat_id FROM riders
		WHERE status = 'active' AND telegram_chat_id IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
