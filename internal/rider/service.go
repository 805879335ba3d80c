package rider

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-delivery/internal/identity"
)

var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewRegistrationNumber returns "RD-" followed by six random uppercase
// alphanumerics.
func NewRegistrationNumber() (string, error) {
	var b strings.Builder
	b.WriteString("RD-")
	max := big.NewInt(int64(len(numberAlphabet)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(numberAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// AccountValidator checks registrations against the identity provider.
type AccountValidator interface {
	ValidateAccount(ctx context.Context, id string) (*identity.Account, error)
}

type Service struct {
	repo     Repository
	accounts AccountValidator
}

// NewService builds the registry. With a nil validator accounts are trusted
// as presented in the bearer token.
func NewService(repo Repository, accounts AccountValidator) *Service {
	return &Service{repo: repo, accounts: accounts}
}

// Register creates a pending rider for the calling account.
func (s *Service) Register(ctx context.Context, accountID string, in RegisterInput) (*Rider, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.accounts != nil {
		acc, err := s.accounts.ValidateAccount(ctx, accountID)
		if err != nil {
			if errors.Is(err, identity.ErrAccountNotFound) {
				return nil, ErrAccountInvalid
			}
			return nil, fmt.Errorf("validate account: %w", err)
		}
		if in.Email == "" {
			in.Email = acc.Email
		}
	}
	if _, err := s.repo.GetByAccount(ctx, accountID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	r := &Rider{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		Name:           strings.TrimSpace(in.Name),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          in.Email,
		VehicleType:    in.VehicleType,
		VehicleNumber:  strings.ToUpper(strings.TrimSpace(in.VehicleNumber)),
		TelegramChatID: in.TelegramChatID,
		Status:         StatusPending,
		TotalEarnings:  decimal.Zero,
		CurrentBalance: decimal.Zero,
		Rating:         decimal.NewFromInt(5),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for attempt := 0; attempt < 5; attempt++ {
		num, err := NewRegistrationNumber()
		if err != nil {
			return nil, err
		}
		r.RegistrationNumber = num
		err = s.repo.Create(ctx, r)
		if errors.Is(err, ErrDuplicateNumber) {
			log.Printf("[rider] registration number %s taken, retrying", num)
			continue
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("allocate registration number: %w", ErrDuplicateNumber)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Rider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByAccount(ctx context.Context, accountID string) (*Rider, error) {
	return s.repo.GetByAccount(ctx, accountID)
}

func (s *Service) List(ctx context.Context, status Status) ([]Rider, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.repo.List(ctx, status)
}

func (s *Service) IsActive(ctx context.Context, id string) (bool, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return r.Status == StatusActive, nil
}

func (s *Service) Approve(ctx context.Context, id string) (*Rider, error) {
	return s.move(ctx, id, []Status{StatusPending, StatusSuspended}, StatusActive)
}

func (s *Service) Suspend(ctx context.Context, id string) (*Rider, error) {
	return s.move(ctx, id, []Status{StatusActive}, StatusSuspended)
}

// Delete is a soft delete; the row stays for delivery history.
func (s *Service) Delete(ctx context.Context, id string) (*Rider, error) {
	return s.move(ctx, id, []Status{StatusPending, StatusActive, StatusSuspended}, StatusDeleted)
}

func (s *Service) ActiveTelegramChats(ctx context.Context) ([]int64, error) {
	return s.repo.ActiveTelegramChats(ctx)
}

func (s *Service) move(ctx context.Context, id string, from []Status, to Status) (*Rider, error) {
	if err := s.repo.SetStatus(ctx, id, from, to); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Profile strips the account and ledger fields from r.
func Profile(r *Rider) (PublicProfile, error) {
	var p PublicProfile
	if err := copier.Copy(&p, r); err != nil {
		return PublicProfile{}, err
	}
	return p, nil
}
