package work

import (
	"errors"
	"strings"
	"time"

	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("work name cannot be empty")
	ErrNonPositivePrice = errors.New("work price must be positive")
)

// Work is a priced bookable service offering owned by a user.
type Work struct {
	id          uuid.UUID
	userID      uuid.UUID
	name        string
	description string
	price       money.Money
	createdAt   time.Time
	updatedAt   time.Time
}

func NewWork(userID uuid.UUID, name, description string, price money.Money) (*Work, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.Cents() <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Work{
		id:          uuid.New(),
		userID:      userID,
		name:        name,
		description: description,
		price:       price,
	}, nil
}

func Reconstruct(id, userID uuid.UUID, name, description string, price money.Money, createdAt, updatedAt time.Time) *Work {
	return &Work{
		id:          id,
		userID:      userID,
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update applies a partial change, keeping existing values for nil
// fields. The explicit patch struct replaces untyped update payloads.
type Patch struct {
	Name        *string
	Description *string
	Price       *money.Money
}

func (w *Work) Update(p Patch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
		w.name = name
	}
	if p.Description != nil {
		w.description = *p.Description
	}
	if p.Price != nil {
		if p.Price.Cents() <= 0 {
			return ErrNonPositivePrice
		}
		w.price = *p.Price
	}
	return nil
}

func (w *Work) ID() uuid.UUID       { return w.id }
func (w *Work) UserID() uuid.UUID   { return w.userID }
func (w *Work) Name() string        { return w.name }
func (w *Work) Description() string { return w.description }
func (w *Work) Price() money.Money  { return w.price }
func (w *Work) CreatedAt() time.Time { return w.createdAt }
func (w *Work) UpdatedAt() time.Time { return w.updatedAt }
