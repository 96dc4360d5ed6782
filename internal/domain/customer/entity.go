package customer

import (
	"errors"
	"strings"
	"time"

	"reservation-management/internal/pkg/dateutil"

	"github.com/google/uuid"
)

const MinAge = 18

var (
	ErrEmptyName        = errors.New("customer name cannot be empty")
	ErrEmptyNationalID  = errors.New("national ID cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrUnderage         = errors.New("customer must be at least 18 years old")
	ErrMissingBirthDate = errors.New("date of birth is required")
)

type Customer struct {
	id          uuid.UUID
	name        string
	dateOfBirth time.Time
	nationalID  string
	email       string
}

// NewCustomer validates and builds a customer. The age gate is evaluated
// against now, not persisted.
func NewCustomer(name string, dateOfBirth time.Time, nationalID, email string, now time.Time) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return nil, ErrEmptyNationalID
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	if dateOfBirth.IsZero() {
		return nil, ErrMissingBirthDate
	}
	if dateutil.YearsBetween(dateOfBirth, now) < MinAge {
		return nil, ErrUnderage
	}

	return &Customer{
		id:          uuid.New(),
		name:        name,
		dateOfBirth: dateOfBirth,
		nationalID:  nationalID,
		email:       email,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, name string, dateOfBirth time.Time, nationalID, email string) *Customer {
	return &Customer{
		id:          id,
		name:        name,
		dateOfBirth: dateOfBirth,
		nationalID:  nationalID,
		email:       email,
	}
}

func (c *Customer) ID() uuid.UUID          { return c.id }
func (c *Customer) Name() string           { return c.name }
func (c *Customer) DateOfBirth() time.Time { return c.dateOfBirth }
func (c *Customer) NationalID() string     { return c.nationalID }
func (c *Customer) Email() string          { return c.email }

// AgeAt returns the customer's whole-years age at the given instant.
func (c *Customer) AgeAt(now time.Time) int {
	return dateutil.YearsBetween(c.dateOfBirth, now)
}
