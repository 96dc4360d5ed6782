//go:build unit

package customer_test

import (
	"testing"
	"time"

	"reservation-management/internal/domain/customer"
	"reservation-management/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.CustomerBuilder)
	errIs  error
}

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().BuildDomain(now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "John Miller", actual.Name())
		assert.Equal(t, "AB123456", actual.NationalID())
		assert.Equal(t, "john.miller@example.com", actual.Email())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.CustomerBuilder) { b.Name = "" },
				errIs:  customer.ErrEmptyName,
			},
			{
				name:   "whitespace-only name",
				mutate: func(b *builder.CustomerBuilder) { b.Name = "   " },
				errIs:  customer.ErrEmptyName,
			},
		})
	})

	t.Run("national ID validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty national ID",
				mutate: func(b *builder.CustomerBuilder) { b.NationalID = "" },
				errIs:  customer.ErrEmptyNationalID,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty email",
				mutate: func(b *builder.CustomerBuilder) { b.Email = "" },
				errIs:  customer.ErrInvalidEmail,
			},
			{
				name:   "email without at sign",
				mutate: func(b *builder.CustomerBuilder) { b.Email = "not-an-email" },
				errIs:  customer.ErrInvalidEmail,
			},
		})
	})

	t.Run("age validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing birth date",
				mutate: func(b *builder.CustomerBuilder) { b.DateOfBirth = time.Time{} },
				errIs:  customer.ErrMissingBirthDate,
			},
			{
				name: "eighteenth birthday today",
				mutate: func(b *builder.CustomerBuilder) {
					b.DateOfBirth = now.AddDate(-18, 0, 0)
				},
			},
			{
				name: "one day short of eighteen",
				mutate: func(b *builder.CustomerBuilder) {
					b.DateOfBirth = now.AddDate(-18, 0, 1)
				},
				errIs: customer.ErrUnderage,
			},
		})
	})
}

func TestCustomerAgeAt(t *testing.T) {
	c := customer.ReconstructCustomer(uuid.New(), "Jane", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), "CD789", "jane@example.com")

	assert.Equal(t, 25, c.AgeAt(time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 26, c.AgeAt(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCustomerBuilder().With(tc.mutate)
			actual, err := b.BuildDomain(now)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
