//go:build unit

package room_test

import (
	"testing"

	"reservation-management/internal/domain/room"
	"reservation-management/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 101, actual.Number())
		assert.Equal(t, 24.5, actual.Size())
		assert.False(t, actual.Busy(), "new rooms must start vacant")
	})

	t.Run("number validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero number",
				mutate: func(b *builder.RoomBuilder) { b.Number = 0 },
				errIs:  room.ErrInvalidNumber,
			},
			{
				name:   "negative number",
				mutate: func(b *builder.RoomBuilder) { b.Number = -1 },
				errIs:  room.ErrInvalidNumber,
			},
		})
	})

	t.Run("size validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum size",
				mutate: func(b *builder.RoomBuilder) { b.Size = 9.99 },
				errIs:  room.ErrRoomTooSmall,
			},
			{
				name:   "minimum size exactly",
				mutate: func(b *builder.RoomBuilder) { b.Size = 10.0 },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.RoomBuilder) { b.PricePerMonth = 0 },
				errIs:  room.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.RoomBuilder) { b.PricePerMonth = -100 },
				errIs:  room.ErrInvalidPrice,
			},
		})
	})

	t.Run("busy flag cannot be preset", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Busy = true }).BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.Busy())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(tc.mutate).BuildDomain()

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
