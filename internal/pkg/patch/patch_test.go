//go:build unit

package patch_test

import (
	"testing"
	"time"

	"reservation-management/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	t.Run("nil pointer keeps fallback", func(t *testing.T) {
		assert.Equal(t, 42, patch.Coalesce(nil, 42))
	})

	t.Run("set pointer wins", func(t *testing.T) {
		v := 7
		assert.Equal(t, 7, patch.Coalesce(&v, 42))
	})

	t.Run("zero value is still a value", func(t *testing.T) {
		v := false
		assert.Equal(t, false, patch.Coalesce(&v, true))
	})

	t.Run("works for time", func(t *testing.T) {
		fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		v := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, v, patch.Coalesce(&v, fallback))
		assert.Equal(t, fallback, patch.Coalesce[time.Time](nil, fallback))
	})
}

func TestString(t *testing.T) {
	t.Run("nil pointer keeps fallback", func(t *testing.T) {
		assert.Equal(t, "kept", patch.String(nil, "kept"))
	})

	t.Run("blank string keeps fallback", func(t *testing.T) {
		v := ""
		assert.Equal(t, "kept", patch.String(&v, "kept"))
	})

	t.Run("whitespace-only keeps fallback", func(t *testing.T) {
		v := "   "
		assert.Equal(t, "kept", patch.String(&v, "kept"))
	})

	t.Run("non-blank value wins", func(t *testing.T) {
		v := "new"
		assert.Equal(t, "new", patch.String(&v, "kept"))
	})
}
