package guard_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errQueryNotConstructed = errors.New("query must be created via its constructor")

type sampleQuery struct {
	page  int
	guard guard.ConstructorGuard
}

func newSampleQuery(page int) sampleQuery {
	return sampleQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q sampleQuery) Validate() error {
	return q.guard.Validate(errQueryNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_value_passes", func(t *testing.T) {
		q := newSampleQuery(2)

		require.NoError(t, q.Validate())
		assert.Equal(t, 2, q.page)
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var q sampleQuery

		err := q.Validate()

		require.Error(t, err)
		assert.Equal(t, errQueryNotConstructed, err)
	})

	t.Run("zero_value_with_nil_error_returns_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})

	t.Run("copies_keep_constructed_state", func(t *testing.T) {
		q := newSampleQuery(1)
		copied := q

		require.NoError(t, copied.Validate())
	})
}
