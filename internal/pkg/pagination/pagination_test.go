package pagination_test

import (
	"math"
	"testing"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	t.Run("defaults applied for zero values", func(t *testing.T) {
		p, err := pagination.NewParams(0, 0)

		require.NoError(t, err)
		assert.Equal(t, pagination.DefaultPage, p.Page())
		assert.Equal(t, pagination.DefaultLimit, p.Limit())
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("offset is (page-1)*limit", func(t *testing.T) {
		p, err := pagination.NewParams(3, 10)

		require.NoError(t, err)
		assert.Equal(t, 20, p.Offset())
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		cases := []struct {
			name        string
			page, limit int
		}{
			{"negative page", -1, 10},
			{"negative limit", 1, -5},
			{"limit above max", 1, pagination.MaxLimit + 1},
			{"page overflowing offset", math.MaxInt, pagination.MaxLimit},
			{"page one past max", pagination.MaxPage(10) + 1, 10},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pagination.NewParams(tc.page, tc.limit)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestNewParams_LargestPageKeepsOffsetNonNegative(t *testing.T) {
	for _, limit := range []int{1, 10, pagination.MaxLimit} {
		p, err := pagination.NewParams(pagination.MaxPage(limit), limit)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Offset(), 0)
		assert.LessOrEqual(t, p.Offset(), math.MaxInt-limit+1)
	}
}

func TestNewMetadata(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		page     int
		limit    int
		lastPage int
	}{
		{"25 rows by 10", 25, 1, 10, 3},
		{"exact multiple", 20, 2, 10, 2},
		{"single partial page", 3, 1, 10, 1},
		{"empty result", 0, 1, 10, 0},
		{"page past the end keeps total", 25, 4, 10, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := pagination.NewParams(tc.page, tc.limit)
			require.NoError(t, err)

			meta := pagination.NewMetadata(tc.total, p)

			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.lastPage, meta.LastPage)
		})
	}
}

func TestNewPage(t *testing.T) {
	p, err := pagination.NewParams(4, 10)
	require.NoError(t, err)

	page := pagination.NewPage[string](nil, 25, p)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(25), page.Metadata.Total)
	assert.Equal(t, 3, page.Metadata.LastPage)
}

func TestMap(t *testing.T) {
	p, err := pagination.NewParams(1, 2)
	require.NoError(t, err)
	page := pagination.NewPage([]int{1, 2}, 5, p)

	mapped := pagination.Map(page, func(v int) int { return v * 10 })

	assert.Equal(t, []int{10, 20}, mapped.Data)
	assert.Equal(t, page.Metadata, mapped.Metadata)
}
