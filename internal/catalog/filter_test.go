package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilter_TrimsSearch(t *testing.T) {
	t.Parallel()

	f := NormalizeFilter("  blue paint  ", nil, 1, DefaultPageSize)
	assert.Equal(t, "blue paint", f.Search)
	assert.True(t, f.HasSearch())

	f = NormalizeFilter("   ", nil, 1, DefaultPageSize)
	assert.Equal(t, "", f.Search)
	assert.False(t, f.HasSearch())
}

func TestNormalizeFilter_ClampsPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page int
		want int
	}{
		{name: "zero clamps to one", page: 0, want: 1},
		{name: "negative clamps to one", page: -5, want: 1},
		{name: "valid page kept", page: 3, want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NormalizeFilter("", nil, tt.page, DefaultPageSize)
			assert.Equal(t, tt.want, f.Page)
		})
	}
}

func TestNormalizeFilter_DeduplicatesCategories(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	f := NormalizeFilter("", []uuid.UUID{a, b, a, uuid.Nil, b}, 1, DefaultPageSize)

	require.Len(t, f.CategoryIDs, 2)
	assert.Equal(t, a, f.CategoryIDs[0], "first-seen order preserved")
	assert.Equal(t, b, f.CategoryIDs[1])
}

func TestNormalizeFilter_Idempotent(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	first := NormalizeFilter(" paint ", []uuid.UUID{a, a, b}, 0, DefaultPageSize)
	second := NormalizeFilter(first.Search, first.CategoryIDs, first.Page, first.PageSize)

	assert.Equal(t, first, second)
}

func TestFilter_Offset(t *testing.T) {
	t.Parallel()

	f := NormalizeFilter("", nil, 3, 12)
	assert.Equal(t, 24, f.Offset())

	f = NormalizeFilter("", nil, 1, 12)
	assert.Equal(t, 0, f.Offset())
}
