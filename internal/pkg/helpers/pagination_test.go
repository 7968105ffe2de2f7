package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"custom limit", 3, 25, 50, 25},
		{"page below one clamps", 0, 10, 0, 10},
		{"limit below one defaults", 2, 0, 10, 10},
		{"limit above max clamps to max", 2, 500, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(1, 10, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = CalculateSliceIndices(3, 10, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = CalculateSliceIndices(5, 10, 25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestParseListParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		return c
	}

	t.Run("defaults", func(t *testing.T) {
		p := ParseListParams(newCtx(""), SortAscending)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.True(t, p.SortAsc)
		assert.Empty(t, p.Search)
	})

	t.Run("descending default holds", func(t *testing.T) {
		p := ParseListParams(newCtx(""), SortDescending)
		assert.False(t, p.SortAsc)
	})

	t.Run("explicit sort overrides default", func(t *testing.T) {
		p := ParseListParams(newCtx("sort=Ascending"), SortDescending)
		assert.True(t, p.SortAsc)

		p = ParseListParams(newCtx("sort=Descending"), SortAscending)
		assert.False(t, p.SortAsc)
	})

	t.Run("garbage sort falls back to default", func(t *testing.T) {
		p := ParseListParams(newCtx("sort=banana"), SortDescending)
		assert.False(t, p.SortAsc)
	})

	t.Run("search limit and page", func(t *testing.T) {
		p := ParseListParams(newCtx("search=comp&limit=5&page=3"), SortAscending)
		assert.Equal(t, "comp", p.Search)
		assert.Equal(t, 5, p.Limit)
		assert.Equal(t, 3, p.Page)
	})

	t.Run("limit above max clamps to max", func(t *testing.T) {
		p := ParseListParams(newCtx("limit=500"), SortAscending)
		assert.Equal(t, MaxLimit, p.Limit)
	})

	t.Run("invalid numbers fall back", func(t *testing.T) {
		p := ParseListParams(newCtx("limit=zero&page=-4"), SortAscending)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 1, p.Page)
	})
}
