package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // pages are 1-based

	SortAscending  = "Ascending"
	SortDescending = "Descending"
)

// ListParams holds the common query parameters accepted by every list endpoint.
type ListParams struct {
	Search string
	Page   int
	Limit  int
	// SortAsc is true when records should be ordered by ascending creation time.
	SortAsc bool
}

// ParseListParams extracts search/limit/page/sort from the request. The sort
// default differs per entity, so callers pass it in.
func ParseListParams(c *gin.Context, defaultSort string) ListParams {
	params := ListParams{
		Search: c.Query("search"),
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	params.Page = page

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	params.Limit = limit

	sort := c.DefaultQuery("sort", defaultSort)
	if defaultSort == SortDescending {
		// Only an explicit "Ascending" flips a descending default.
		params.SortAsc = sort == SortAscending
	} else {
		params.SortAsc = sort != SortDescending
	}

	return params
}

// CalculateOffsetLimit converts a 1-based page number into a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset uint64, outLimit int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	return uint64((page - 1) * limit), limit
}

// CalculateSliceIndices calculates start and end indices for paginating an
// in-memory slice, clamping to its bounds.
func CalculateSliceIndices(page, limit, totalItems int) (start, end int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	start = (page - 1) * limit
	end = start + limit

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
