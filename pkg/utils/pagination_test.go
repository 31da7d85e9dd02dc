package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = GetPaginationParams(1, 5000)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestParsePaginationQuery(t *testing.T) {
	p := ParsePaginationQuery("3", "10")
	assert.Equal(t, PaginationParams{Page: 3, Limit: 10}, p)

	p = ParsePaginationQuery("", "abc")
	assert.Equal(t, PaginationParams{Page: 1, Limit: 0}, p)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 20}.CalculateOffset())
	assert.Equal(t, 40, PaginationParams{Page: 3, Limit: 20}.CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 20}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(100, 2, 20)
	assert.Equal(t, PaginationMeta{Page: 2, Limit: 20, TotalCount: 100, TotalPages: 5}, meta)

	noLimit := CalculateMeta(15, 1, 0)
	assert.Equal(t, PaginationMeta{Page: 1, Limit: 15, TotalCount: 15, TotalPages: 1}, noLimit)

	empty := CalculateMeta(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
}
