package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	// Out-of-range values fall back to defaults.
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(25), info.TotalItems)
	assert.True(t, info.HasNext)

	info = NewPaginationInfo(25, 3, 10)
	assert.Equal(t, 3, info.CurrentPage)
	assert.False(t, info.HasNext)
}

func TestNewPaginationInfo_EmptyCollection(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)
	assert.False(t, info.HasNext)
}

func TestNewPaginationInfo_PageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.False(t, info.HasNext)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "golang", Slugify("  Golang  "))
	assert.Equal(t, "a-b-c", Slugify("a  b // c!"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "tag42", Slugify("Tag42"))
}
