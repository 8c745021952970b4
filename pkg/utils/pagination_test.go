package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 25))
	assert.Equal(t, 1, CalculateTotalPages(25, 25))
	assert.Equal(t, 2, CalculateTotalPages(26, 25))
	assert.Equal(t, 8, CalculateTotalPages(200, 25))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestSlicePage(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name          string
		page, perPage int
		want          []int
	}{
		{"first", 0, 3, []int{0, 1, 2}},
		{"middle", 1, 3, []int{3, 4, 5}},
		{"partial last", 2, 3, []int{6}},
		{"past end", 3, 3, []int{}},
		{"negative page", -1, 3, []int{}},
		{"zero size", 0, 0, []int{}},
		{"huge page", 1 << 40, 1 << 40, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlicePage(items, tt.page, tt.perPage)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlicePageCapacityLimited(t *testing.T) {
	items := []int{0, 1, 2, 3}
	page := SlicePage(items, 0, 2)

	_ = append(page, 99)

	assert.Equal(t, []int{0, 1, 2, 3}, items)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(0, 25))
	assert.Equal(t, 50, CalculateOffset(2, 25))
	assert.Equal(t, 0, CalculateOffset(-1, 25))
}
