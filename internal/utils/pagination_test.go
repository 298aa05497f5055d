package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		wantStart   int
		wantEnd     int
	}{
		{name: "first page pins window at the left edge", currentPage: 1, totalPages: 10, wantStart: 2, wantEnd: 5},
		{name: "page two still pinned left", currentPage: 2, totalPages: 10, wantStart: 2, wantEnd: 5},
		{name: "page three still pinned left", currentPage: 3, totalPages: 10, wantStart: 2, wantEnd: 5},
		{name: "middle page centers the window", currentPage: 5, totalPages: 10, wantStart: 3, wantEnd: 7},
		{name: "near the right edge pins right", currentPage: 8, totalPages: 10, wantStart: 6, wantEnd: 9},
		{name: "last page pins right", currentPage: 10, totalPages: 10, wantStart: 6, wantEnd: 9},
		{name: "few pages keeps window inside bounds", currentPage: 2, totalPages: 3, wantStart: 2, wantEnd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageWindow(tt.currentPage, tt.totalPages)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPageWindowDegeneratesWithoutInteriorPages(t *testing.T) {
	// With two or fewer pages there are no interior page links; the window
	// comes back empty (start > end).
	start, end := PageWindow(1, 2)
	assert.Greater(t, start, end)

	start, end = PageWindow(1, 1)
	assert.Greater(t, start, end)
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.PageSize)
	assert.EqualValues(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.StartPage)
	assert.Equal(t, 2, meta.EndPage)
}
