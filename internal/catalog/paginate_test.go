package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		wantNumber int
		wantLast   int
		wantOffset int
	}{
		{"first of many", 25, 1, 1, 3, 0},
		{"middle page", 25, 2, 2, 3, 10},
		{"exact multiple", 30, 3, 3, 3, 20},
		{"past the end clamps to last", 25, 9, 3, 3, 20},
		{"below one clamps to first", 25, 0, 1, 3, 0},
		{"empty set has one page", 0, 1, 1, 1, 0},
		{"empty set clamps too", 0, 5, 1, 1, 0},
		{"single row", 1, 1, 1, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(tc.total, tc.page)
			assert.Equal(t, tc.wantNumber, page.Number)
			assert.Equal(t, tc.wantLast, page.LastPage)
			assert.Equal(t, tc.wantOffset, page.Offset)
			assert.Equal(t, PageSize, page.Limit)
		})
	}
}
