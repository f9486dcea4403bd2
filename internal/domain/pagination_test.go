package domain_test

import (
	"testing"

	"new-recruitment-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewCandidatePage(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty store", 0, 1, 10, 0, false, false},
		{"single partial page", 3, 1, 10, 1, false, false},
		{"exact page boundary", 20, 1, 10, 2, true, false},
		{"one row past the boundary", 21, 3, 10, 3, false, true},
		{"middle page", 25, 2, 10, 3, true, true},
		{"page beyond the data", 25, 9, 10, 3, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.NewCandidatePage(nil, tc.total, tc.page, tc.perPage)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.page, p.CurrentPage)
			assert.Equal(t, tc.hasNext, p.HasNextPage)
			assert.Equal(t, tc.hasPrev, p.HasPreviousPage)
			// Neighbour pages are never clamped
			assert.Equal(t, tc.page+1, p.NextPage)
			assert.Equal(t, tc.page-1, p.PreviousPage)
		})
	}
}

func TestNewCandidatePageNeverReturnsNilSlice(t *testing.T) {
	p := domain.NewCandidatePage(nil, 0, 1, 10)
	assert.NotNil(t, p.Candidates)
}
