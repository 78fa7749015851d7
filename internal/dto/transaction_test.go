package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/orgledger/orgledger-backend/internal/dto"
)

func TestToListTransactionsResponsePagesMath(t *testing.T) {
	resp := dto.ToListTransactionsResponse([]domain.Transaction{}, 101, 3, 50)

	assert.Equal(t, int64(101), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.Page)
	assert.Equal(t, 50, resp.Pagination.Limit)
	assert.Equal(t, 3, resp.Pagination.Pages)
}

func TestToListTransactionsResponseZeroLimit(t *testing.T) {
	// A zero limit must not reach the page-count division.
	assert.NotPanics(t, func() {
		resp := dto.ToListTransactionsResponse(nil, 10, 1, 0)
		assert.Equal(t, 0, resp.Pagination.Pages)
	})
}

func TestListTransactionsQueryNormalize(t *testing.T) {
	tests := []struct {
		name      string
		query     dto.ListTransactionsQuery
		wantPage  int
		wantLimit int
	}{
		{"zero values", dto.ListTransactionsQuery{Page: 0, Limit: 0}, 1, dto.DefaultPageLimit},
		{"negative values", dto.ListTransactionsQuery{Page: -2, Limit: -5}, 1, dto.DefaultPageLimit},
		{"oversized limit", dto.ListTransactionsQuery{Page: 4, Limit: 1000}, 4, dto.MaxPageLimit},
		{"in range untouched", dto.ListTransactionsQuery{Page: 2, Limit: 25}, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Normalize()
			assert.Equal(t, tt.wantPage, tt.query.Page)
			assert.Equal(t, tt.wantLimit, tt.query.Limit)
		})
	}
}
