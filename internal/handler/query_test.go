package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() queryParser {
	return queryParser{validate: model.NewValidator(), location: time.UTC, logger: zerolog.Nop()}
}

func TestQueryParser_DateParam(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		query    string
		upper    bool
		expected *time.Time
	}{
		{
			name:     "absent",
			query:    "",
			expected: nil,
		},
		{
			name:     "date only lower bound",
			query:    "from=2025-06-01",
			expected: ptrTime(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "date only upper bound covers the day",
			query:    "from=2025-06-01",
			upper:    true,
			expected: ptrTime(time.Date(2025, 6, 1, 23, 59, 59, 999999999, time.UTC)),
		},
		{
			name:     "rfc3339",
			query:    "from=2025-06-01T10:30:00Z",
			expected: ptrTime(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:     "rfc3339 upper bound is taken as is",
			query:    "from=2025-06-01T10:30:00Z",
			upper:    true,
			expected: ptrTime(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:     "malformed is ignored",
			query:    "from=yesterday",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/customers?"+tt.query, nil)

			got := p.dateParam(req, "from", tt.upper)

			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestQueryParser_DateParamUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	p := queryParser{validate: model.NewValidator(), location: loc, logger: zerolog.Nop()}

	req := httptest.NewRequest("GET", "/api/orders?from=2025-06-01", nil)
	got := p.dateParam(req, "from", false)

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 5, 31, 16, 0, 0, 0, time.UTC), got.UTC())
}

func TestQueryParser_CustomerQuery(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name        string
		query       string
		expectError bool
		check       func(t *testing.T, q model.CustomerQuery)
	}{
		{
			name:  "defaults",
			query: "",
			check: func(t *testing.T, q model.CustomerQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, model.DefaultPageSize, q.PageSize)
				assert.Empty(t, q.SortBy)
			},
		},
		{
			name:  "all parameters",
			query: "search=ann&sortBy=totalSpent&sortOrder=asc&page=3&pageSize=25&from=2025-01-01&to=2025-01-31",
			check: func(t *testing.T, q model.CustomerQuery) {
				assert.Equal(t, "ann", q.Search)
				assert.Equal(t, "totalSpent", q.SortBy)
				assert.Equal(t, model.SortAsc, q.SortOrder)
				assert.Equal(t, 3, q.Page)
				assert.Equal(t, 25, q.PageSize)
				require.NotNil(t, q.From)
				require.NotNil(t, q.To)
			},
		},
		{name: "non-numeric page", query: "page=two", expectError: true},
		{name: "page size too large", query: "pageSize=500", expectError: true},
		{name: "negative page", query: "page=-1", expectError: true},
		{name: "unknown sort field", query: "sortBy=age", expectError: true},
		{name: "unknown sort order", query: "sortOrder=sideways", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/customers?"+tt.query, nil)

			q, err := p.customerQuery(req)

			if tt.expectError {
				var domainErr *model.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, model.ErrCodeInvalidQuery, domainErr.Code)
				return
			}
			require.NoError(t, err)
			tt.check(t, q)
		})
	}
}

func TestQueryParser_OrderQuery(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name        string
		query       string
		expectError bool
	}{
		{name: "status filter", query: "status=completed&staffId=S01"},
		{name: "sort by amount", query: "sortBy=totalAmount&sortOrder=desc"},
		{name: "unknown status", query: "status=shipped", expectError: true},
		{name: "unknown sort field", query: "sortBy=shop", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/orders?"+tt.query, nil)

			_, err := p.orderQuery(req)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
