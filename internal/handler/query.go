package handler

import (
	"net/http"
	"strconv"
	"time"

	"chain-dashboard/internal/model"
	"chain-dashboard/internal/stats"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// queryParser reads list parameters from the URL query string.
type queryParser struct {
	validate *validator.Validate
	location *time.Location
	logger   zerolog.Logger
}

// intParam parses an optional integer parameter.
func (p queryParser) intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewDomainError(model.ErrCodeInvalidQuery, key+" must be an integer")
	}
	return v, nil
}

// dateParam parses an optional date. Malformed values are ignored.
// Date-only values used as an upper bound cover the whole day.
func (p queryParser) dateParam(r *http.Request, key string, upper bool) *time.Time {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	t := stats.ParseTimestamp(raw, p.location)
	if t.IsZero() {
		p.logger.Warn().Str("param", key).Str("value", raw).Msg("ignoring malformed date filter")
		return nil
	}
	if upper && stats.IsDateOnly(raw) {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t
}

func (p queryParser) paging(r *http.Request) (page, size int, err error) {
	if page, err = p.intParam(r, "page", 1); err != nil {
		return 0, 0, err
	}
	if size, err = p.intParam(r, "pageSize", model.DefaultPageSize); err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func (p queryParser) check(q interface{}) error {
	if err := p.validate.Struct(q); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidQuery, err.Error())
	}
	return nil
}

func (p queryParser) customerQuery(r *http.Request) (model.CustomerQuery, error) {
	page, size, err := p.paging(r)
	if err != nil {
		return model.CustomerQuery{}, err
	}

	values := r.URL.Query()
	q := model.CustomerQuery{
		Search:    values.Get("search"),
		From:      p.dateParam(r, "from", false),
		To:        p.dateParam(r, "to", true),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
		Page:      page,
		PageSize:  size,
	}
	return q, p.check(q)
}

func (p queryParser) orderQuery(r *http.Request) (model.OrderQuery, error) {
	page, size, err := p.paging(r)
	if err != nil {
		return model.OrderQuery{}, err
	}

	values := r.URL.Query()
	q := model.OrderQuery{
		Search:    values.Get("search"),
		Status:    values.Get("status"),
		StaffID:   values.Get("staffId"),
		From:      p.dateParam(r, "from", false),
		To:        p.dateParam(r, "to", true),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
		Page:      page,
		PageSize:  size,
	}
	return q, p.check(q)
}
