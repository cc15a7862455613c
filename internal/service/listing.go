package service

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"chain-dashboard/internal/model"
	"chain-dashboard/internal/stats"

	"github.com/shopspring/decimal"
)

func listCustomers(customers []model.Customer, q model.CustomerQuery) *model.CustomerList {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(c.Phone, search) &&
			!strings.Contains(strings.ToLower(c.ID), search) {
			continue
		}
		if !inRange(c.CreatedAt, q.From, q.To) {
			continue
		}
		filtered = append(filtered, c)
	}

	var compare func(a, b model.Customer) int
	switch q.SortBy {
	case "name":
		compare = func(a, b model.Customer) int { return strings.Compare(a.Name, b.Name) }
	case "totalSpent":
		compare = func(a, b model.Customer) int { return cmp.Compare(a.TotalSpent, b.TotalSpent) }
	case "loyaltyPoints":
		compare = func(a, b model.Customer) int { return cmp.Compare(a.LoyaltyPoints, b.LoyaltyPoints) }
	case "lastVisit":
		compare = func(a, b model.Customer) int { return compareOptionalTime(a.LastVisit, b.LastVisit) }
	default:
		compare = func(a, b model.Customer) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
	slices.SortStableFunc(filtered, directed(compare, q.SortOrder))

	spent := decimal.Zero
	var points int64
	for _, c := range filtered {
		spent = spent.Add(decimal.NewFromFloat(c.TotalSpent))
		points += int64(c.LoyaltyPoints)
	}

	summary := model.CustomerListSummary{TotalSpent: spent.Round(2).InexactFloat64()}
	if len(filtered) > 0 {
		summary.AverageLoyalty = decimal.NewFromInt(points).
			Div(decimal.NewFromInt(int64(len(filtered)))).
			Round(2).
			InexactFloat64()
	}

	return &model.CustomerList{
		Page:    paginate(filtered, q.Page, q.PageSize),
		Summary: summary,
	}
}

func listOrders(orders []model.Order, q model.OrderQuery) *model.OrderList {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if q.Status != "" {
		orders = stats.OrdersByStatus(orders, model.OrderStatus(q.Status))
	}

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.ID), search) {
			continue
		}
		if q.StaffID != "" && o.StaffID != q.StaffID {
			continue
		}
		if !inRange(o.OrderDate, q.From, q.To) {
			continue
		}
		filtered = append(filtered, o)
	}

	var compare func(a, b model.Order) int
	switch q.SortBy {
	case "totalAmount":
		compare = func(a, b model.Order) int { return cmp.Compare(a.TotalAmount, b.TotalAmount) }
	case "customerName":
		compare = func(a, b model.Order) int { return strings.Compare(a.CustomerName, b.CustomerName) }
	case "status":
		compare = func(a, b model.Order) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		compare = func(a, b model.Order) int { return a.OrderDate.Compare(b.OrderDate) }
	}
	slices.SortStableFunc(filtered, directed(compare, q.SortOrder))

	revenue := decimal.Zero
	byStatus := make(map[model.OrderStatus]int, len(model.OrderStatuses))
	for _, status := range model.OrderStatuses {
		byStatus[status] = 0
	}
	for _, o := range filtered {
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
		byStatus[o.Status]++
	}

	return &model.OrderList{
		Page: paginate(filtered, q.Page, q.PageSize),
		Summary: model.OrderListSummary{
			Revenue:  revenue.Round(2).InexactFloat64(),
			ByStatus: byStatus,
		},
	}
}

// directed applies the sort order; anything but "asc" sorts newest/largest first.
func directed[T any](compare func(a, b T) int, order string) func(a, b T) int {
	if order == model.SortAsc {
		return compare
	}
	return func(a, b T) int { return compare(b, a) }
}

// paginate clamps page to at least 1 and size to MaxPageSize (a non-positive
// size means DefaultPageSize), then slices out one page.
func paginate[T any](items []T, page, size int) model.Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = model.DefaultPageSize
	}
	if size > model.MaxPageSize {
		size = model.MaxPageSize
	}

	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))

	return model.Page[T]{
		Items:    items[start:end],
		Total:    len(items),
		Page:     page,
		PageSize: size,
	}
}

// inRange reports whether t falls within the optional inclusive bounds.
func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

// compareOptionalTime orders absent times before present ones.
func compareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
