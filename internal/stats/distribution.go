package stats

import (
	"sort"
	"strings"
	"time"

	"chain-dashboard/internal/model"

	"github.com/shopspring/decimal"
)

// Opening hours covered by the busy-hours grid.
const (
	FirstBusyHour = 9
	LastBusyHour  = 18
)

// Monday-first labels for the busy-hours grid.
var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ServiceDistribution sums sold quantity and revenue per service across all
// order items, ordered by quantity then name.
func ServiceDistribution(orders []model.Order) []model.ServiceStat {
	type acc struct {
		count   int
		revenue decimal.Decimal
	}
	byName := make(map[string]*acc)

	for _, o := range orders {
		for _, it := range o.Items {
			a, ok := byName[it.ServiceType]
			if !ok {
				a = &acc{revenue: decimal.Zero}
				byName[it.ServiceType] = a
			}
			a.count += it.Quantity
			a.revenue = a.revenue.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	result := make([]model.ServiceStat, 0, len(byName))
	for name, a := range byName {
		result = append(result, model.ServiceStat{
			Name:    name,
			Count:   a.count,
			Revenue: a.revenue.Round(2).InexactFloat64(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// TopServices returns at most limit entries of the service distribution.
func TopServices(orders []model.Order, limit int) []model.ServiceStat {
	all := ServiceDistribution(orders)
	if limit >= 0 && limit < len(all) {
		return all[:limit]
	}
	return all
}

// BusyHours counts orders per weekday and opening hour in loc.
// The grid always has 7 x 10 cells, Monday first.
func BusyHours(orders []model.Order, loc *time.Location) []model.BusyHour {
	hours := LastBusyHour - FirstBusyHour + 1
	var grid [7][]int
	for d := range grid {
		grid[d] = make([]int, hours)
	}

	for _, o := range orders {
		if o.OrderDate.IsZero() {
			continue
		}
		t := o.OrderDate.In(loc)
		if t.Hour() < FirstBusyHour || t.Hour() > LastBusyHour {
			continue
		}
		// time.Weekday is Sunday-first; shift to Monday-first.
		d := (int(t.Weekday()) + 6) % 7
		grid[d][t.Hour()-FirstBusyHour]++
	}

	result := make([]model.BusyHour, 0, 7*hours)
	for d, label := range weekdayLabels {
		for h := 0; h < hours; h++ {
			result = append(result, model.BusyHour{
				Day:   label,
				Hour:  FirstBusyHour + h,
				Count: grid[d][h],
			})
		}
	}
	return result
}

// TopCustomersBySpend returns at most limit customers ordered by total spent.
func TopCustomersBySpend(customers []model.Customer, limit int) []model.Customer {
	return topCustomers(customers, limit, func(a, b model.Customer) bool {
		return a.TotalSpent > b.TotalSpent
	})
}

// TopCustomersByLoyalty returns at most limit customers ordered by loyalty points.
func TopCustomersByLoyalty(customers []model.Customer, limit int) []model.Customer {
	return topCustomers(customers, limit, func(a, b model.Customer) bool {
		return a.LoyaltyPoints > b.LoyaltyPoints
	})
}

func topCustomers(customers []model.Customer, limit int, less func(a, b model.Customer) bool) []model.Customer {
	sorted := make([]model.Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// RecentCustomers projects the limit most recently created customers.
func RecentCustomers(customers []model.Customer, limit int, loc *time.Location) []model.RecentCustomer {
	sorted := topCustomers(customers, limit, func(a, b model.Customer) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	result := make([]model.RecentCustomer, len(sorted))
	for i, c := range sorted {
		result[i] = model.RecentCustomer{
			ID:         c.ID,
			Name:       c.Name,
			Phone:      c.Phone,
			CreatedAt:  c.CreatedAt.In(loc).Format(DateLayout),
			TotalSpent: c.TotalSpent,
		}
	}
	return result
}

// RecentOrders projects the limit most recent orders.
func RecentOrders(orders []model.Order, limit int, loc *time.Location) []model.RecentOrder {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].OrderDate.After(sorted[j].OrderDate) })
	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	result := make([]model.RecentOrder, len(sorted))
	for i, o := range sorted {
		result[i] = model.RecentOrder{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
			OrderDate:    o.OrderDate.In(loc).Format(DateLayout),
			Status:       o.Status,
		}
	}
	return result
}

// OrdersByStatus returns the orders with the given status, keeping their order.
func OrdersByStatus(orders []model.Order, status model.OrderStatus) []model.Order {
	result := make([]model.Order, 0)
	for _, o := range orders {
		if strings.EqualFold(string(o.Status), string(status)) {
			result = append(result, o)
		}
	}
	return result
}
