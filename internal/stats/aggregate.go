package stats

import (
	"time"

	"chain-dashboard/internal/model"

	"github.com/shopspring/decimal"
)

// GrowthRate returns the fractional change from previous to current.
// A zero baseline yields 1 when current is positive and 0 otherwise.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 1
		}
		return 0
	}
	return (current - previous) / previous
}

// CalculateUserStats aggregates customer growth and activity relative to now.
func CalculateUserStats(customers []model.Customer, now time.Time) model.UserStats {
	w := CalendarWindows(now)
	stats := model.UserStats{TotalUsers: len(customers)}
	var lastMonth int

	for _, c := range customers {
		if w.Today.Contains(c.CreatedAt) {
			stats.NewUsersToday++
		}
		if w.ThisWeek.Contains(c.CreatedAt) {
			stats.NewUsersThisWeek++
		}
		if w.ThisMonth.Contains(c.CreatedAt) {
			stats.NewUsersThisMonth++
		}
		if w.LastMonth.Contains(c.CreatedAt) {
			lastMonth++
		}

		if c.LastVisit == nil {
			continue
		}
		if w.Today.Contains(*c.LastVisit) {
			stats.ActiveUsersToday++
		}
		if w.ThisWeek.Contains(*c.LastVisit) {
			stats.ActiveUsersThisWeek++
		}
		if w.ThisMonth.Contains(*c.LastVisit) {
			stats.ActiveUsersThisMonth++
		}
	}

	stats.UserGrowthRate = GrowthRate(float64(stats.NewUsersThisMonth), float64(lastMonth))
	return stats
}

// CalculateOrderStats aggregates order volume and revenue relative to now.
func CalculateOrderStats(orders []model.Order, now time.Time) model.OrderStats {
	w := CalendarWindows(now)
	stats := model.OrderStats{TotalOrders: len(orders)}

	total := decimal.Zero
	today, week, month := decimal.Zero, decimal.Zero, decimal.Zero
	var lastMonth int

	for _, o := range orders {
		amount := decimal.NewFromFloat(o.TotalAmount)
		total = total.Add(amount)

		if w.Today.Contains(o.OrderDate) {
			stats.OrdersToday++
			today = today.Add(amount)
		}
		if w.ThisWeek.Contains(o.OrderDate) {
			stats.OrdersThisWeek++
			week = week.Add(amount)
		}
		if w.ThisMonth.Contains(o.OrderDate) {
			stats.OrdersThisMonth++
			month = month.Add(amount)
		}
		if w.LastMonth.Contains(o.OrderDate) {
			lastMonth++
		}
	}

	stats.TotalRevenue = total.Round(2).InexactFloat64()
	stats.RevenueToday = today.Round(2).InexactFloat64()
	stats.RevenueThisWeek = week.Round(2).InexactFloat64()
	stats.RevenueThisMonth = month.Round(2).InexactFloat64()
	if len(orders) > 0 {
		stats.AverageOrderValue = total.Div(decimal.NewFromInt(int64(len(orders)))).Round(2).InexactFloat64()
	}
	stats.OrderGrowthRate = GrowthRate(float64(stats.OrdersThisMonth), float64(lastMonth))

	return stats
}
