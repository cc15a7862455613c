package stats

import (
	"time"

	"chain-dashboard/internal/model"

	"github.com/shopspring/decimal"
)

// Aggregation selects how items falling on the same day are combined.
type Aggregation[T any] struct {
	value func(T) float64
}

// Count counts items per day.
func Count[T any]() Aggregation[T] {
	return Aggregation[T]{}
}

// Sum adds value(item) per day.
func Sum[T any](value func(T) float64) Aggregation[T] {
	return Aggregation[T]{value: value}
}

// BuildTrend returns exactly days points, oldest first, covering the trailing
// window that ends today (inclusive). Days without items are zero; items outside
// the window or with a zero date are dropped.
func BuildTrend[T any](items []T, dateOf func(T) time.Time, agg Aggregation[T], days int, now time.Time) []model.TrendPoint {
	if days <= 0 {
		return []model.TrendPoint{}
	}

	loc := now.Location()
	first := StartOfDay(now).AddDate(0, 0, -(days - 1))

	keys := make([]string, days)
	buckets := make(map[string]decimal.Decimal, days)
	for i := 0; i < days; i++ {
		key := first.AddDate(0, 0, i).Format(DateLayout)
		keys[i] = key
		buckets[key] = decimal.Zero
	}

	for _, item := range items {
		d := dateOf(item)
		if d.IsZero() {
			continue
		}
		key := d.In(loc).Format(DateLayout)
		current, ok := buckets[key]
		if !ok {
			continue
		}
		if agg.value == nil {
			buckets[key] = current.Add(decimal.NewFromInt(1))
		} else {
			buckets[key] = current.Add(decimal.NewFromFloat(agg.value(item)))
		}
	}

	points := make([]model.TrendPoint, days)
	for i, key := range keys {
		points[i] = model.TrendPoint{
			Date:  key,
			Value: buckets[key].Round(2).InexactFloat64(),
		}
	}
	return points
}

// CustomerSignups is the daily count of new customers.
func CustomerSignups(customers []model.Customer, days int, now time.Time) []model.TrendPoint {
	return BuildTrend(customers, func(c model.Customer) time.Time { return c.CreatedAt }, Count[model.Customer](), days, now)
}

// OrderVolume is the daily count of orders.
func OrderVolume(orders []model.Order, days int, now time.Time) []model.TrendPoint {
	return BuildTrend(orders, orderDate, Count[model.Order](), days, now)
}

// Revenue is the daily sum of order totals.
func Revenue(orders []model.Order, days int, now time.Time) []model.TrendPoint {
	return BuildTrend(orders, orderDate, Sum(func(o model.Order) float64 { return o.TotalAmount }), days, now)
}

func orderDate(o model.Order) time.Time {
	return o.OrderDate
}
