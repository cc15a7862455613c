package stats

import (
	"testing"
	"time"

	"chain-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDistribution(t *testing.T) {
	orders := []model.Order{
		{Items: []model.OrderItem{
			{ServiceType: "Haircut", Price: 80, Quantity: 2},
			{ServiceType: "Facial", Price: 120.50, Quantity: 1},
		}},
		{Items: []model.OrderItem{
			{ServiceType: "Haircut", Price: 60, Quantity: 1},
			{ServiceType: "Massage", Price: 200, Quantity: 1},
		}},
	}

	dist := ServiceDistribution(orders)
	require.Len(t, dist, 3)

	assert.Equal(t, model.ServiceStat{Name: "Haircut", Count: 3, Revenue: 220}, dist[0])
	assert.Equal(t, "Facial", dist[1].Name)
	assert.InDelta(t, 120.50, dist[1].Revenue, 1e-9)
	assert.Equal(t, "Massage", dist[2].Name)

	top := TopServices(orders, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "Haircut", top[0].Name)
}

func TestBusyHours(t *testing.T) {
	orders := []model.Order{
		// Monday 10:15
		{OrderDate: time.Date(2025, 6, 16, 10, 15, 0, 0, time.UTC)},
		{OrderDate: time.Date(2025, 6, 16, 10, 45, 0, 0, time.UTC)},
		// Sunday 18:59
		{OrderDate: time.Date(2025, 6, 15, 18, 59, 0, 0, time.UTC)},
		// Outside opening hours
		{OrderDate: time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)},
		{OrderDate: time.Date(2025, 6, 16, 19, 0, 0, 0, time.UTC)},
	}

	grid := BusyHours(orders, time.UTC)
	require.Len(t, grid, 70)

	assert.Equal(t, model.BusyHour{Day: "Mon", Hour: 9, Count: 0}, grid[0])
	assert.Equal(t, model.BusyHour{Day: "Mon", Hour: 10, Count: 2}, grid[1])
	assert.Equal(t, model.BusyHour{Day: "Sun", Hour: 18, Count: 1}, grid[69])

	var total int
	for _, cell := range grid {
		total += cell.Count
	}
	assert.Equal(t, 3, total)
}

func TestTopCustomers(t *testing.T) {
	customers := []model.Customer{
		{ID: "user-1", TotalSpent: 10, LoyaltyPoints: 300},
		{ID: "user-2", TotalSpent: 500, LoyaltyPoints: 5},
		{ID: "user-3", TotalSpent: 250, LoyaltyPoints: 900},
	}

	bySpend := TopCustomersBySpend(customers, 2)
	require.Len(t, bySpend, 2)
	assert.Equal(t, "user-2", bySpend[0].ID)
	assert.Equal(t, "user-3", bySpend[1].ID)

	byLoyalty := TopCustomersByLoyalty(customers, 10)
	require.Len(t, byLoyalty, 3)
	assert.Equal(t, "user-3", byLoyalty[0].ID)

	// Input order is untouched.
	assert.Equal(t, "user-1", customers[0].ID)
}

func TestRecentProjections(t *testing.T) {
	customers := []model.Customer{
		{ID: "user-1", Name: "Li Wei", CreatedAt: refNow.AddDate(0, 0, -3)},
		{ID: "user-2", Name: "Wang Fang", CreatedAt: refNow, TotalSpent: 1288.5},
		{ID: "user-3", Name: "Zhao Min", CreatedAt: refNow.AddDate(0, 0, -1)},
	}
	orders := []model.Order{
		{ID: "o1", OrderDate: refNow.AddDate(0, 0, -10), Status: model.OrderStatusPending},
		{ID: "o2", OrderDate: refNow, Status: model.OrderStatusCompleted},
	}

	recentUsers := RecentCustomers(customers, 2, time.UTC)
	require.Len(t, recentUsers, 2)
	assert.Equal(t, "user-2", recentUsers[0].ID)
	assert.Equal(t, "2025-06-18", recentUsers[0].CreatedAt)
	assert.Equal(t, 1288.5, recentUsers[0].TotalSpent)
	assert.Equal(t, "user-3", recentUsers[1].ID)

	recentOrders := RecentOrders(orders, 5, time.UTC)
	require.Len(t, recentOrders, 2)
	assert.Equal(t, "o2", recentOrders[0].ID)
	assert.Equal(t, model.OrderStatusCompleted, recentOrders[0].Status)
}

func TestOrdersByStatus(t *testing.T) {
	orders := []model.Order{
		{ID: "o1", Status: model.OrderStatusPending},
		{ID: "o2", Status: model.OrderStatusCanceled},
		{ID: "o3", Status: model.OrderStatusPending},
	}

	pending := OrdersByStatus(orders, model.OrderStatusPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "o1", pending[0].ID)
	assert.Empty(t, OrdersByStatus(orders, model.OrderStatusCompleted))
}
