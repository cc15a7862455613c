package model

// UserStats summarises customer growth and activity.
type UserStats struct {
	TotalUsers           int     `json:"totalUsers"`
	NewUsersToday        int     `json:"newUsersToday"`
	NewUsersThisWeek     int     `json:"newUsersThisWeek"`
	NewUsersThisMonth    int     `json:"newUsersThisMonth"`
	ActiveUsersToday     int     `json:"activeUsersToday"`
	ActiveUsersThisWeek  int     `json:"activeUsersThisWeek"`
	ActiveUsersThisMonth int     `json:"activeUsersThisMonth"`
	UserGrowthRate       float64 `json:"userGrowthRate"`
}

// OrderStats summarises order volume and revenue.
type OrderStats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OrdersToday       int     `json:"ordersToday"`
	OrdersThisWeek    int     `json:"ordersThisWeek"`
	OrdersThisMonth   int     `json:"ordersThisMonth"`
	RevenueToday      float64 `json:"revenueToday"`
	RevenueThisWeek   float64 `json:"revenueThisWeek"`
	RevenueThisMonth  float64 `json:"revenueThisMonth"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	OrderGrowthRate   float64 `json:"orderGrowthRate"`
}

// TrendPoint is one calendar day of a trend series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ServiceStat aggregates sold quantity and revenue for one service.
type ServiceStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// BusyHour counts orders for one weekday and hour of day.
type BusyHour struct {
	Day   string `json:"day"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

// RecentCustomer is the dashboard projection of a newly created customer.
type RecentCustomer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	CreatedAt  string  `json:"createdAt"`
	TotalSpent float64 `json:"totalSpent"`
}

// RecentOrder is the dashboard projection of a recent order.
type RecentOrder struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	TotalAmount  float64     `json:"totalAmount"`
	OrderDate    string      `json:"orderDate"`
	Status       OrderStatus `json:"status"`
}

// DashboardSummary is the full payload behind the dashboard landing page.
type DashboardSummary struct {
	UserStats           UserStats        `json:"userStats"`
	OrderStats          OrderStats       `json:"orderStats"`
	RecentUsers         []RecentCustomer `json:"recentUsers"`
	RecentOrders        []RecentOrder    `json:"recentOrders"`
	UserTrend           []TrendPoint     `json:"userTrend"`
	OrderTrend          []TrendPoint     `json:"orderTrend"`
	RevenueTrend        []TrendPoint     `json:"revenueTrend"`
	ServiceDistribution []ServiceStat    `json:"serviceDistribution"`
	BusyHours           []BusyHour       `json:"busyHours"`
}
