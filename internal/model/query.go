package model

import "time"

// Paging defaults for list endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// CustomerQuery filters, sorts and pages the customer list.
type CustomerQuery struct {
	Search    string     `json:"search,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	SortBy    string     `json:"sortBy,omitempty" validate:"omitempty,oneof=createdAt name totalSpent loyaltyPoints lastVisit"`
	SortOrder string     `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
	Page      int        `json:"page" validate:"gte=0"`
	PageSize  int        `json:"pageSize" validate:"gte=0,lte=100"`
}

// OrderQuery filters, sorts and pages the order list.
type OrderQuery struct {
	Search    string     `json:"search,omitempty"`
	Status    string     `json:"status,omitempty" validate:"omitempty,oneof=pending completed canceled"`
	StaffID   string     `json:"staffId,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	SortBy    string     `json:"sortBy,omitempty" validate:"omitempty,oneof=orderDate totalAmount customerName status"`
	SortOrder string     `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
	Page      int        `json:"page" validate:"gte=0"`
	PageSize  int        `json:"pageSize" validate:"gte=0,lte=100"`
}

// Page is one page of a filtered, sorted listing.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// CustomerListSummary aggregates the whole filtered customer set, not just the page.
type CustomerListSummary struct {
	TotalSpent     float64 `json:"totalSpent"`
	AverageLoyalty float64 `json:"averageLoyalty"`
}

// CustomerList is a page of customers plus the summary of the filtered set.
type CustomerList struct {
	Page[Customer]
	Summary CustomerListSummary `json:"summary"`
}

// OrderListSummary aggregates the whole filtered order set, not just the page.
type OrderListSummary struct {
	Revenue  float64             `json:"revenue"`
	ByStatus map[OrderStatus]int `json:"byStatus"`
}

// OrderList is a page of orders plus the summary of the filtered set.
type OrderList struct {
	Page[Order]
	Summary OrderListSummary `json:"summary"`
}

// ConfigureRequest is the body of a dataset configuration update.
type ConfigureRequest struct {
	UserCount  int `json:"userCount"`
	OrderCount int `json:"orderCount"`
}
