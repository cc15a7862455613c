package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled}

// Order represents a purchase of one or more services by a customer.
// TotalAmount always equals the sum of price*quantity over Items, rounded to cents.
type Order struct {
	ID            string      `json:"id" db:"id"`
	CustomerID    string      `json:"customerId" db:"customer_id"`
	CustomerName  string      `json:"customerName" db:"customer_name"`
	TotalAmount   float64     `json:"totalAmount" db:"total_amount" validate:"gte=0"`
	OrderDate     time.Time   `json:"orderDate" db:"order_date"`
	Status        OrderStatus `json:"status" db:"status" validate:"oneof=pending completed canceled"`
	Items         []OrderItem `json:"items" validate:"min=1,dive"`
	PaymentMethod string      `json:"paymentMethod" db:"payment_method"`
	Location      string      `json:"location" db:"location"`
	StaffID       string      `json:"staffId" db:"staff_id"`
	StaffName     string      `json:"staffName" db:"staff_name"`
}

// OrderItem represents a single service line in an order.
type OrderItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	ServiceType string    `json:"serviceType" db:"service_type"`
	Price       float64   `json:"price" db:"price" validate:"gte=0"`
	Quantity    int       `json:"quantity" db:"quantity" validate:"gte=1"`
}
