package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator returns a validator with the order total rule registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(orderTotalValidation, Order{})
	return v
}

// orderTotalValidation requires TotalAmount to equal the item sum to the cent.
func orderTotalValidation(sl validator.StructLevel) {
	order := sl.Current().Interface().(Order)

	sum := ItemsTotal(order.Items)
	amount := decimal.NewFromFloat(order.TotalAmount).Round(2)
	if !sum.Equal(amount) {
		sl.ReportError(order.TotalAmount, "totalAmount", "TotalAmount", "total_match_items",
			fmt.Sprintf("items sum %s != total %s", sum.StringFixed(2), amount.StringFixed(2)))
	}
}

// ItemsTotal returns the sum of price*quantity over items, rounded to cents.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.Round(2)
}
