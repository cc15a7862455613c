package mockdata

import (
	"fmt"
	"time"

	"chain-dashboard/internal/model"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// FactoryOptions holds the value ranges entity factories draw from.
type FactoryOptions struct {
	HistoryDays           int
	ShopCount             int
	ShopOpenSpanDays      int
	TotalSpentMax         float64
	LoyaltyPointsMax      int
	LastVisitProbability  float64
	ItemsMin              int
	ItemsMax              int
	ItemPriceMin          float64
	ItemPriceMax          float64
	QuantityMin           int
	QuantityMax           int
	LongitudeMin          float64
	LongitudeMax          float64
	LatitudeMin           float64
	LatitudeMax           float64
	ActiveShopProbability float64
}

// DefaultFactoryOptions returns the standard generation ranges.
func DefaultFactoryOptions() FactoryOptions {
	return FactoryOptions{
		HistoryDays:           365,
		ShopCount:             10,
		ShopOpenSpanDays:      1000,
		TotalSpentMax:         10000,
		LoyaltyPointsMax:      2000,
		LastVisitProbability:  0.7,
		ItemsMin:              1,
		ItemsMax:              5,
		ItemPriceMin:          50,
		ItemPriceMax:          500,
		QuantityMin:           1,
		QuantityMax:           3,
		LongitudeMin:          116.0,
		LongitudeMax:          116.5,
		LatitudeMin:           39.5,
		LatitudeMax:           40.0,
		ActiveShopProbability: 0.8,
	}
}

// Validate checks that every range is well formed.
func (o FactoryOptions) Validate() error {
	intRanges := []struct {
		name     string
		min, max int
	}{
		{"history days", 0, o.HistoryDays},
		{"shop count", 0, o.ShopCount},
		{"shop open span days", 0, o.ShopOpenSpanDays},
		{"loyalty points", 0, o.LoyaltyPointsMax},
		{"items per order", o.ItemsMin, o.ItemsMax},
		{"quantity", o.QuantityMin, o.QuantityMax},
	}
	for _, r := range intRanges {
		if r.min > r.max {
			return fmt.Errorf("%s [%d, %d]: %w", r.name, r.min, r.max, model.ErrInvalidRange)
		}
	}

	floatRanges := []struct {
		name     string
		min, max float64
	}{
		{"total spent", 0, o.TotalSpentMax},
		{"item price", o.ItemPriceMin, o.ItemPriceMax},
		{"longitude", o.LongitudeMin, o.LongitudeMax},
		{"latitude", o.LatitudeMin, o.LatitudeMax},
		{"last visit probability", 0, o.LastVisitProbability},
		{"active shop probability", 0, o.ActiveShopProbability},
	}
	for _, r := range floatRanges {
		if r.min > r.max {
			return fmt.Errorf("%s [%v, %v]: %w", r.name, r.min, r.max, model.ErrInvalidRange)
		}
	}

	if o.ItemsMin < 1 || o.QuantityMin < 1 || o.ItemPriceMin < 0 {
		return fmt.Errorf("order items need at least one unit at a non-negative price: %w", model.ErrInvalidRange)
	}

	return nil
}

// Factory creates customers, orders and shops from a Generator.
type Factory struct {
	gen  *Generator
	opts FactoryOptions
}

// NewFactory validates opts and returns a factory.
func NewFactory(gen *Generator, opts FactoryOptions) (*Factory, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := validateReferenceLists(); err != nil {
		return nil, err
	}
	return &Factory{gen: gen, opts: opts}, nil
}

// Customers creates count customers with ids user-1..user-count.
func (f *Factory) Customers(count int, now time.Time) ([]model.Customer, error) {
	start := now.Add(-time.Duration(f.opts.HistoryDays) * day)
	customers := make([]model.Customer, 0, count)
	d := &draw{gen: f.gen}

	for i := 0; i < count; i++ {
		createdAt := d.date(start, now)
		updatedAt := d.date(createdAt, now)
		birthdate := f.gen.Birthdate(now.Location())
		phone := d.str(f.gen.Phone)

		c := model.Customer{
			ID:                fmt.Sprintf("user-%d", i+1),
			Name:              d.str(f.gen.Name),
			Phone:             phone,
			Email:             phone + "@example.com",
			CreatedAt:         createdAt,
			UpdatedAt:         updatedAt,
			TotalSpent:        d.decimal(0, f.opts.TotalSpentMax, 2),
			LoyaltyPoints:     d.number(0, f.opts.LoyaltyPointsMax),
			PreferredLocation: d.str(f.gen.Address),
			Gender:            d.number(model.GenderUnknown, model.GenderFemale),
			Birthdate:         &birthdate,
			Age:               ageAt(birthdate, now),
		}

		if f.gen.Chance(f.opts.LastVisitProbability) {
			lastVisit := d.date(createdAt, now)
			c.LastVisit = &lastVisit
		}

		if d.err != nil {
			return nil, fmt.Errorf("customer %d: %w", i+1, d.err)
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// Orders creates count orders placed by customers drawn uniformly from customers.
func (f *Factory) Orders(count int, customers []model.Customer, now time.Time) ([]model.Order, error) {
	if len(customers) == 0 {
		return nil, model.ErrEmptyPopulation
	}

	start := now.Add(-time.Duration(f.opts.HistoryDays) * day)
	stamp := now.Format("0601021504")
	orders := make([]model.Order, 0, count)
	d := &draw{gen: f.gen}

	for i := 0; i < count; i++ {
		customer := customers[d.number(0, len(customers)-1)]
		items := f.orderItems(d)
		staffID, staffName := d.staff()

		o := model.Order{
			ID:            fmt.Sprintf("ORD%s%05d", stamp, i+1),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			TotalAmount:   model.ItemsTotal(items).InexactFloat64(),
			OrderDate:     d.date(start, now),
			Status:        statusFromCode(d.number(0, 3)),
			Items:         items,
			PaymentMethod: d.str(f.gen.PaymentMethod),
			Location:      d.str(f.gen.Address),
			StaffID:       staffID,
			StaffName:     staffName,
		}

		if d.err != nil {
			return nil, fmt.Errorf("order %d: %w", i+1, d.err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (f *Factory) orderItems(d *draw) []model.OrderItem {
	n := d.number(f.opts.ItemsMin, f.opts.ItemsMax)
	items := make([]model.OrderItem, 0, n)
	for j := 0; j < n; j++ {
		service := d.str(f.gen.ServiceType)
		items = append(items, model.OrderItem{
			ID:          d.id(),
			Name:        service,
			ServiceType: service,
			Price:       d.decimal(f.opts.ItemPriceMin, f.opts.ItemPriceMax, 2),
			Quantity:    d.number(f.opts.QuantityMin, f.opts.QuantityMax),
		})
	}
	return items
}

// Shops creates the fixed set of shops, all opened before the history window.
func (f *Factory) Shops(now time.Time) ([]model.Shop, error) {
	windowStart := now.Add(-time.Duration(f.opts.HistoryDays) * day)
	earliest := windowStart.Add(-time.Duration(f.opts.ShopOpenSpanDays) * day)
	shops := make([]model.Shop, 0, f.opts.ShopCount)
	d := &draw{gen: f.gen}

	for i := 0; i < f.opts.ShopCount; i++ {
		// Truncating to the date keeps the open date strictly before the window.
		opened := d.date(earliest, windowStart.Add(-time.Nanosecond))
		openDate := time.Date(opened.Year(), opened.Month(), opened.Day(), 0, 0, 0, 0, now.Location())
		createdAt := d.date(openDate, now)
		updatedAt := d.date(createdAt, now)

		status := model.ShopStatusActive
		if !f.gen.Chance(f.opts.ActiveShopProbability) {
			status = []model.ShopStatus{
				model.ShopStatusInactive, model.ShopStatusMaintenance, model.ShopStatusClosed,
			}[d.number(0, 2)]
		}

		s := model.Shop{
			ID:        i + 1,
			Name:      shopNames[i%len(shopNames)],
			Address:   locations[i%len(locations)],
			CoverImg:  fmt.Sprintf("https://picsum.photos/800/600?random=%d", i+1),
			Longitude: d.decimal(f.opts.LongitudeMin, f.opts.LongitudeMax, 6),
			Latitude:  d.decimal(f.opts.LatitudeMin, f.opts.LatitudeMax, 6),
			OpenDate:  openDate,
			Introduce: shopIntroductions[i%len(shopIntroductions)],
			Status:    status,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}

		if d.err != nil {
			return nil, fmt.Errorf("shop %d: %w", i+1, d.err)
		}
		shops = append(shops, s)
	}

	return shops, nil
}

// draw runs generator calls and keeps the first error. Once an error is
// recorded every further call returns a zero value.
type draw struct {
	gen *Generator
	err error
}

func (d *draw) number(min, max int) int {
	if d.err != nil {
		return min
	}
	v, err := d.gen.Int(min, max)
	d.err = err
	return v
}

func (d *draw) decimal(min, max float64, places int32) float64 {
	if d.err != nil {
		return 0
	}
	v, err := d.gen.Decimal(min, max, places)
	d.err = err
	return v
}

func (d *draw) date(start, end time.Time) time.Time {
	if d.err != nil {
		return start
	}
	v, err := d.gen.DateBetween(start, end)
	d.err = err
	return v
}

func (d *draw) str(fn func() (string, error)) string {
	if d.err != nil {
		return ""
	}
	v, err := fn()
	d.err = err
	return v
}

func (d *draw) staff() (string, string) {
	if d.err != nil {
		return "", ""
	}
	id, name, err := d.gen.Staff()
	d.err = err
	return id, name
}

func (d *draw) id() uuid.UUID {
	if d.err != nil {
		return uuid.Nil
	}
	v, err := d.gen.ID()
	d.err = err
	return v
}

// statusFromCode maps a uniform code in [0, 3] to a status; completed is twice as likely.
func statusFromCode(code int) model.OrderStatus {
	switch code {
	case 0:
		return model.OrderStatusPending
	case 1, 2:
		return model.OrderStatusCompleted
	default:
		return model.OrderStatusCanceled
	}
}

func ageAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() || (now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}
