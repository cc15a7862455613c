package mockdata

import (
	"fmt"
	"time"

	"chain-dashboard/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Generator produces primitive random values and domain strings.
// A zero seed draws a fresh crypto-random seed.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a generator. Pass a non-zero seed for reproducible output.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
	}
}

// Int returns a uniform integer in [min, max].
func (g *Generator) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("int range [%d, %d]: %w", min, max, model.ErrInvalidRange)
	}
	return g.faker.Number(min, max), nil
}

// Decimal returns a uniform value in [min, max] rounded to places decimals.
func (g *Generator) Decimal(min, max float64, places int32) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("decimal range [%v, %v]: %w", min, max, model.ErrInvalidRange)
	}
	v := g.faker.Float64Range(min, max)
	return decimal.NewFromFloat(v).Round(places).InexactFloat64(), nil
}

// DateBetween returns a uniform instant in [start, end].
func (g *Generator) DateBetween(start, end time.Time) (time.Time, error) {
	if start.After(end) {
		return time.Time{}, fmt.Errorf("date range [%s, %s]: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), model.ErrInvalidRange)
	}
	span := end.Sub(start)
	return start.Add(time.Duration(g.faker.Rand.Int63n(int64(span) + 1))), nil
}

// Pick returns a uniform element of list.
func (g *Generator) Pick(list []string) (string, error) {
	if len(list) == 0 {
		return "", model.ErrEmptyReferenceList
	}
	return g.faker.RandomString(list), nil
}

// Chance reports true with probability p.
func (g *Generator) Chance(p float64) bool {
	return g.faker.Rand.Float64() < p
}

// ID returns a random UUID drawn from the generator's source, so seeded
// generators repeat their ids.
func (g *Generator) ID() (uuid.UUID, error) {
	return uuid.NewRandomFromReader(g.faker.Rand)
}

// Name returns a full customer name.
func (g *Generator) Name() (string, error) {
	surname, err := g.Pick(surnames)
	if err != nil {
		return "", fmt.Errorf("surnames: %w", err)
	}
	given, err := g.Pick(givenNames)
	if err != nil {
		return "", fmt.Errorf("given names: %w", err)
	}
	return surname + " " + given, nil
}

// Phone returns an 11-digit mobile number.
func (g *Generator) Phone() (string, error) {
	prefix, err := g.Pick(phonePrefixes)
	if err != nil {
		return "", fmt.Errorf("phone prefixes: %w", err)
	}
	return prefix + g.faker.DigitN(8), nil
}

// Address returns a store address.
func (g *Generator) Address() (string, error) {
	return g.pickFrom("locations", locations)
}

// ServiceType returns a service label.
func (g *Generator) ServiceType() (string, error) {
	return g.pickFrom("service types", serviceTypes)
}

// PaymentMethod returns a payment method label.
func (g *Generator) PaymentMethod() (string, error) {
	return g.pickFrom("payment methods", paymentMethods)
}

// Staff returns a staff id and the matching staff name.
func (g *Generator) Staff() (string, string, error) {
	if len(staffNames) == 0 {
		return "", "", fmt.Errorf("staff names: %w", model.ErrEmptyReferenceList)
	}
	n, err := g.Int(1, len(staffNames))
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("staff-%d", n), staffNames[n-1], nil
}

// Birthdate returns a date between 1970 and 2005 in loc.
func (g *Generator) Birthdate(loc *time.Location) time.Time {
	year := g.faker.Number(1970, 2005)
	month := time.Month(g.faker.Number(1, 12))
	day := g.faker.Number(1, 28)
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func (g *Generator) pickFrom(name string, list []string) (string, error) {
	v, err := g.Pick(list)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func validateReferenceLists() error {
	lists := map[string][]string{
		"surnames":           surnames,
		"given names":        givenNames,
		"phone prefixes":     phonePrefixes,
		"locations":          locations,
		"service types":      serviceTypes,
		"payment methods":    paymentMethods,
		"staff names":        staffNames,
		"shop names":         shopNames,
		"shop introductions": shopIntroductions,
	}
	for name, list := range lists {
		if len(list) == 0 {
			return fmt.Errorf("%s: %w", name, model.ErrEmptyReferenceList)
		}
	}
	return nil
}
