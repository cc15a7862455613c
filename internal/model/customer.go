package model

import "time"

// Gender codes as stored on a customer profile.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// Customer represents an end customer of the chain.
type Customer struct {
	ID                string     `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Phone             string     `json:"phone" db:"phone"`
	Email             string     `json:"email" db:"email"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
	LastVisit         *time.Time `json:"lastVisit,omitempty" db:"last_visit"`
	TotalSpent        float64    `json:"totalSpent" db:"total_spent"`
	LoyaltyPoints     int        `json:"loyaltyPoints" db:"loyalty_points"`
	PreferredLocation string     `json:"preferredLocation,omitempty" db:"preferred_location"`
	Gender            int        `json:"gender" db:"gender"`
	Birthdate         *time.Time `json:"birthdate,omitempty" db:"birthdate"`
	Age               int        `json:"age" db:"age"`
}
