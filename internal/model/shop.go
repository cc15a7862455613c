package model

import "time"

// ShopStatus is the operating state of a shop.
type ShopStatus int

const (
	ShopStatusInactive    ShopStatus = 0
	ShopStatusActive      ShopStatus = 1
	ShopStatusMaintenance ShopStatus = 2
	ShopStatusClosed      ShopStatus = 3
)

// String returns the lower-case status label.
func (s ShopStatus) String() string {
	switch s {
	case ShopStatusInactive:
		return "inactive"
	case ShopStatusActive:
		return "active"
	case ShopStatusMaintenance:
		return "maintenance"
	case ShopStatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Shop represents a physical location of the chain.
type Shop struct {
	ID        int        `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Address   string     `json:"address" db:"address"`
	CoverImg  string     `json:"coverImg" db:"cover_img"`
	Longitude float64    `json:"longitude" db:"longitude"`
	Latitude  float64    `json:"latitude" db:"latitude"`
	OpenDate  time.Time  `json:"openDate" db:"open_date"`
	Introduce string     `json:"introduce" db:"introduce"`
	Status    ShopStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
