package model

import (
	"time"

	"github.com/google/uuid"
)

// Bounds for the requested population sizes. Requests outside are clamped silently.
const (
	MinUserCount  = 100
	MaxUserCount  = 100000
	MinOrderCount = 100
	MaxOrderCount = 50000

	DefaultUserCount  = 1000
	DefaultOrderCount = 500
)

// GenerationConfig holds the requested population sizes for a dataset.
type GenerationConfig struct {
	UserCount  int `json:"userCount"`
	OrderCount int `json:"orderCount"`
}

// DefaultGenerationConfig returns the configuration used before any explicit configure call.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		UserCount:  DefaultUserCount,
		OrderCount: DefaultOrderCount,
	}
}

// Clamped returns a copy with both counts forced into their allowed bounds.
func (c GenerationConfig) Clamped() GenerationConfig {
	return GenerationConfig{
		UserCount:  clamp(c.UserCount, MinUserCount, MaxUserCount),
		OrderCount: clamp(c.OrderCount, MinOrderCount, MaxOrderCount),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dataset is one complete generation of customers, orders and shops.
// It is never mutated after publication; regeneration replaces it wholesale.
type Dataset struct {
	GenerationID uuid.UUID        `json:"generationId"`
	GeneratedAt  time.Time        `json:"generatedAt"`
	Config       GenerationConfig `json:"config"`
	Customers    []Customer       `json:"customers"`
	Orders       []Order          `json:"orders"`
	Shops        []Shop           `json:"shops"`
}

// SeedResult reports how many rows a database seed wrote.
type SeedResult struct {
	GenerationID uuid.UUID `json:"generationId"`
	Customers    int       `json:"customers"`
	Orders       int       `json:"orders"`
	OrderItems   int       `json:"orderItems"`
	Shops        int       `json:"shops"`
}

// ExportResult reports where a dataset snapshot was written.
type ExportResult struct {
	GenerationID uuid.UUID `json:"generationId"`
	Location     string    `json:"location"`
}
