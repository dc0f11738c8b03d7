package domain

import (
	"strings"
	"time"
)

// Customer is read-only from the order aggregator's point of view.
type Customer struct {
	ID        uint64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// FullName builds the display name used by order projections.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
