package domain

import "github.com/govalues/decimal"

// Product is a catalog record as returned by the remote catalog
// service. The aggregator never mutates products; it only copies
// id, name and price into order line snapshots.
type Product struct {
	ID            uint64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int32
	CategoryName  string
}
