package domain_test

import (
	"testing"

	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderLine_Subtotal(t *testing.T) {
	line := &domain.OrderLine{
		Price:    decimal.MustParse("19.99"),
		Quantity: 3,
	}

	sub, err := line.Subtotal()
	assert.NoError(t, err)
	assert.Zero(t, decimal.MustParse("59.97").Cmp(sub))
}

func TestOrder_ComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		lines    []*domain.OrderLine
		expTotal string
	}{
		{
			name:     "No lines means zero",
			lines:    nil,
			expTotal: "0",
		},
		{
			name: "Sums across lines",
			lines: []*domain.OrderLine{
				{Price: decimal.MustParse("20.00"), Quantity: 3},
				{Price: decimal.MustParse("15.50"), Quantity: 2},
			},
			expTotal: "91.00",
		},
		{
			// The same product snapped twice at different prices
			// contributes both snapshots.
			name: "Duplicate product keeps both snapshots",
			lines: []*domain.OrderLine{
				{ProductID: 11, Price: decimal.MustParse("20.00"), Quantity: 1},
				{ProductID: 11, Price: decimal.MustParse("25.00"), Quantity: 1},
			},
			expTotal: "45.00",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &domain.Order{Lines: test.lines}

			total, err := order.ComputeTotal()
			assert.NoError(t, err)
			assert.Zero(t, decimal.MustParse(test.expTotal).Cmp(total),
				"expected %s, got %s", test.expTotal, total)
		})
	}
}

func TestCustomer_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe",
		(&domain.Customer{FirstName: "Jane", LastName: "Doe"}).FullName())
	assert.Equal(t, "Jane",
		(&domain.Customer{FirstName: "Jane"}).FullName())
	assert.Equal(t, "",
		(&domain.Customer{}).FullName())
}
