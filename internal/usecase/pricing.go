package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

var oneHundred = decimal.NewFromInt(100)

// LineTotal computes a line item total exactly. No rounding happens at line
// level so many small lines cannot accumulate rounding error.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums the exact line totals of the given items.
func Subtotal(items []entities.ProposalLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal)
	}
	return total
}

// TotalPrice applies the percent discount to the subtotal and rounds half-up
// to 2 decimal places, once, at the top level.
func TotalPrice(items []entities.ProposalLineItem, discount decimal.Decimal) decimal.Decimal {
	total := Subtotal(items)
	if discount.IsPositive() {
		total = total.Sub(total.Mul(discount).Div(oneHundred))
	}
	return total.Round(2)
}
