// Package report holds the order arithmetic: per-order financials and
// date-filtered aggregation. Nothing here touches storage.
package report

import (
	"go-order-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// Financials are the derived money values of a single order.
type Financials struct {
	TotalSale decimal.Decimal `json:"totalSale"` // priceJual * quantity
	TotalPay  decimal.Decimal `json:"totalPay"`  // priceModal * quantity, owed to the supplier
	Profit    decimal.Decimal `json:"profit"`
}

// IsLoss reports a negative profit.
func (f Financials) IsLoss() bool {
	return f.Profit.IsNegative()
}

// Calculate derives the financials of o from its resolved product.
// An order without a loaded product is priced at zero.
func Calculate(o model.Order) Financials {
	qty := decimal.NewFromInt(int64(o.Quantity))

	var priceJual, priceModal decimal.Decimal
	if o.Product != nil {
		priceJual = o.Product.PriceJual
		priceModal = o.Product.PriceModal
	}

	totalSale := priceJual.Mul(qty)
	totalPay := priceModal.Mul(qty)

	return Financials{
		TotalSale: totalSale,
		TotalPay:  totalPay,
		Profit:    totalSale.Sub(o.Discount).Sub(o.Admin).Sub(totalPay),
	}
}
