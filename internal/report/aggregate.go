package report

import (
	"go-order-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// Line is an order together with its derived financials.
type Line struct {
	model.Order
	Financials
	Loss bool `json:"loss"`
}

// Totals are the running sums over a filtered set of orders.
type Totals struct {
	Count       int             `json:"count"`
	TotalPay    decimal.Decimal `json:"totalPay"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	PaidPay     decimal.Decimal `json:"paidPay"`   // status "Sudah Dibayar"
	UnpaidPay   decimal.Decimal `json:"unpaidPay"` // status "Belum Dibayar"
}

type Summary struct {
	Lines  []Line `json:"orders"`
	Totals Totals `json:"totals"`
}

// Aggregate filters orders by r and sums their financials. Returned orders keep
// the input order; returns count toward the grand totals but neither status bucket.
func Aggregate(orders []model.Order, r DateRange) Summary {
	s := Summary{Lines: make([]Line, 0, len(orders))}

	for _, o := range orders {
		if !r.Contains(o.Day()) {
			continue
		}

		f := Calculate(o)
		s.Lines = append(s.Lines, Line{Order: o, Financials: f, Loss: f.IsLoss()})

		s.Totals.Count++
		s.Totals.TotalPay = s.Totals.TotalPay.Add(f.TotalPay)
		s.Totals.TotalProfit = s.Totals.TotalProfit.Add(f.Profit)

		switch o.Status {
		case model.StatusPaid:
			s.Totals.PaidPay = s.Totals.PaidPay.Add(f.TotalPay)
		case model.StatusUnpaid:
			s.Totals.UnpaidPay = s.Totals.UnpaidPay.Add(f.TotalPay)
		}
	}

	return s
}
