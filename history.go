package nestegg

import "github.com/shopspring/decimal"

// WealthPoint approximates the wealth at the end of a month by the
// cumulative invested capital up to that month. This is not a
// mark-to-market reconstruction: historical prices are unknown, so buys add
// qty*price, sells subtract it, and fees and dividends are left out.
type WealthPoint struct {
	Month    string // "YYYY-MM"
	Invested decimal.Decimal
}

// WealthHistory returns the cumulative invested capital as a monthly
// series, ascending. An empty ledger yields an empty series.
func (l *Ledger) WealthHistory() []WealthPoint {
	var points []WealthPoint
	invested := decimal.Zero
	for _, tx := range l.transactions {
		switch tx.Kind {
		case TxBuy:
			invested = invested.Add(tx.Qty.Mul(tx.Price))
		case TxSell:
			invested = invested.Sub(tx.Qty.Mul(tx.Price))
		}

		// A dividend still marks its month, with the running total unchanged.
		month := tx.Date.MonthKey()
		if n := len(points); n > 0 && points[n-1].Month == month {
			points[n-1].Invested = invested
		} else {
			points = append(points, WealthPoint{Month: month, Invested: invested})
		}
	}
	return points
}
