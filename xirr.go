package nestegg

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

const (
	xirrGuess         = 0.10
	xirrMaxIterations = 100
	xirrTolerance     = 1e-6
	daysPerYear       = 365.0
)

// cashflow is a dated cash movement: negative for money paid in, positive
// for money received.
type cashflow struct {
	date   Date
	amount float64
}

// XIRR estimates the annualized internal rate of return implied by the full
// transaction history plus a terminal synthetic inflow of netWealth on the
// given date. Every BUY is an outflow of qty*price+fees; every SELL or
// DIVIDEND is an inflow of qty*price+fees. Note that sale fees enter the
// cash-flow schedule even though the cost-basis accumulator ignores them;
// the two policies are intentionally kept distinct.
//
// The rate is returned as a percentage. ok is false when the schedule has
// fewer than two flows or the solver does not converge; callers display 0
// in that case.
func (l *Ledger) XIRR(on Date, netWealth decimal.Decimal) (rate Percent, ok bool) {
	flows := make([]cashflow, 0, len(l.transactions)+1)
	for _, tx := range l.transactions {
		amount := tx.GrossAmount().InexactFloat64()
		if tx.Kind == TxBuy {
			amount = -amount
		}
		flows = append(flows, cashflow{date: tx.Date, amount: amount})
	}
	flows = append(flows, cashflow{date: on, amount: netWealth.InexactFloat64()})

	if len(flows) < 2 {
		return 0, false
	}

	r, ok := solveRate(flows)
	if !ok || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return Percent(r * 100), true
}

// solveRate finds the root of the net-present-value function by
// Newton-Raphson iteration:
//
//	f(r)  = Σ cf_i / (1+r)^t_i
//	f'(r) = Σ -t_i*cf_i / (1+r)^(t_i+1)
//
// where t_i is the time in 365-day years from the earliest flow.
func solveRate(flows []cashflow) (float64, bool) {
	slices.SortStableFunc(flows, func(a, b cashflow) int {
		return a.date.Sub(b.date)
	})
	start := flows[0].date

	r := xirrGuess
	for i := 0; i < xirrMaxIterations; i++ {
		var f, derivative float64
		for _, cf := range flows {
			years := float64(cf.date.Sub(start)) / daysPerYear
			discount := math.Pow(1+r, years)
			f += cf.amount / discount
			derivative -= years * cf.amount / (discount * (1 + r))
		}

		next := r - f/derivative
		if math.Abs(next-r) < xirrTolerance {
			return next, true
		}
		r = next
	}
	return 0, false
}
