package nestegg

import "github.com/shopspring/decimal"

// Line is a single row of a portfolio snapshot: an asset together with its
// accumulated holding and valuation. Lines are derived values, never
// persisted.
type Line struct {
	Asset
	Holding
	Value          decimal.Decimal // Units * CurrentPrice
	AbsoluteReturn decimal.Decimal // Value - Cost
	ReturnPct      Percent         // 0 whenever Cost is 0
	Liability      bool            // true iff Category == Debt
}

// Snapshot is the portfolio standing on a given date: one line per asset,
// assets and liabilities interleaved. It is an explicit immutable value;
// the health scorer, the XIRR terminal flow, and goal progress all read
// from it rather than from any shared total.
type Snapshot struct {
	Date  Date
	Lines []Line
}

// Snapshot values every asset of the ledger on the given date, using the
// recorded current prices. Transactions referring to unknown assets
// contribute to no line.
func (l *Ledger) Snapshot(on Date) *Snapshot {
	s := &Snapshot{Date: on, Lines: make([]Line, 0, len(l.assets))}
	for _, asset := range l.assets {
		holding := l.Holding(asset.ID)
		value := holding.Units.Mul(asset.CurrentPrice)
		absolute := value.Sub(holding.Cost)

		var returnPct Percent
		if holding.Cost.IsPositive() {
			returnPct = Percent(absolute.Div(holding.Cost).Mul(hundred).InexactFloat64())
		}

		s.Lines = append(s.Lines, Line{
			Asset:          asset,
			Holding:        holding,
			Value:          value,
			AbsoluteReturn: absolute,
			ReturnPct:      returnPct,
			Liability:      asset.IsLiability(),
		})
	}
	return s
}

// Line returns the snapshot line for the given asset id.
func (s *Snapshot) Line(assetID string) (Line, bool) {
	for _, line := range s.Lines {
		if line.ID == assetID {
			return line, true
		}
	}
	return Line{}, false
}

// TotalAssets returns the summed current value of all non-liability lines.
func (s *Snapshot) TotalAssets() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		if !line.Liability {
			total = total.Add(line.Value)
		}
	}
	return total
}

// TotalLiabilities returns the summed current value of all liability lines.
// Liabilities are valued as positive magnitudes.
func (s *Snapshot) TotalLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		if line.Liability {
			total = total.Add(line.Value)
		}
	}
	return total
}

// NetWealth returns total asset value minus total liability value.
func (s *Snapshot) NetWealth() decimal.Decimal {
	return s.TotalAssets().Sub(s.TotalLiabilities())
}

// TotalIncome returns the summed income of all lines.
func (s *Snapshot) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Income)
	}
	return total
}
