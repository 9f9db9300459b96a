package nestegg

import "github.com/shopspring/decimal"

// Holding is the accumulated position of a single asset: units held, cost
// basis of those units, and income received.
//
// The cost basis follows the average-cost method: all held units share one
// blended per-unit cost, reduced proportionally on each sale. Purchase fees
// increase the cost basis; sale fees affect neither cost nor income.
type Holding struct {
	Units  decimal.Decimal
	Cost   decimal.Decimal
	Income decimal.Decimal
}

// Holding folds the asset's transactions, in chronological order, into its
// current position. An unknown asset id yields a zero holding.
//
// Selling more units than held is not rejected: units (and with them the
// position value) may go negative, mirroring the permissive ledger model.
func (l *Ledger) Holding(assetID string) Holding {
	return accumulate(l.AssetTransactions(assetID))
}

// accumulate replays transactions from a zero position. The input must be
// in chronological order.
func accumulate(txs []Transaction) Holding {
	var h Holding
	for _, tx := range txs {
		switch tx.Kind {
		case TxBuy:
			h.Units = h.Units.Add(tx.Qty)
			h.Cost = h.Cost.Add(tx.Qty.Mul(tx.Price).Add(tx.Fees))
		case TxSell:
			// Average-cost: reduce cost proportionally to the units sold.
			if h.Units.IsPositive() && h.Cost.IsPositive() {
				avgCostPerUnit := h.Cost.Div(h.Units)
				h.Cost = h.Cost.Sub(avgCostPerUnit.Mul(tx.Qty))
			}
			h.Units = h.Units.Sub(tx.Qty)
		case TxDividend:
			// qty and price form a count-times-amount pair for cash distributions.
			h.Income = h.Income.Add(tx.Qty.Mul(tx.Price))
		}
	}
	return h
}
