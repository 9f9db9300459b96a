// Package nestegg provides the data model and computation engine for a
// personal-finance ledger. It derives portfolio valuation, return metrics,
// a heuristic health score, and goal progress from user-entered assets and
// buy/sell/dividend transactions.
//
// The core functionalities include:
//   - Ledger Management: Holding assets, transactions, and goals as plain
//     in-memory records, with transactions kept in chronological order.
//   - Cost-Basis Accounting: Average-cost accumulation of units, invested
//     capital, and income per asset.
//   - Valuation: Snapshots of the whole portfolio combining holdings with
//     current prices, separating assets from liabilities.
//   - Performance: An extended internal rate of return (XIRR) solved by
//     Newton-Raphson over the full cash-flow history.
//   - Health & Goals: A rule-based portfolio health score and goal-progress
//     attribution against target amounts.
//
// Every computation is a pure function of its inputs: the engine never
// writes, never blocks, and keeps no state between calls. Persistence lives
// in the store package, rendering in the renderer package, and the `negg`
// command-line tool ties them together.
package nestegg
