package nestegg

import (
	"github.com/shopspring/decimal"
)

// Goal is a savings target. A goal with linked assets tracks the sum of
// their current values; a goal without links tracks total net wealth.
type Goal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	LinkedAssets []string        `json:"linkedAssets,omitempty"`
}

// Validate checks the goal record at the ingestion boundary. The strictly
// positive target is what keeps progress free of division by zero.
func (g Goal) Validate() error {
	if g.Name == "" {
		return &ValidationError{Record: "goal", Field: "name", Reason: "is required"}
	}
	if !g.TargetAmount.IsPositive() {
		return &ValidationError{Record: "goal", Field: "targetAmount", Reason: "must be positive"}
	}
	return nil
}

// GoalProgress is the computed standing of a single goal.
type GoalProgress struct {
	Goal
	CurrentAmount decimal.Decimal
	Progress      Percent // capped at 100
}

var hundred = decimal.NewFromInt(100)

// GoalProgress attributes the snapshot (and its net wealth) against every
// goal. Linked asset ids with no matching snapshot line are silently
// skipped.
func (s *Snapshot) GoalProgress(goals []Goal) []GoalProgress {
	report := make([]GoalProgress, 0, len(goals))
	netWealth := s.NetWealth()
	for _, goal := range goals {
		current := netWealth
		if len(goal.LinkedAssets) > 0 {
			current = decimal.Zero
			for _, assetID := range goal.LinkedAssets {
				if line, ok := s.Line(assetID); ok {
					current = current.Add(line.Value)
				}
			}
		}

		progress := Percent(0)
		if goal.TargetAmount.IsPositive() {
			progress = Percent(current.Div(goal.TargetAmount).Mul(hundred).InexactFloat64())
			if progress > 100 {
				progress = 100
			}
		}

		report = append(report, GoalProgress{
			Goal:          goal,
			CurrentAmount: current,
			Progress:      progress,
		})
	}
	return report
}
