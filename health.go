package nestegg

// Deductions applied by the health scorer. Each rule fires independently,
// so the two-tier rules (concentration, debt) can stack.
const (
	penaltyConcentration   = 20 // per tier: >50% and >80% in a single asset
	penaltyDiversification = 15 // fewer than 3 distinct categories
	penaltyCashBuffer      = 10 // cash share below 5% or above 40%
	penaltyDebtLoad        = 20 // per tier: debt/asset ratio >50% and >80%
	penaltyVolatility      = 5  // crypto share above 25%
)

// HealthScore rates the portfolio composition from 0 (poor) to 100
// (perfect), subtracting fixed penalties for concentration, low
// diversification, cash imbalance, debt load, and volatile-asset
// overexposure. All ratios are taken over total non-liability asset value;
// a portfolio with zero asset value scores 0.
func (s *Snapshot) HealthScore() float64 {
	totalAssets := s.TotalAssets().InexactFloat64()
	if totalAssets == 0 {
		return 0
	}
	totalDebt := s.TotalLiabilities().InexactFloat64()

	var maxAssetValue, cashValue, cryptoValue float64
	cashSeen := false
	categories := make(map[Category]struct{})
	for _, line := range s.Lines {
		if line.Liability {
			continue
		}
		value := line.Value.InexactFloat64()
		if value > maxAssetValue {
			maxAssetValue = value
		}
		categories[line.Category] = struct{}{}
		// The cash buffer is the first CASH line: one designated
		// emergency-fund bucket, not the sum of all cash accounts.
		if line.Category == Cash && !cashSeen {
			cashValue = value
			cashSeen = true
		}
		if line.Category == Crypto {
			cryptoValue += value
		}
	}

	score := 100.0

	concentration := maxAssetValue / totalAssets
	if concentration > 0.5 {
		score -= penaltyConcentration
	}
	if concentration > 0.8 {
		score -= penaltyConcentration
	}

	if len(categories) < 3 {
		score -= penaltyDiversification
	}

	cashRatio := cashValue / totalAssets
	if cashRatio < 0.05 {
		score -= penaltyCashBuffer
	}
	if cashRatio > 0.40 {
		score -= penaltyCashBuffer
	}

	debtRatio := totalDebt / totalAssets
	if debtRatio > 0.5 {
		score -= penaltyDebtLoad
	}
	if debtRatio > 0.8 {
		score -= penaltyDebtLoad
	}

	if cryptoValue/totalAssets > 0.25 {
		score -= penaltyVolatility
	}

	if score < 0 {
		score = 0
	}
	return score
}
