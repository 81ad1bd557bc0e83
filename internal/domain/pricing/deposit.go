package pricing

import "math"

// Deposit tiers for delivery-based rentals. Pickup rentals hold a physical ID
// document as collateral instead of money.
const (
	depositTierLowCutoff = 100_000
	depositTierMidCutoff = 500_000

	depositTierLow = 50_000
	depositTierMid = 150_000

	depositHighPercent = 0.30
)

// DynamicDeposit maps a logistics method and rental total to the required
// security deposit.
func DynamicDeposit(method LogisticsOption, totalRental int64) int64 {
	if method == LogisticsPickup {
		return 0
	}

	switch {
	case totalRental < depositTierLowCutoff:
		return depositTierLow
	case totalRental <= depositTierMidCutoff:
		return depositTierMid
	default:
		return int64(math.Round(float64(totalRental) * depositHighPercent))
	}
}
