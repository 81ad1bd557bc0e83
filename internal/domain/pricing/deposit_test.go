//go:build unit

package pricing_test

import (
	"testing"

	"rentmarket/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestDynamicDeposit(t *testing.T) {
	cases := []struct {
		name        string
		method      pricing.LogisticsOption
		totalRental int64
		want        int64
	}{
		{"pickup always zero", pricing.LogisticsPickup, 1_000_000, 0},
		{"pickup zero even for small totals", pricing.LogisticsPickup, 10_000, 0},
		{"delivery low tier", pricing.LogisticsDelivery, 50_000, 50_000},
		{"delivery just below low cutoff", pricing.LogisticsDelivery, 99_999, 50_000},
		{"delivery mid tier lower bound", pricing.LogisticsDelivery, 100_000, 150_000},
		{"delivery mid tier", pricing.LogisticsDelivery, 300_000, 150_000},
		{"delivery mid tier upper bound inclusive", pricing.LogisticsDelivery, 500_000, 150_000},
		{"delivery high tier is 30 percent", pricing.LogisticsDelivery, 1_000_000, 300_000},
		{"delivery high tier rounds", pricing.LogisticsDelivery, 500_001, 150_000},
		{"express follows delivery tiers", pricing.LogisticsExpress, 300_000, 150_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.DynamicDeposit(tc.method, tc.totalRental))
		})
	}
}
