package pricing

import (
	"math"
	"time"
)

type LogisticsOption string

const (
	LogisticsPickup   LogisticsOption = "pickup"
	LogisticsDelivery LogisticsOption = "delivery"
	LogisticsExpress  LogisticsOption = "express"
)

// Quote is the full price breakdown for a rental period.
type Quote struct {
	DayCount      int   `json:"dayCount"`
	BasePrice     int64 `json:"basePrice"`
	ServiceFee    int64 `json:"serviceFee"`
	LogisticsFee  int64 `json:"logisticsFee"`
	DepositAmount int64 `json:"depositAmount"`
	TotalPrice    int64 `json:"totalPrice"`
}

// Policy carries the configurable fee knobs. The service fee is disabled by
// platform policy but kept configurable.
type Policy struct {
	ServiceFeePercent   float64
	ExpressLogisticsFee int64
}

func DefaultPolicy() Policy {
	return Policy{
		ServiceFeePercent:   0,
		ExpressLogisticsFee: 25000,
	}
}

// CalculateQuote computes the rental price breakdown. Missing dates yield a
// zero breakdown with the deposit echoed through. Same-day and inverted
// ranges are charged a minimum of one day; date ordering is the caller's
// concern.
func (p Policy) CalculateQuote(pricePerDay int64, start, end time.Time, logistics LogisticsOption, depositAmount int64) Quote {
	if start.IsZero() || end.IsZero() {
		return Quote{
			DepositAmount: depositAmount,
			TotalPrice:    depositAmount,
		}
	}

	dayCount := DayCount(start, end)
	basePrice := pricePerDay * int64(dayCount)
	serviceFee := int64(math.Round(float64(basePrice) * p.ServiceFeePercent / 100.0))

	var logisticsFee int64
	if logistics == LogisticsExpress {
		logisticsFee = p.ExpressLogisticsFee
	}

	return Quote{
		DayCount:      dayCount,
		BasePrice:     basePrice,
		ServiceFee:    serviceFee,
		LogisticsFee:  logisticsFee,
		DepositAmount: depositAmount,
		TotalPrice:    basePrice + serviceFee + logisticsFee + depositAmount,
	}
}

// DayCount is the whole-day difference between two dates, never less than
// one. Inputs are truncated to day granularity first, matching how
// reservations store their ranges.
func DayCount(start, end time.Time) int {
	days := int(truncateToDay(end).Sub(truncateToDay(start)).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
