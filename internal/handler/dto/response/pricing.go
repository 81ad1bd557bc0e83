package response

import (
	"rentmarket/internal/domain/pricing"
)

type QuoteResponse struct {
	DayCount      int   `json:"dayCount"`
	BasePrice     int64 `json:"basePrice"`
	ServiceFee    int64 `json:"serviceFee"`
	LogisticsFee  int64 `json:"logisticsFee"`
	DepositAmount int64 `json:"depositAmount"`
	TotalPrice    int64 `json:"totalPrice"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	return &QuoteResponse{
		DayCount:      q.DayCount,
		BasePrice:     q.BasePrice,
		ServiceFee:    q.ServiceFee,
		LogisticsFee:  q.LogisticsFee,
		DepositAmount: q.DepositAmount,
		TotalPrice:    q.TotalPrice,
	}
}
