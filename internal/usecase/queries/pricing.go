package queries

import (
	"context"
	"time"

	"rentmarket/internal/domain/pricing"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogisticsOption = errs.New("invalid logistics option")
	ErrQuoteDatesRequired     = errs.New("start and end dates are required")
)

// ItemInfo is the listing data a quote needs.
type ItemInfo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	PricePerDay int64
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemInfo, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, itemID uuid.UUID, start, end time.Time, logistics string) (*pricing.Quote, error)
}

type pricingQueriesImpl struct {
	items  ItemReadStore
	policy pricing.Policy
}

func NewPricingQueries(items ItemReadStore, policy pricing.Policy) PricingQueries {
	return &pricingQueriesImpl{items: items, policy: policy}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, itemID uuid.UUID, start, end time.Time, logistics string) (*pricing.Quote, error) {
	opt := pricing.LogisticsOption(logistics)
	switch opt {
	case pricing.LogisticsPickup, pricing.LogisticsDelivery, pricing.LogisticsExpress:
	default:
		return nil, ErrInvalidLogisticsOption
	}
	if start.IsZero() || end.IsZero() {
		return nil, ErrQuoteDatesRequired
	}

	item, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	// Deposit tiers key off the base rental amount before fees.
	base := item.PricePerDay * int64(pricing.DayCount(start, end))
	deposit := pricing.DynamicDeposit(opt, base)
	quote := q.policy.CalculateQuote(item.PricePerDay, start, end, opt, deposit)
	return &quote, nil
}
