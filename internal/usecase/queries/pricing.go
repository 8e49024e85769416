package queries

import (
	"context"

	"price-in-time/internal/domain/pricing"
	"price-in-time/internal/domain/timeslot"
	"price-in-time/internal/infra"
	"price-in-time/internal/pkg/clock"
	"price-in-time/internal/pkg/errs"
)

type ResolvePriceRequest struct {
	SKU          string
	ProductType  string
	BaseNumber   string
	BaseCurrency string
}

type PriceView struct {
	Number       string  `json:"number"`
	CurrencyCode string  `json:"currency_code"`
	Overridden   bool    `json:"overridden"`
	SlotID       *string `json:"slot_id,omitempty"`
	ResolvedAt   string  `json:"resolved_at"`
}

type PricingQueries interface {
	ResolvePrice(ctx context.Context, req ResolvePriceRequest) (*PriceView, error)
}

type pricingQueriesImpl struct {
	store SlotReadStore
	clock clock.Clock
}

func NewPricingQueries(store SlotReadStore, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{store: store, clock: clk}
}

// ResolvePrice returns the price to charge for the SKU at the current
// wall-clock time: the persisted slot override when the product type is
// enabled and the covering slot has a row for this SKU, the caller's base
// price otherwise.
func (q *pricingQueriesImpl) ResolvePrice(ctx context.Context, req ResolvePriceRequest) (*PriceView, error) {
	base, err := timeslot.NewPrice(req.BaseNumber, req.BaseCurrency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	at := timeslot.TimeOfDayFromClock(q.clock.Now())

	setView, err := q.store.SlotSetByProductType(ctx, req.ProductType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return baseView(base, at), nil
		}
		return nil, err
	}

	set, err := toDomainSet(setView)
	if err != nil {
		return nil, err
	}

	rows, err := q.store.PriceRowsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}

	overrides := make(pricing.OverrideTable, len(rows))
	for _, row := range rows {
		overrides[row.SlotID] = pricing.OverrideRow{
			SKU:          row.SKU,
			SlotID:       row.SlotID,
			Number:       row.Number,
			CurrencyCode: row.CurrencyCode,
		}
	}

	decision := pricing.ResolvePrice(set, overrides, at, base)

	view := &PriceView{
		Number:       decision.Price.Number(),
		CurrencyCode: decision.Price.CurrencyCode(),
		Overridden:   decision.Overridden,
		ResolvedAt:   at.String(),
	}
	if decision.Overridden {
		slotID := decision.SlotID
		view.SlotID = &slotID
	}
	return view, nil
}

func baseView(base timeslot.Price, at timeslot.TimeOfDay) *PriceView {
	return &PriceView{
		Number:       base.Number(),
		CurrencyCode: base.CurrencyCode(),
		ResolvedAt:   at.String(),
	}
}
