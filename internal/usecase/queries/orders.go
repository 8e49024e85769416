package queries

import (
	"context"

	"price-in-time/internal/domain/pricing"
	"price-in-time/internal/domain/timeslot"
	"price-in-time/internal/infra"
	"price-in-time/internal/pkg/clock"
	"price-in-time/internal/pkg/errs"
)

// FreeShippingAdjustmentType labels the order adjustment emitted when a
// covering slot waives shipping.
const (
	FreeShippingAdjustmentType  = "price_in_time__free_shipping"
	FreeShippingAdjustmentLabel = "Free shipping bonus"
)

type OrderItemInput struct {
	SKU         string
	ProductType string
}

type OrderQuoteRequest struct {
	Items            []OrderItemInput
	ShipmentNumber   string
	ShipmentCurrency string
}

type AdjustmentView struct {
	Type         string `json:"type"`
	Label        string `json:"label"`
	Number       string `json:"number"`
	CurrencyCode string `json:"currency_code"`
}

type OrderQuoteView struct {
	FreeShipping bool            `json:"free_shipping"`
	SlotID       *string         `json:"slot_id,omitempty"`
	Adjustment   *AdjustmentView `json:"adjustment,omitempty"`
	ResolvedAt   string          `json:"resolved_at"`
}

type OrderQueries interface {
	Quote(ctx context.Context, req OrderQuoteRequest) (*OrderQuoteView, error)
}

type orderQueriesImpl struct {
	store SlotReadStore
	clock clock.Clock
}

func NewOrderQueries(store SlotReadStore, clk clock.Clock) OrderQueries {
	return &orderQueriesImpl{store: store, clock: clk}
}

// Quote decides the free-shipping waiver for an order. One qualifying
// line item is enough; orders without a shipment, or with a non-positive
// shipment amount, never qualify. When the waiver applies, the quote
// carries an adjustment negating the shipment amount.
func (q *orderQueriesImpl) Quote(ctx context.Context, req OrderQuoteRequest) (*OrderQuoteView, error) {
	at := timeslot.TimeOfDayFromClock(q.clock.Now())
	view := &OrderQuoteView{ResolvedAt: at.String()}

	if req.ShipmentNumber == "" {
		return view, nil
	}
	shipment, err := timeslot.NewPrice(req.ShipmentNumber, req.ShipmentCurrency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	sets := make(map[string]timeslot.SlotSet)
	items := make([]pricing.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, pricing.LineItem{SKU: item.SKU, ProductType: item.ProductType})

		if _, ok := sets[item.ProductType]; ok {
			continue
		}
		setView, serr := q.store.SlotSetByProductType(ctx, item.ProductType)
		if serr != nil {
			if infra.IsKind(serr, infra.KindNotFound) {
				continue
			}
			return nil, serr
		}
		set, derr := toDomainSet(setView)
		if derr != nil {
			return nil, derr
		}
		sets[item.ProductType] = set
	}

	decision := pricing.ResolveShipping(items, sets, at, shipment)
	if !decision.Waive {
		return view, nil
	}

	waived := shipment.Negate()
	slotID := decision.SlotID
	view.FreeShipping = true
	view.SlotID = &slotID
	view.Adjustment = &AdjustmentView{
		Type:         FreeShippingAdjustmentType,
		Label:        FreeShippingAdjustmentLabel,
		Number:       waived.Number(),
		CurrencyCode: waived.CurrencyCode(),
	}
	return view, nil
}
