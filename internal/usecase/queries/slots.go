package queries

import (
	"context"

	"price-in-time/internal/domain/timeslot"
	"price-in-time/internal/infra"
	"price-in-time/internal/pkg/errs"
)

type SlotView struct {
	ID           string `json:"id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	FreeShipping bool   `json:"free_shipping"`
	Position     int    `json:"position"`
}

type SlotSetView struct {
	ProductType string     `json:"product_type"`
	Enabled     bool       `json:"enabled"`
	Times       []SlotView `json:"times"`
}

type PriceRowView struct {
	SKU          string `json:"sku"`
	ProductType  string `json:"product_type"`
	SlotID       string `json:"slot_id"`
	Number       string `json:"number"`
	CurrencyCode string `json:"currency_code"`
}

type SlotReadStore interface {
	SlotSetByProductType(ctx context.Context, productType string) (*SlotSetView, error)
	PriceRowsBySKU(ctx context.Context, sku string) ([]*PriceRowView, error)
}

type SlotQueries interface {
	GetProductTypeSlots(ctx context.Context, productType string) (*SlotSetView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetProductTypeSlots(ctx context.Context, productType string) (*SlotSetView, error) {
	view, err := q.store.SlotSetByProductType(ctx, productType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSlotSetNotFound
		}
		return nil, err
	}
	return view, nil
}

// toDomainSet rebuilds the domain slot set from its persisted view. Rows
// that no longer parse are a data corruption, not a user error.
func toDomainSet(view *SlotSetView) (timeslot.SlotSet, error) {
	slots := make([]timeslot.Slot, 0, len(view.Times))
	for _, sv := range view.Times {
		start, err := timeslot.ParseTimeOfDay(sv.Start)
		if err != nil {
			return timeslot.SlotSet{}, errs.Wrap(err, "corrupt slot start in store")
		}
		end, err := timeslot.ParseTimeOfDay(sv.End)
		if err != nil {
			return timeslot.SlotSet{}, errs.Wrap(err, "corrupt slot end in store")
		}
		slot, err := timeslot.NewSlot(sv.ID, start, end, sv.FreeShipping, nil, sv.Position)
		if err != nil {
			return timeslot.SlotSet{}, errs.Wrap(err, "corrupt slot row in store")
		}
		slots = append(slots, slot)
	}
	return timeslot.NewSlotSet(view.ProductType, view.Enabled, slots), nil
}
