// Package pricing derives checkout-time price and shipping decisions from
// a product type's slot configuration. All functions are pure: the caller
// supplies the slot sets, the persisted override rows and the instant.
package pricing

import (
	"price-in-time/internal/domain/timeslot"
)

// OverrideRow is one persisted per-SKU price row, keyed by the slot id it
// belongs to.
type OverrideRow struct {
	SKU          string
	SlotID       string
	Number       string
	CurrencyCode string
}

// OverrideTable maps slot id to the row supplied by the external store
// for a single SKU.
type OverrideTable map[string]OverrideRow

// PriceDecision is either "use the base catalog price" or an override
// tied to the slot that produced it.
type PriceDecision struct {
	Price      timeslot.Price
	Overridden bool
	SlotID     string
}

// ShippingDecision reports whether the order's shipping cost is waived
// and which slot qualified it.
type ShippingDecision struct {
	Waive  bool
	SlotID string
}

// LineItem is the slice of an order line this package cares about.
type LineItem struct {
	SKU         string
	ProductType string
}

// ResolvePrice applies the slot covering the instant to a SKU's override
// table. The base price wins when the product type is disabled, when the
// SKU has no override rows, when no slot covers the instant, or when the
// covering slot has no row.
func ResolvePrice(set timeslot.SlotSet, overrides OverrideTable, at timeslot.TimeOfDay, base timeslot.Price) PriceDecision {
	if !set.Enabled() || len(overrides) == 0 {
		return PriceDecision{Price: base}
	}

	slot, ok := set.ResolveAt(at)
	if !ok {
		return PriceDecision{Price: base}
	}

	row, ok := overrides[slot.ID()]
	if !ok {
		return PriceDecision{Price: base}
	}

	price, err := timeslot.NewPrice(row.Number, row.CurrencyCode)
	if err != nil {
		return PriceDecision{Price: base}
	}
	return PriceDecision{Price: price, Overridden: true, SlotID: slot.ID()}
}

// ResolveShipping walks the order's line items and waives shipping as
// soon as one item's product type has a covering slot flagged for free
// shipping. Disabled types are inert. No waiver applies when the
// shipment amount is not positive.
func ResolveShipping(items []LineItem, sets map[string]timeslot.SlotSet, at timeslot.TimeOfDay, shipmentAmount timeslot.Price) ShippingDecision {
	if !shipmentAmount.IsPositive() {
		return ShippingDecision{}
	}

	for _, item := range items {
		set, ok := sets[item.ProductType]
		if !ok || !set.Enabled() {
			continue
		}
		slot, ok := set.ResolveAt(at)
		if ok && slot.FreeShipping() {
			return ShippingDecision{Waive: true, SlotID: slot.ID()}
		}
	}

	return ShippingDecision{}
}
