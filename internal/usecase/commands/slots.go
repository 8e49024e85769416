package commands

import (
	"context"
	"fmt"

	"price-in-time/internal/domain/timeslot"
	"price-in-time/internal/infra"
	"price-in-time/internal/pkg/errs"
	"price-in-time/internal/pkg/idgen"
)

// SlotFieldError pins a validation failure to one slot entry of the
// submitted configuration so the caller can surface a field-level message.
type SlotFieldError struct {
	Position int
	Field    string
	Err      error
}

func (e *SlotFieldError) Error() string {
	return fmt.Sprintf("slot %d: invalid %s: %v", e.Position, e.Field, e.Err)
}

func (e *SlotFieldError) Unwrap() error {
	return e.Err
}

type SlotEntry struct {
	Start        string
	End          string
	FreeShipping bool
}

type SaveSlotsRequest struct {
	ProductType string
	Enabled     bool
	Times       []SlotEntry
}

type SaveSlotsResult struct {
	Disabled bool
	SlotIDs  []string
}

type SlotPriceInput struct {
	SlotID       string
	Number       string
	CurrencyCode string
}

type SlotCommands interface {
	SaveProductTypeSlots(ctx context.Context, req SaveSlotsRequest) (*SaveSlotsResult, error)
	SaveSkuSlotPrices(ctx context.Context, sku, productType string, rows []SlotPriceInput) error
}

type slotCommandsImpl struct {
	slotConfig SlotConfigRepository
	priceRows  PriceRowRepository
	ids        idgen.Generator
}

func NewSlotCommands(slotConfig SlotConfigRepository, priceRows PriceRowRepository, ids idgen.Generator) SlotCommands {
	return &slotCommandsImpl{
		slotConfig: slotConfig,
		priceRows:  priceRows,
		ids:        ids,
	}
}

// SaveProductTypeSlots persists a product type's slot configuration.
// Overlapping entries are rejected before anything is written. Slot ids
// are assigned once, on the first save of each position, and preserved on
// later edits. Disabling a previously enabled type deletes its
// configuration together with every price row stored for that type.
func (uc *slotCommandsImpl) SaveProductTypeSlots(ctx context.Context, req SaveSlotsRequest) (*SaveSlotsResult, error) {
	if req.ProductType == "" {
		return nil, errs.ErrProductTypeEmpty
	}

	existing, err := uc.slotConfig.FindByProductType(ctx, req.ProductType)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		existing = nil
	}

	if !req.Enabled {
		if existing != nil && existing.Enabled {
			if err := uc.slotConfig.DeleteProductType(ctx, req.ProductType); err != nil {
				return nil, err
			}
		}
		return &SaveSlotsResult{Disabled: true}, nil
	}

	slots := make([]timeslot.Slot, 0, len(req.Times))
	ids := make([]string, 0, len(req.Times))
	for i, entry := range req.Times {
		start, perr := timeslot.ParseTimeOfDay(entry.Start)
		if perr != nil {
			return nil, &SlotFieldError{Position: i, Field: "start", Err: perr}
		}
		end, perr := timeslot.ParseTimeOfDay(entry.End)
		if perr != nil {
			return nil, &SlotFieldError{Position: i, Field: "end", Err: perr}
		}

		id, ierr := uc.slotID(existing, i)
		if ierr != nil {
			return nil, ierr
		}

		slot, serr := timeslot.NewSlot(id, start, end, entry.FreeShipping, nil, i)
		if serr != nil {
			return nil, serr
		}
		slots = append(slots, slot)
		ids = append(ids, id)
	}

	set := timeslot.NewSlotSet(req.ProductType, true, slots)
	if err := set.Validate(); err != nil {
		return nil, err
	}

	rec := SlotSetRecord{
		ProductType: req.ProductType,
		Enabled:     true,
		Slots:       make([]SlotRecord, len(slots)),
	}
	for i, slot := range slots {
		rec.Slots[i] = SlotRecord{
			ID:           slot.ID(),
			Start:        slot.Start().String(),
			End:          slot.End().String(),
			FreeShipping: slot.FreeShipping(),
			Position:     slot.Position(),
		}
	}

	if err := uc.slotConfig.Save(ctx, rec); err != nil {
		return nil, err
	}
	return &SaveSlotsResult{SlotIDs: ids}, nil
}

// slotID reuses the id persisted for this position, generating a fresh
// one only for positions never saved before.
func (uc *slotCommandsImpl) slotID(existing *SlotSetRecord, position int) (string, error) {
	if existing != nil {
		for _, s := range existing.Slots {
			if s.Position == position && s.ID != "" {
				return s.ID, nil
			}
		}
	}
	return uc.ids.NewSlotID()
}

// SaveSkuSlotPrices replaces the per-SKU override rows. Every row must
// reference a slot of the SKU's product type and carry a valid price.
func (uc *slotCommandsImpl) SaveSkuSlotPrices(ctx context.Context, sku, productType string, rows []SlotPriceInput) error {
	if productType == "" {
		return errs.ErrProductTypeEmpty
	}

	set, err := uc.slotConfig.FindByProductType(ctx, productType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSlotSetNotFound
		}
		return err
	}

	known := make(map[string]struct{}, len(set.Slots))
	for _, s := range set.Slots {
		known[s.ID] = struct{}{}
	}

	records := make([]PriceRowRecord, 0, len(rows))
	for i, row := range rows {
		if _, ok := known[row.SlotID]; !ok {
			return &SlotFieldError{Position: i, Field: "slot_id", Err: errs.ErrUnknownSlotID}
		}
		if _, perr := timeslot.NewPrice(row.Number, row.CurrencyCode); perr != nil {
			return &SlotFieldError{Position: i, Field: "price", Err: perr}
		}
		records = append(records, PriceRowRecord{
			SKU:          sku,
			ProductType:  productType,
			SlotID:       row.SlotID,
			Number:       row.Number,
			CurrencyCode: row.CurrencyCode,
		})
	}

	return uc.priceRows.ReplaceForSKU(ctx, sku, productType, records)
}
