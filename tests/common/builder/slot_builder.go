//go:build unit || e2e

package builder

import (
	"price-in-time/internal/usecase/commands"
	"price-in-time/internal/usecase/queries"
)

type SlotBuilder struct {
	ProductType string
	Enabled     bool
	Times       []SlotTimes
}

type SlotTimes struct {
	ID           string
	Start        string
	End          string
	FreeShipping bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ProductType: "flower",
		Enabled:     true,
		Times: []SlotTimes{
			{ID: "aaaa0000aaaa0000aaaa", Start: "09:00:00", End: "12:00:00"},
			{ID: "bbbb1111bbbb1111bbbb", Start: "13:00:00", End: "18:00:00", FreeShipping: true},
			{ID: "cccc2222cccc2222cccc", Start: "19:00:00", End: "22:00:00"},
		},
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildSaveRequestMap() map[string]any {
	times := make([]map[string]any, len(b.Times))
	for i, ts := range b.Times {
		times[i] = map[string]any{
			"start":         ts.Start,
			"end":           ts.End,
			"free_shipping": ts.FreeShipping,
		}
	}
	return map[string]any{
		"enabled": b.Enabled,
		"times":   times,
	}
}

func (b *SlotBuilder) BuildSaveCommand() commands.SaveSlotsRequest {
	req := commands.SaveSlotsRequest{
		ProductType: b.ProductType,
		Enabled:     b.Enabled,
		Times:       make([]commands.SlotEntry, len(b.Times)),
	}
	for i, ts := range b.Times {
		req.Times[i] = commands.SlotEntry{
			Start:        ts.Start,
			End:          ts.End,
			FreeShipping: ts.FreeShipping,
		}
	}
	return req
}

func (b *SlotBuilder) BuildSetRecord() *commands.SlotSetRecord {
	rec := &commands.SlotSetRecord{
		ProductType: b.ProductType,
		Enabled:     b.Enabled,
		Slots:       make([]commands.SlotRecord, len(b.Times)),
	}
	for i, ts := range b.Times {
		rec.Slots[i] = commands.SlotRecord{
			ID:           ts.ID,
			Start:        ts.Start,
			End:          ts.End,
			FreeShipping: ts.FreeShipping,
			Position:     i,
		}
	}
	return rec
}

func (b *SlotBuilder) BuildSetView() *queries.SlotSetView {
	view := &queries.SlotSetView{
		ProductType: b.ProductType,
		Enabled:     b.Enabled,
		Times:       make([]queries.SlotView, len(b.Times)),
	}
	for i, ts := range b.Times {
		view.Times[i] = queries.SlotView{
			ID:           ts.ID,
			Start:        ts.Start,
			End:          ts.End,
			FreeShipping: ts.FreeShipping,
			Position:     i,
		}
	}
	return view
}
