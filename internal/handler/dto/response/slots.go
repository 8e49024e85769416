package response

import (
	"price-in-time/internal/usecase/commands"
	"price-in-time/internal/usecase/queries"
)

type SlotResponse struct {
	ID           string `json:"id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	FreeShipping bool   `json:"free_shipping"`
	Position     int    `json:"position"`
}

type SlotSetResponse struct {
	ProductType string         `json:"product_type"`
	Enabled     bool           `json:"enabled"`
	Times       []SlotResponse `json:"times"`
}

func FromSlotSetView(v *queries.SlotSetView) *SlotSetResponse {
	resp := &SlotSetResponse{
		ProductType: v.ProductType,
		Enabled:     v.Enabled,
		Times:       make([]SlotResponse, len(v.Times)),
	}
	for i, sv := range v.Times {
		resp.Times[i] = SlotResponse{
			ID:           sv.ID,
			Start:        sv.Start,
			End:          sv.End,
			FreeShipping: sv.FreeShipping,
			Position:     sv.Position,
		}
	}
	return resp
}

type SaveSlotsResponse struct {
	ProductType string   `json:"product_type"`
	Disabled    bool     `json:"disabled,omitempty"`
	SlotIDs     []string `json:"slot_ids,omitempty"`
}

func FromSaveSlotsResult(productType string, result *commands.SaveSlotsResult) *SaveSlotsResponse {
	return &SaveSlotsResponse{
		ProductType: productType,
		Disabled:    result.Disabled,
		SlotIDs:     result.SlotIDs,
	}
}
