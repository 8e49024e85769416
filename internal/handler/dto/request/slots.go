package request

import (
	"price-in-time/internal/usecase/commands"
)

type SlotEntryRequest struct {
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	FreeShipping bool   `json:"free_shipping"`
}

type SaveSlotsRequest struct {
	Enabled bool               `json:"enabled"`
	Times   []SlotEntryRequest `json:"times" binding:"omitempty,dive"`
}

func (r *SaveSlotsRequest) ToCommand(productType string) commands.SaveSlotsRequest {
	cmd := commands.SaveSlotsRequest{
		ProductType: productType,
		Enabled:     r.Enabled,
		Times:       make([]commands.SlotEntry, len(r.Times)),
	}
	for i, entry := range r.Times {
		cmd.Times[i] = commands.SlotEntry{
			Start:        entry.Start,
			End:          entry.End,
			FreeShipping: entry.FreeShipping,
		}
	}
	return cmd
}

type SlotPriceRowRequest struct {
	SlotID       string `json:"slot_id" binding:"required,len=20,hexadecimal"`
	Number       string `json:"number" binding:"required"`
	CurrencyCode string `json:"currency_code" binding:"required,len=3"`
}

type SaveSlotPricesRequest struct {
	ProductType string                `json:"product_type" binding:"required"`
	Rows        []SlotPriceRowRequest `json:"rows" binding:"omitempty,dive"`
}

func (r *SaveSlotPricesRequest) ToInputs() []commands.SlotPriceInput {
	inputs := make([]commands.SlotPriceInput, len(r.Rows))
	for i, row := range r.Rows {
		inputs[i] = commands.SlotPriceInput{
			SlotID:       row.SlotID,
			Number:       row.Number,
			CurrencyCode: row.CurrencyCode,
		}
	}
	return inputs
}
