package response

import (
	"price-in-time/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceResponse struct {
	SKU          string  `json:"sku"`
	Number       string  `json:"number"`
	CurrencyCode string  `json:"currency_code"`
	Overridden   bool    `json:"overridden"`
	SlotID       *string `json:"slot_id,omitempty"`
	ResolvedAt   string  `json:"resolved_at"`
}

func FromPriceView(sku string, v *queries.PriceView) *PriceResponse {
	return &PriceResponse{
		SKU:          sku,
		Number:       v.Number,
		CurrencyCode: v.CurrencyCode,
		Overridden:   v.Overridden,
		SlotID:       v.SlotID,
		ResolvedAt:   v.ResolvedAt,
	}
}

type AdjustmentResponse struct {
	Type         string `json:"type"`
	Label        string `json:"label"`
	Number       string `json:"number"`
	CurrencyCode string `json:"currency_code"`
}

type OrderQuoteResponse struct {
	OrderID      string              `json:"order_id"`
	FreeShipping bool                `json:"free_shipping"`
	SlotID       *string             `json:"slot_id,omitempty"`
	Adjustment   *AdjustmentResponse `json:"adjustment,omitempty"`
	ResolvedAt   string              `json:"resolved_at"`
}

func FromOrderQuoteView(orderID uuid.UUID, v *queries.OrderQuoteView) *OrderQuoteResponse {
	resp := &OrderQuoteResponse{
		OrderID:      orderID.String(),
		FreeShipping: v.FreeShipping,
		SlotID:       v.SlotID,
		ResolvedAt:   v.ResolvedAt,
	}
	if v.Adjustment != nil {
		resp.Adjustment = &AdjustmentResponse{
			Type:         v.Adjustment.Type,
			Label:        v.Adjustment.Label,
			Number:       v.Adjustment.Number,
			CurrencyCode: v.Adjustment.CurrencyCode,
		}
	}
	return resp
}
