package request

import (
	"price-in-time/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	SKU         string `json:"sku" binding:"required"`
	ProductType string `json:"product_type" binding:"required"`
}

type ShipmentRequest struct {
	Number       string `json:"number" binding:"required"`
	CurrencyCode string `json:"currency_code" binding:"required,len=3"`
}

type OrderQuoteRequest struct {
	OrderID  uuid.UUID          `json:"order_id" binding:"required"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Shipment *ShipmentRequest   `json:"shipment"`
}

func (r *OrderQuoteRequest) ToQuery() queries.OrderQuoteRequest {
	req := queries.OrderQuoteRequest{
		Items: make([]queries.OrderItemInput, len(r.Items)),
	}
	for i, item := range r.Items {
		req.Items[i] = queries.OrderItemInput{
			SKU:         item.SKU,
			ProductType: item.ProductType,
		}
	}
	if r.Shipment != nil {
		req.ShipmentNumber = r.Shipment.Number
		req.ShipmentCurrency = r.Shipment.CurrencyCode
	}
	return req
}
