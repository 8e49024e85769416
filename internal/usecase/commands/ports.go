package commands

import "context"

// SlotRecord is the persisted shape of one configured slot.
type SlotRecord struct {
	ID           string
	Start        string
	End          string
	FreeShipping bool
	Position     int
}

// SlotSetRecord is the persisted slot configuration of one product type.
type SlotSetRecord struct {
	ProductType string
	Enabled     bool
	Slots       []SlotRecord
}

// PriceRowRecord is one persisted per-SKU slot price row.
type PriceRowRecord struct {
	SKU          string
	ProductType  string
	SlotID       string
	Number       string
	CurrencyCode string
}

type SlotConfigRepository interface {
	FindByProductType(ctx context.Context, productType string) (*SlotSetRecord, error)
	Save(ctx context.Context, rec SlotSetRecord) error
	// DeleteProductType removes the type's slot configuration and all of
	// its per-SKU price rows in one transaction.
	DeleteProductType(ctx context.Context, productType string) error
}

type PriceRowRepository interface {
	ReplaceForSKU(ctx context.Context, sku, productType string, rows []PriceRowRecord) error
}
