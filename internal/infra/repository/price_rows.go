package repository

import (
	"context"

	"price-in-time/internal/infra"
	"price-in-time/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PriceRowRepository struct {
	pool *pgxpool.Pool
}

func NewPriceRowRepository(pool *pgxpool.Pool) *PriceRowRepository {
	return &PriceRowRepository{pool: pool}
}

// ReplaceForSKU swaps the SKU's override rows for the given product type
// in one transaction. An empty row list clears them.
func (r *PriceRowRepository) ReplaceForSKU(ctx context.Context, sku, productType string, rows []commands.PriceRowRecord) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM product_variation_slot_prices WHERE sku = $1 AND product_type = $2`,
			sku, productType,
		); err != nil {
			return err
		}

		for _, row := range rows {
			if _, err := tx.Exec(ctx,
				`INSERT INTO product_variation_slot_prices (sku, product_type, slot_id, number, currency_code)
				 VALUES ($1, $2, $3, $4, $5)`,
				row.SKU, row.ProductType, row.SlotID, row.Number, row.CurrencyCode,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to replace price rows", err)
	}
	return nil
}
