package readstore

import (
	"context"
	"strings"

	"price-in-time/internal/infra"
	"price-in-time/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{pool: pool}
}

func (s *SlotReadStore) SlotSetByProductType(ctx context.Context, productType string) (*queries.SlotSetView, error) {
	view := &queries.SlotSetView{ProductType: productType}

	err := s.pool.QueryRow(ctx,
		`SELECT enabled FROM product_type_slot_sets WHERE product_type = $1`,
		productType,
	).Scan(&view.Enabled)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot configuration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read slot configuration", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, start_time, end_time, free_shipping, position
		   FROM product_type_slots
		  WHERE product_type = $1
		  ORDER BY position`,
		productType,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slots", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sv queries.SlotView
		if err := rows.Scan(&sv.ID, &sv.Start, &sv.End, &sv.FreeShipping, &sv.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		// CHAR columns come back space-padded when ids were migrated in
		// shorter than the column width.
		sv.ID = strings.TrimRight(sv.ID, " ")
		view.Times = append(view.Times, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return view, nil
}

func (s *SlotReadStore) PriceRowsBySKU(ctx context.Context, sku string) ([]*queries.PriceRowView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT sku, product_type, slot_id, number, currency_code
		   FROM product_variation_slot_prices
		  WHERE sku = $1`,
		sku,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read price rows", err)
	}
	defer rows.Close()

	var result []*queries.PriceRowView
	for rows.Next() {
		var rv queries.PriceRowView
		if err := rows.Scan(&rv.SKU, &rv.ProductType, &rv.SlotID, &rv.Number, &rv.CurrencyCode); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price row", err)
		}
		rv.SlotID = strings.TrimRight(rv.SlotID, " ")
		rv.CurrencyCode = strings.TrimRight(rv.CurrencyCode, " ")
		result = append(result, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate price rows", err)
	}

	return result, nil
}
