package repository

import (
	"context"

	"price-in-time/internal/infra"
	"price-in-time/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotConfigRepository struct {
	pool *pgxpool.Pool
}

func NewSlotConfigRepository(pool *pgxpool.Pool) *SlotConfigRepository {
	return &SlotConfigRepository{pool: pool}
}

func (r *SlotConfigRepository) FindByProductType(ctx context.Context, productType string) (*commands.SlotSetRecord, error) {
	rec := &commands.SlotSetRecord{ProductType: productType}

	err := r.pool.QueryRow(ctx,
		`SELECT enabled FROM product_type_slot_sets WHERE product_type = $1`,
		productType,
	).Scan(&rec.Enabled)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot configuration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot configuration", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, start_time, end_time, free_shipping, position
		   FROM product_type_slots
		  WHERE product_type = $1
		  ORDER BY position`,
		productType,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slots", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot commands.SlotRecord
		if err := rows.Scan(&slot.ID, &slot.Start, &slot.End, &slot.FreeShipping, &slot.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		rec.Slots = append(rec.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return rec, nil
}

// Save upserts the set row and its slots. Slots keep their ids across
// edits, so existing rows are updated in place and only rows whose id is
// no longer configured get removed (their price rows cascade away).
func (r *SlotConfigRepository) Save(ctx context.Context, rec commands.SlotSetRecord) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_type_slot_sets (product_type, enabled, updated_at)
			 VALUES ($1, $2, now())
			 ON CONFLICT (product_type)
			 DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = now()`,
			rec.ProductType, rec.Enabled,
		)
		if err != nil {
			return err
		}

		keep := make([]string, 0, len(rec.Slots))
		for _, slot := range rec.Slots {
			keep = append(keep, slot.ID)
			_, err = tx.Exec(ctx,
				`INSERT INTO product_type_slots (id, product_type, start_time, end_time, free_shipping, position)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 ON CONFLICT (id)
				 DO UPDATE SET start_time = EXCLUDED.start_time,
				               end_time = EXCLUDED.end_time,
				               free_shipping = EXCLUDED.free_shipping,
				               position = EXCLUDED.position`,
				slot.ID, rec.ProductType, slot.Start, slot.End, slot.FreeShipping, slot.Position,
			)
			if err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM product_type_slots
			  WHERE product_type = $1 AND NOT (id = ANY($2))`,
			rec.ProductType, keep,
		)
		return err
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save slot configuration", err)
	}
	return nil
}

// DeleteProductType removes the configuration and every price row stored
// for the type in one transaction.
func (r *SlotConfigRepository) DeleteProductType(ctx context.Context, productType string) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM product_variation_slot_prices WHERE product_type = $1`,
			productType,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`DELETE FROM product_type_slot_sets WHERE product_type = $1`,
			productType,
		)
		return err
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete product type configuration", err)
	}
	return nil
}
