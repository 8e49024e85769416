//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB wipes all slot data between subtests. TRUNCATE cascades through
// the slot and price row tables.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE product_type_slot_sets CASCADE`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `TRUNCATE product_variation_slot_prices`)
	return err
}
