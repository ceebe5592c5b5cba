package clickhouse

import (
	"context"
	"fmt"
)

// insert sends rows as one batch. Nothing is sent when rows is empty.
func (r *Repository) insert(ctx context.Context, table, query string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s batch: %w", table, err)
	}

	for _, row := range rows {
		if err = batch.Append(row...); err != nil {
			return fmt.Errorf("append %s: %w", table, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
