package repository

import (
	"context"

	"gorm.io/gorm"
)

// replaceAll reloads a replaceable mirror table inside one transaction:
// delete every existing row, then insert the fetched set. On any failure the
// transaction rolls back and the table keeps its pre-sync content. An empty
// fetched set is a no-op so a transient empty response never wipes data the
// device still needs offline.
//
// Cancellation is honored at row boundaries; a cancelled batch rolls back
// entirely.
func replaceAll[T any](ctx context.Context, db *gorm.DB, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
