// Package idgen allocates decimal string ids for tables keyed by text ids.
package idgen

import (
	"context"
	"fmt"
	"strconv"

	"grubdash/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// Next takes a transaction-scoped advisory lock on lockKey and returns one more than
// the largest decimal id in table. Ids that are not decimal numbers are ignored;
// they can never equal a generated id.
//
// Outside a transaction the lock is released as soon as the statement ends.
func Next(ctx context.Context, db *gorm.DB, table string, lockKey int64) (kernel.ID, error) {
	if err := db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", lockKey).Error; err != nil {
		return kernel.ID{}, err
	}

	var last int64
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX(id::bigint), 0) FROM %s WHERE id ~ '^[0-9]{1,18}$'`, table,
	)
	if err := db.WithContext(ctx).Raw(query).Scan(&last).Error; err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(strconv.FormatInt(last+1, 10))
}
