package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

// SequenceRepo allocates per-prefix sequence integers. Next must be a single
// atomic read-modify-write: two concurrent calls for the same prefix must
// never observe the same value. There is no rollback; a value handed out and
// never written downstream stays burned.
type SequenceRepo interface {
	Next(ctx context.Context, prefix string) (int64, error)
	Peek(ctx context.Context, prefix string) (int64, error)
}

type skuSequenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkuSequenceRepo(db *gorm.DB, baseLog *logger.Logger) SequenceRepo {
	return &skuSequenceRepo{
		db:  db,
		log: baseLog.With("repo", "SkuSequenceRepo"),
	}
}

func (r *skuSequenceRepo) Next(ctx context.Context, prefix string) (int64, error) {
	if len(prefix) != 7 {
		return 0, fmt.Errorf("prefix must be 7 characters, got %d", len(prefix))
	}
	// One statement, so the increment rides on the row lock Postgres takes
	// for the upsert. The first allocation creates the row at 0.
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sku_sequence (prefix, last_value)
		VALUES (?, 0)
		ON CONFLICT (prefix)
		DO UPDATE SET last_value = sku_sequence.last_value + 1
		RETURNING last_value
	`, prefix).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	if value > types.MaxSequence {
		return 0, types.SequenceExhaustedError(prefix)
	}
	return value, nil
}

func (r *skuSequenceRepo) Peek(ctx context.Context, prefix string) (int64, error) {
	if len(prefix) != 7 {
		return 0, fmt.Errorf("prefix must be 7 characters, got %d", len(prefix))
	}
	var row types.SkuSequence
	err := r.db.WithContext(ctx).
		Where("prefix = ?", prefix).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return 0, err
	}
	if row.Prefix == "" {
		return 0, nil
	}
	next := row.LastValue + 1
	if next > types.MaxSequence {
		return 0, types.SequenceExhaustedError(prefix)
	}
	return next, nil
}
