package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type InventoryRepo interface {
	Create(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error)
	List(ctx context.Context) ([]*types.InventoryView, error)
	TotalValue(ctx context.Context) (float64, error)
}

type inventoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInventoryRepo(db *gorm.DB, baseLog *logger.Logger) InventoryRepo {
	return &inventoryRepo{
		db:  db,
		log: baseLog.With("repo", "InventoryRepo"),
	}
}

func (r *inventoryRepo) Create(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]*types.InventoryView, error) {
	var out []*types.InventoryView
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.*, p.name AS product_name, p.sku AS product_sku
		FROM inventory_item i
		JOIN product p ON i.product_id = p.id
		ORDER BY p.sku ASC
	`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) TotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(stock_qty * selling_price), 0)
		FROM inventory_item
	`).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
