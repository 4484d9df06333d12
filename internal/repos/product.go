package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, product *types.Product) (*types.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Product, error)
	List(ctx context.Context) ([]*types.ProductView, error)
	Count(ctx context.Context) (int64, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{
		db:  db,
		log: baseLog.With("repo", "ProductRepo"),
	}
}

func (r *productRepo) Create(ctx context.Context, product *types.Product) (*types.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Product, error) {
	var product types.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == uuid.Nil {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepo) List(ctx context.Context) ([]*types.ProductView, error) {
	var out []*types.ProductView
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.*,
		       fv.code AS face_value_code, cat.code AS category_code, mat.code AS material_code,
		       mot.code AS motif_code, fin.code AS finding_code, loc.code AS locking_code,
		       sz.code AS size_code,
		       fv.name AS face_value_name, cat.name AS category_name, mat.name AS material_name,
		       mot.name AS motif_name, fin.name AS finding_name, loc.name AS locking_name,
		       sz.name AS size_name
		FROM product p
		JOIN sku_attribute fv ON p.face_value_id = fv.id
		JOIN sku_attribute cat ON p.category_id = cat.id
		JOIN sku_attribute mat ON p.material_id = mat.id
		JOIN sku_attribute mot ON p.motif_id = mot.id
		JOIN sku_attribute fin ON p.finding_id = fin.id
		JOIN sku_attribute loc ON p.locking_id = loc.id
		JOIN sku_attribute sz ON p.size_id = sz.id
		ORDER BY p.created_at DESC
	`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&types.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
