package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type AttributeRepo interface {
	List(ctx context.Context, dimension types.Dimension) ([]*types.AttributeCode, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*types.AttributeCode, error)
	Create(ctx context.Context, code *types.AttributeCode) (*types.AttributeCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type attributeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttributeRepo(db *gorm.DB, baseLog *logger.Logger) AttributeRepo {
	return &attributeRepo{
		db:  db,
		log: baseLog.With("repo", "AttributeRepo"),
	}
}

func (r *attributeRepo) List(ctx context.Context, dimension types.Dimension) ([]*types.AttributeCode, error) {
	var out []*types.AttributeCode
	q := r.db.WithContext(ctx).Order("code ASC")
	if dimension != "" {
		q = q.Where("dimension = ?", dimension)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *attributeRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*types.AttributeCode, error) {
	var out []*types.AttributeCode
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *attributeRepo) Create(ctx context.Context, code *types.AttributeCode) (*types.AttributeCode, error) {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

func (r *attributeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.AttributeCode{}).Error
}
