package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type JobCardRepo interface {
	Create(ctx context.Context, card *types.JobCard) (*types.JobCard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.JobCard, error)
	List(ctx context.Context) ([]*types.JobCardView, error)
	// UpdateStatusCAS writes the target status only if the persisted status
	// still equals from. Returns false when the guard failed.
	UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to types.JobCardStatus) (bool, error)
	CountByStatus(ctx context.Context, statuses ...types.JobCardStatus) (int64, error)
}

type jobCardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJobCardRepo(db *gorm.DB, baseLog *logger.Logger) JobCardRepo {
	return &jobCardRepo{
		db:  db,
		log: baseLog.With("repo", "JobCardRepo"),
	}
}

func (r *jobCardRepo) Create(ctx context.Context, card *types.JobCard) (*types.JobCard, error) {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (r *jobCardRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.JobCard, error) {
	var card types.JobCard
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&card).Error
	if err != nil {
		return nil, err
	}
	if card.ID == uuid.Nil {
		return nil, nil
	}
	return &card, nil
}

func (r *jobCardRepo) List(ctx context.Context) ([]*types.JobCardView, error) {
	var out []*types.JobCardView
	err := r.db.WithContext(ctx).Raw(`
		SELECT jc.*, p.name AS product_name, p.sku AS product_sku,
		       COALESCE(u.name, '') AS artisan_name
		FROM job_card jc
		JOIN product p ON jc.product_id = p.id
		LEFT JOIN app_user u ON jc.assigned_artisan_id = u.id
		ORDER BY jc.created_at DESC
	`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *jobCardRepo) UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to types.JobCardStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&types.JobCard{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *jobCardRepo) CountByStatus(ctx context.Context, statuses ...types.JobCardStatus) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&types.JobCard{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
