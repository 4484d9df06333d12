package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type QCLogRepo interface {
	Create(ctx context.Context, entry *types.QCLog) (*types.QCLog, error)
	List(ctx context.Context) ([]*types.QCLogView, error)
	// PassRate returns total passed and total inspected counts.
	PassRate(ctx context.Context) (passed int64, total int64, err error)
}

type qcLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQCLogRepo(db *gorm.DB, baseLog *logger.Logger) QCLogRepo {
	return &qcLogRepo{
		db:  db,
		log: baseLog.With("repo", "QCLogRepo"),
	}
}

func (r *qcLogRepo) Create(ctx context.Context, entry *types.QCLog) (*types.QCLog, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *qcLogRepo) List(ctx context.Context) ([]*types.QCLogView, error) {
	var out []*types.QCLogView
	err := r.db.WithContext(ctx).Raw(`
		SELECT q.*, jc.job_card_number AS job_card_number,
		       COALESCE(u.name, '') AS inspector_name
		FROM qc_log q
		JOIN job_card jc ON q.job_card_id = jc.id
		LEFT JOIN app_user u ON q.inspected_by = u.id
		ORDER BY q.inspection_date DESC
	`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *qcLogRepo) PassRate(ctx context.Context) (int64, int64, error) {
	var row struct {
		Passed int64
		Total  int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(qty_passed), 0) AS passed,
		       COALESCE(SUM(qty_passed + qty_failed), 0) AS total
		FROM qc_log
	`).Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Passed, row.Total, nil
}
