package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

type CreateQCLogInput struct {
	JobCardID    uuid.UUID
	InspectedBy  *uuid.UUID
	QtyPassed    int
	QtyFailed    int
	DefectReason string
	Notes        string
}

type QCService interface {
	Create(ctx context.Context, input CreateQCLogInput) (*types.QCLog, error)
	List(ctx context.Context) ([]*types.QCLogView, error)
}

type qcService struct {
	log    *logger.Logger
	logs   repos.QCLogRepo
	cards  repos.JobCardRepo
	notify TrackerNotifier
}

func NewQCService(baseLog *logger.Logger, logs repos.QCLogRepo, cards repos.JobCardRepo, notify TrackerNotifier) QCService {
	return &qcService{
		log:    baseLog.With("service", "QCService"),
		logs:   logs,
		cards:  cards,
		notify: notify,
	}
}

func (s *qcService) Create(ctx context.Context, input CreateQCLogInput) (*types.QCLog, error) {
	if input.JobCardID == uuid.Nil {
		return nil, fmt.Errorf("missing job_card_id")
	}
	if input.QtyPassed < 0 || input.QtyFailed < 0 {
		return nil, fmt.Errorf("inspection counts cannot be negative")
	}
	card, err := s.cards.GetByID(ctx, input.JobCardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, errors.Join(types.ErrNotFound, fmt.Errorf("job card %s", input.JobCardID))
	}

	entry := &types.QCLog{
		ID:           uuid.New(),
		JobCardID:    input.JobCardID,
		InspectedBy:  input.InspectedBy,
		QtyPassed:    input.QtyPassed,
		QtyFailed:    input.QtyFailed,
		DefectReason: input.DefectReason,
		Notes:        input.Notes,
	}
	// Additive only: the job card's completed_qty is not derived here.
	created, err := s.logs.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info("QC log posted", "job_card_number", card.JobCardNumber, "passed", created.QtyPassed, "failed", created.QtyFailed)
	if s.notify != nil {
		s.notify.QCLogged(created, card)
	}
	return created, nil
}

func (s *qcService) List(ctx context.Context) ([]*types.QCLogView, error) {
	return s.logs.List(ctx)
}
