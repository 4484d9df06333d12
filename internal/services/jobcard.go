package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/realtime"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

type CreateJobCardInput struct {
	ProductID         uuid.UUID
	JobCardNumber     string
	TargetQty         int
	AssignedArtisanID *uuid.UUID
	Priority          types.JobCardPriority
	StartDate         *time.Time
	DueDate           *time.Time
	Notes             string
}

type JobCardService interface {
	Create(ctx context.Context, input CreateJobCardInput) (*types.JobCard, error)
	List(ctx context.Context) ([]*types.JobCardView, error)
	// Transition moves a job card along the lifecycle. Validation runs
	// against the persisted status at commit time: a card that moved since
	// it was read fails with ErrStaleState, never a silent overwrite.
	Transition(ctx context.Context, id uuid.UUID, target types.JobCardStatus, actor string) (*types.JobCard, error)
}

type jobCardService struct {
	log    *logger.Logger
	cards  repos.JobCardRepo
	notify TrackerNotifier
}

func NewJobCardService(baseLog *logger.Logger, cards repos.JobCardRepo, notify TrackerNotifier) JobCardService {
	return &jobCardService{
		log:    baseLog.With("service", "JobCardService"),
		cards:  cards,
		notify: notify,
	}
}

func (s *jobCardService) Create(ctx context.Context, input CreateJobCardInput) (*types.JobCard, error) {
	if input.ProductID == uuid.Nil {
		return nil, fmt.Errorf("missing product_id")
	}
	if input.JobCardNumber == "" {
		return nil, fmt.Errorf("missing job_card_number")
	}
	if input.TargetQty <= 0 {
		return nil, fmt.Errorf("target_qty must be positive")
	}
	priority := input.Priority
	if priority == "" {
		priority = types.PriorityNormal
	}
	if !types.ValidJobCardPriority(priority) {
		return nil, fmt.Errorf("unknown priority %q", priority)
	}

	card := &types.JobCard{
		ID:                uuid.New(),
		ProductID:         input.ProductID,
		JobCardNumber:     input.JobCardNumber,
		TargetQty:         input.TargetQty,
		CompletedQty:      0,
		AssignedArtisanID: input.AssignedArtisanID,
		Status:            types.JobCardPending,
		Priority:          priority,
		StartDate:         input.StartDate,
		DueDate:           input.DueDate,
		Notes:             input.Notes,
	}
	created, err := s.cards.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	s.log.Info("Job card created", "job_card_number", created.JobCardNumber, "target_qty", created.TargetQty)
	if s.notify != nil {
		s.notify.JobCardChanged(realtime.ChangeInsert, created, "")
	}
	return created, nil
}

func (s *jobCardService) List(ctx context.Context) ([]*types.JobCardView, error) {
	return s.cards.List(ctx)
}

func (s *jobCardService) Transition(ctx context.Context, id uuid.UUID, target types.JobCardStatus, actor string) (*types.JobCard, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing job card id")
	}
	if !types.ValidJobCardStatus(target) {
		return nil, fmt.Errorf("unknown status %q", target)
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, errors.Join(types.ErrNotFound, fmt.Errorf("job card %s", id))
	}

	from := card.Status
	if !from.CanTransitionTo(target) {
		return nil, types.InvalidTransitionError(from, target)
	}

	ok, err := s.cards.UpdateStatusCAS(ctx, id, from, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The guard failed: someone committed between our read and write.
		current, rerr := s.cards.GetByID(ctx, id)
		if rerr != nil {
			return nil, rerr
		}
		if current == nil {
			return nil, errors.Join(types.ErrNotFound, fmt.Errorf("job card %s", id))
		}
		return nil, types.StaleStateError(from, current.Status)
	}

	card.Status = target
	card.UpdatedAt = time.Now()
	s.log.Info("Job card transitioned", "job_card_number", card.JobCardNumber, "from", from, "to", target, "actor", actor)
	if s.notify != nil {
		s.notify.JobCardChanged(realtime.ChangeUpdate, card, actor)
	}
	return card, nil
}
