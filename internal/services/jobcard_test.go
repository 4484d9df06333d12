package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/realtime"
	"github.com/Bloodcipher/Amara/internal/types"
)

type fakeJobCardRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*types.JobCard
	// casOverride, when set, answers the next CAS call instead of the map.
	casOverride *bool
}

func newFakeJobCardRepo() *fakeJobCardRepo {
	return &fakeJobCardRepo{byID: make(map[uuid.UUID]*types.JobCard)}
}

func (r *fakeJobCardRepo) Create(ctx context.Context, card *types.JobCard) (*types.JobCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[card.ID] = card
	return card, nil
}

func (r *fakeJobCardRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.JobCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *card
	return &copied, nil
}

func (r *fakeJobCardRepo) List(ctx context.Context) ([]*types.JobCardView, error) {
	return nil, nil
}

func (r *fakeJobCardRepo) UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to types.JobCardStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.casOverride != nil {
		ok := *r.casOverride
		r.casOverride = nil
		return ok, nil
	}
	card, exists := r.byID[id]
	if !exists || card.Status != from {
		return false, nil
	}
	card.Status = to
	return true, nil
}

func (r *fakeJobCardRepo) CountByStatus(ctx context.Context, statuses ...types.JobCardStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, card := range r.byID {
		for _, s := range statuses {
			if card.Status == s {
				n++
			}
		}
	}
	return n, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []realtime.ChangeKind
}

func (n *recordingNotifier) JobCardChanged(kind realtime.ChangeKind, card *types.JobCard, actor string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
}

func (n *recordingNotifier) QCLogged(entry *types.QCLog, card *types.JobCard) {}

func newTestJobCardService(t *testing.T) (JobCardService, *fakeJobCardRepo, *recordingNotifier) {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	repo := newFakeJobCardRepo()
	notifier := &recordingNotifier{}
	return NewJobCardService(log, repo, notifier), repo, notifier
}

func seedCard(t *testing.T, repo *fakeJobCardRepo, status types.JobCardStatus) *types.JobCard {
	t.Helper()
	card := &types.JobCard{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		JobCardNumber: "JC-" + uuid.NewString()[:8],
		TargetQty:     10,
		Status:        status,
		Priority:      types.PriorityNormal,
	}
	if _, err := repo.Create(context.Background(), card); err != nil {
		t.Fatalf("seed card: %v", err)
	}
	return card
}

func TestJobCardCreate_StartsPendingAndNotifies(t *testing.T) {
	svc, _, notifier := newTestJobCardService(t)

	created, err := svc.Create(context.Background(), CreateJobCardInput{
		ProductID:     uuid.New(),
		JobCardNumber: "JC-001",
		TargetQty:     25,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != types.JobCardPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.Priority != types.PriorityNormal {
		t.Fatalf("expected default priority normal, got %s", created.Priority)
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != realtime.ChangeInsert {
		t.Fatalf("expected one insert notification, got %v", notifier.kinds)
	}
}

func TestJobCardCreate_RejectsBadInput(t *testing.T) {
	svc, _, _ := newTestJobCardService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateJobCardInput{JobCardNumber: "JC", TargetQty: 5}); err == nil {
		t.Fatalf("expected error for missing product")
	}
	if _, err := svc.Create(ctx, CreateJobCardInput{ProductID: uuid.New(), TargetQty: 5}); err == nil {
		t.Fatalf("expected error for missing number")
	}
	if _, err := svc.Create(ctx, CreateJobCardInput{ProductID: uuid.New(), JobCardNumber: "JC", TargetQty: 0}); err == nil {
		t.Fatalf("expected error for zero target qty")
	}
	if _, err := svc.Create(ctx, CreateJobCardInput{ProductID: uuid.New(), JobCardNumber: "JC", TargetQty: 5, Priority: "asap"}); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestTransition_HappyPath(t *testing.T) {
	svc, repo, notifier := newTestJobCardService(t)
	card := seedCard(t, repo, types.JobCardPending)

	got, err := svc.Transition(context.Background(), card.ID, types.JobCardInProgress, "supervisor")
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if got.Status != types.JobCardInProgress {
		t.Fatalf("expected in_progress, got %s", got.Status)
	}

	persisted, _ := repo.GetByID(context.Background(), card.ID)
	if persisted.Status != types.JobCardInProgress {
		t.Fatalf("expected persisted in_progress, got %s", persisted.Status)
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != realtime.ChangeUpdate {
		t.Fatalf("expected one update notification, got %v", notifier.kinds)
	}
}

func TestTransition_InvalidEdge(t *testing.T) {
	svc, repo, notifier := newTestJobCardService(t)
	card := seedCard(t, repo, types.JobCardPending)

	_, err := svc.Transition(context.Background(), card.ID, types.JobCardCompleted, "")
	if !errors.Is(err, types.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	persisted, _ := repo.GetByID(context.Background(), card.ID)
	if persisted.Status != types.JobCardPending {
		t.Fatalf("rejected transition must not write, got %s", persisted.Status)
	}
	if len(notifier.kinds) != 0 {
		t.Fatalf("rejected transition must not notify")
	}
}

func TestTransition_TerminalStateRejectsAll(t *testing.T) {
	svc, repo, _ := newTestJobCardService(t)
	card := seedCard(t, repo, types.JobCardCompleted)

	for _, target := range types.JobCardStatuses {
		_, err := svc.Transition(context.Background(), card.ID, target, "")
		if !errors.Is(err, types.ErrInvalidTransition) {
			t.Fatalf("completed -> %s: expected ErrInvalidTransition, got %v", target, err)
		}
	}
}

func TestTransition_StaleStateOnConcurrentWrite(t *testing.T) {
	svc, repo, notifier := newTestJobCardService(t)
	card := seedCard(t, repo, types.JobCardInProgress)

	// Simulate another writer landing between our read and CAS write.
	fail := false
	repo.casOverride = &fail
	repo.byID[card.ID].Status = types.JobCardOnHold

	_, err := svc.Transition(context.Background(), card.ID, types.JobCardCompleted, "")
	if !errors.Is(err, types.ErrStaleState) {
		t.Fatalf("expected ErrStaleState, got %v", err)
	}
	if len(notifier.kinds) != 0 {
		t.Fatalf("stale transition must not notify")
	}
}

func TestTransition_ConcurrentWritersExactlyOneWins(t *testing.T) {
	svc, repo, _ := newTestJobCardService(t)
	card := seedCard(t, repo, types.JobCardInProgress)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Transition(context.Background(), card.ID, types.JobCardCompleted, "")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		if !errors.Is(err, types.ErrStaleState) && !errors.Is(err, types.ErrInvalidTransition) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}

	persisted, _ := repo.GetByID(context.Background(), card.ID)
	if persisted.Status != types.JobCardCompleted {
		t.Fatalf("expected completed, got %s", persisted.Status)
	}
}

func TestTransition_UnknownCard(t *testing.T) {
	svc, _, _ := newTestJobCardService(t)

	_, err := svc.Transition(context.Background(), uuid.New(), types.JobCardInProgress, "")
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	svc, repo, _ := newTestJobCardService(t)
	card := seedCard(t, repo, types.JobCardPending)

	if _, err := svc.Transition(context.Background(), card.ID, "paused", ""); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
