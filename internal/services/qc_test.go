package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type fakeQCLogRepo struct {
	entries []*types.QCLog
}

func (r *fakeQCLogRepo) Create(ctx context.Context, entry *types.QCLog) (*types.QCLog, error) {
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeQCLogRepo) List(ctx context.Context) ([]*types.QCLogView, error) { return nil, nil }

func (r *fakeQCLogRepo) PassRate(ctx context.Context) (int64, int64, error) {
	var passed, total int64
	for _, e := range r.entries {
		passed += int64(e.QtyPassed)
		total += int64(e.QtyPassed + e.QtyFailed)
	}
	return passed, total, nil
}

func newTestQCService(t *testing.T) (QCService, *fakeQCLogRepo, *fakeJobCardRepo) {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	logs := &fakeQCLogRepo{}
	cards := newFakeJobCardRepo()
	return NewQCService(log, logs, cards, nil), logs, cards
}

func TestQCCreate_IsAdditive(t *testing.T) {
	svc, logs, cards := newTestQCService(t)
	card := seedCard(t, cards, types.JobCardInProgress)
	before := cards.byID[card.ID].CompletedQty

	first, err := svc.Create(context.Background(), CreateQCLogInput{JobCardID: card.ID, QtyPassed: 5, QtyFailed: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(context.Background(), CreateQCLogInput{JobCardID: card.ID, QtyPassed: 3})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if len(logs.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(logs.entries))
	}
	if first.ID == second.ID {
		t.Fatalf("entries must be distinct records")
	}
	// Inspections never rewrite the card's completed counter.
	if cards.byID[card.ID].CompletedQty != before {
		t.Fatalf("qc log must not touch completed_qty")
	}
}

func TestQCCreate_UnknownJobCard(t *testing.T) {
	svc, _, _ := newTestQCService(t)

	_, err := svc.Create(context.Background(), CreateQCLogInput{JobCardID: uuid.New(), QtyPassed: 1})
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQCCreate_RejectsNegativeCounts(t *testing.T) {
	svc, _, cards := newTestQCService(t)
	card := seedCard(t, cards, types.JobCardInProgress)

	if _, err := svc.Create(context.Background(), CreateQCLogInput{JobCardID: card.ID, QtyPassed: -1}); err == nil {
		t.Fatalf("expected error for negative passed count")
	}
	if _, err := svc.Create(context.Background(), CreateQCLogInput{JobCardID: card.ID, QtyFailed: -2}); err == nil {
		t.Fatalf("expected error for negative failed count")
	}
}
