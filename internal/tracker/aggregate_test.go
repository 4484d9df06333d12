package tracker

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/types"
)

func card(status types.JobCardStatus, artisan *uuid.UUID, createdAt time.Time) *types.JobCardView {
	return &types.JobCardView{
		JobCard: types.JobCard{
			ID:                uuid.New(),
			Status:            status,
			AssignedArtisanID: artisan,
			CreatedAt:         createdAt,
		},
	}
}

func artisan(name string) *types.User {
	return &types.User{
		ID:       uuid.New(),
		Name:     name,
		Role:     types.RoleArtisan,
		IsActive: true,
	}
}

func TestAggregate_StatusCounts(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	cards := []*types.JobCardView{
		card(types.JobCardPending, nil, now),
		card(types.JobCardPending, nil, now),
		card(types.JobCardInProgress, nil, now),
		card(types.JobCardCancelled, nil, now),
	}
	got := Aggregate(cards, nil, now)

	if got.TotalCards != 4 {
		t.Fatalf("expected 4 total cards, got %d", got.TotalCards)
	}
	if got.StatusCounts[types.JobCardPending] != 2 {
		t.Fatalf("expected 2 pending, got %d", got.StatusCounts[types.JobCardPending])
	}
	if got.StatusCounts[types.JobCardInProgress] != 1 {
		t.Fatalf("expected 1 in_progress, got %d", got.StatusCounts[types.JobCardInProgress])
	}
	if got.StatusCounts[types.JobCardOnHold] != 0 {
		t.Fatalf("expected on_hold present with zero, got %d", got.StatusCounts[types.JobCardOnHold])
	}
}

func TestAggregate_CompletedTodayUsesCreationDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	cards := []*types.JobCardView{
		card(types.JobCardCompleted, nil, now.Add(-2*time.Hour)),
		card(types.JobCardCompleted, nil, yesterday),
		card(types.JobCardInProgress, nil, now),
	}
	got := Aggregate(cards, nil, now)

	if got.CompletedToday != 1 {
		t.Fatalf("expected 1 completed today, got %d", got.CompletedToday)
	}
	if got.StatusCounts[types.JobCardCompleted] != 2 {
		t.Fatalf("expected 2 completed overall, got %d", got.StatusCounts[types.JobCardCompleted])
	}
}

func TestAggregate_OperatorWorkload(t *testing.T) {
	now := time.Now()
	alice := artisan("Alice")
	bob := artisan("Bob")
	clerk := &types.User{ID: uuid.New(), Name: "Clerk", Role: "admin", IsActive: true}
	retired := &types.User{ID: uuid.New(), Name: "Retired", Role: types.RoleArtisan, IsActive: false}

	cards := []*types.JobCardView{
		card(types.JobCardInProgress, &alice.ID, now),
		card(types.JobCardInProgress, &alice.ID, now),
		card(types.JobCardPending, &alice.ID, now),
		card(types.JobCardOnHold, &bob.ID, now),
		card(types.JobCardCompleted, &bob.ID, now),
		card(types.JobCardPending, nil, now),
	}
	got := Aggregate(cards, []*types.User{bob, alice, clerk, retired}, now)

	if len(got.Operators) != 2 {
		t.Fatalf("expected 2 operators, got %d", len(got.Operators))
	}
	// sorted by name
	if got.Operators[0].Name != "Alice" || got.Operators[1].Name != "Bob" {
		t.Fatalf("expected Alice,Bob got %q,%q", got.Operators[0].Name, got.Operators[1].Name)
	}
	if got.Operators[0].Active != 2 || got.Operators[0].Queued != 1 {
		t.Fatalf("alice: expected active=2 queued=1, got active=%d queued=%d", got.Operators[0].Active, got.Operators[0].Queued)
	}
	if got.Operators[1].Active != 0 || got.Operators[1].Queued != 1 {
		t.Fatalf("bob: expected active=0 queued=1, got active=%d queued=%d", got.Operators[1].Active, got.Operators[1].Queued)
	}
}

func TestAggregate_PureOverInputs(t *testing.T) {
	now := time.Now()
	cards := []*types.JobCardView{card(types.JobCardPending, nil, now)}
	first := Aggregate(cards, nil, now)
	second := Aggregate(cards, nil, now)
	if first.TotalCards != second.TotalCards || first.CompletedToday != second.CompletedToday {
		t.Fatalf("same inputs must produce same output")
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	got := Aggregate(nil, nil, time.Now())
	if got.TotalCards != 0 || got.CompletedToday != 0 || len(got.Operators) != 0 {
		t.Fatalf("empty inputs must produce empty summary: %+v", got)
	}
	if len(got.StatusCounts) != len(types.JobCardStatuses) {
		t.Fatalf("all statuses must be present in counts, got %d", len(got.StatusCounts))
	}
}
