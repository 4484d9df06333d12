package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/types"
)

type fakeInventoryRepo struct {
	total float64
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error) {
	return item, nil
}

func (r *fakeInventoryRepo) List(ctx context.Context) ([]*types.InventoryView, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) TotalValue(ctx context.Context) (float64, error) { return r.total, nil }

type fakeUserRepo struct {
	users []*types.User
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*types.User, error) { return r.users, nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
	r.users = append(r.users, user)
	return user, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestDashboardStats(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	ctx := context.Background()

	products := &fakeProductRepo{bySKU: map[string]*types.Product{
		"FCMONLS000": {ID: uuid.New(), SKU: "FCMONLS000"},
		"FCMONLS001": {ID: uuid.New(), SKU: "FCMONLS001"},
	}}
	cards := newFakeJobCardRepo()
	seedCard(t, cards, types.JobCardPending)
	seedCard(t, cards, types.JobCardInProgress)
	seedCard(t, cards, types.JobCardCompleted)
	seedCard(t, cards, types.JobCardCancelled)
	qc := &fakeQCLogRepo{entries: []*types.QCLog{
		{QtyPassed: 9, QtyFailed: 1},
		{QtyPassed: 6, QtyFailed: 4},
	}}
	inventory := &fakeInventoryRepo{total: 1250.5}
	users := &fakeUserRepo{users: []*types.User{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}}

	svc := NewDashboardService(log, products, cards, qc, inventory, users)
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalProducts != 2 {
		t.Fatalf("expected 2 products, got %d", stats.TotalProducts)
	}
	if stats.ActiveJobCards != 2 {
		t.Fatalf("expected 2 active cards, got %d", stats.ActiveJobCards)
	}
	if stats.PendingJobs != 1 {
		t.Fatalf("expected 1 pending, got %d", stats.PendingJobs)
	}
	if stats.CompletedJobs != 1 {
		t.Fatalf("expected 1 completed, got %d", stats.CompletedJobs)
	}
	if stats.QCPassRate != 75.0 {
		t.Fatalf("expected pass rate 75.0, got %v", stats.QCPassRate)
	}
	if stats.TotalInventoryValue != 1250.5 {
		t.Fatalf("expected inventory value 1250.5, got %v", stats.TotalInventoryValue)
	}
	if stats.TotalUsers != 3 {
		t.Fatalf("expected 3 users, got %d", stats.TotalUsers)
	}
}

func TestDashboardStats_NoInspectionsReadsFullPassRate(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	svc := NewDashboardService(
		log,
		&fakeProductRepo{bySKU: map[string]*types.Product{}},
		newFakeJobCardRepo(),
		&fakeQCLogRepo{},
		&fakeInventoryRepo{},
		&fakeUserRepo{},
	)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.QCPassRate != 100.0 {
		t.Fatalf("expected 100.0 with no inspections, got %v", stats.QCPassRate)
	}
}
