package services

import (
	"context"
	"math"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

type DashboardStats struct {
	TotalProducts       int64   `json:"total_products"`
	ActiveJobCards      int64   `json:"active_job_cards"`
	PendingJobs         int64   `json:"pending_jobs"`
	CompletedJobs       int64   `json:"completed_jobs"`
	QCPassRate          float64 `json:"qc_pass_rate"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	TotalUsers          int64   `json:"total_users"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	log       *logger.Logger
	products  repos.ProductRepo
	cards     repos.JobCardRepo
	qc        repos.QCLogRepo
	inventory repos.InventoryRepo
	users     repos.UserRepo
}

func NewDashboardService(baseLog *logger.Logger, products repos.ProductRepo, cards repos.JobCardRepo, qc repos.QCLogRepo, inventory repos.InventoryRepo, users repos.UserRepo) DashboardService {
	return &dashboardService{
		log:       baseLog.With("service", "DashboardService"),
		products:  products,
		cards:     cards,
		qc:        qc,
		inventory: inventory,
		users:     users,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.cards.CountByStatus(ctx, types.JobCardPending, types.JobCardInProgress)
	if err != nil {
		return nil, err
	}
	pending, err := s.cards.CountByStatus(ctx, types.JobCardPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.cards.CountByStatus(ctx, types.JobCardCompleted)
	if err != nil {
		return nil, err
	}
	passed, inspected, err := s.qc.PassRate(ctx)
	if err != nil {
		return nil, err
	}
	passRate := 100.0
	if inspected > 0 {
		passRate = math.Round(float64(passed)/float64(inspected)*1000) / 10
	}
	inventoryValue, err := s.inventory.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:       totalProducts,
		ActiveJobCards:      active,
		PendingJobs:         pending,
		CompletedJobs:       completed,
		QCPassRate:          passRate,
		TotalInventoryValue: inventoryValue,
		TotalUsers:          totalUsers,
	}, nil
}
