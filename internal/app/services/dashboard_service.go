package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
)

// StatCard is one dashboard summary tile.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// DashboardService aggregates the headline numbers and the recent feed.
type DashboardService struct {
	students StudentStore
	fees     FeeStore
	activity *ActivityService
	logger   zerolog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(students StudentStore, fees FeeStore, activity *ActivityService, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		students: students,
		fees:     fees,
		activity: activity,
		logger:   logger,
	}
}

// Stats returns the dashboard summary cards.
func (s *DashboardService) Stats(ctx context.Context) ([]StatCard, error) {
	activeStudents, err := s.students.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalInvoices, err := s.fees.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pendingInvoices, err := s.fees.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return []StatCard{
		{Title: "Active Students", Value: strconv.Itoa(activeStudents), Icon: "students.png"},
		{Title: "Total Invoices", Value: strconv.Itoa(totalInvoices), Icon: "fee_records.png"},
		{Title: "Pending Invoices", Value: strconv.Itoa(pendingInvoices), Icon: "fee_records.png"},
	}, nil
}

// RecentActivity returns the latest feed entries for the dashboard.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]*models.Activity, error) {
	return s.activity.Recent(ctx, limit)
}
