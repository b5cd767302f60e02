package services

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
)

// ReportService exposes the dashboard aggregates
type ReportService interface {
	DashboardStats(ctx context.Context) models.DashboardStats
	CRTFeeStatusReport(ctx context.Context) models.CRTFeeStatusReport
}

type reportService struct {
	store *placement.Store
}

// NewReportService creates a new report service instance
func NewReportService(store *placement.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) DashboardStats(context.Context) models.DashboardStats {
	return s.store.DashboardStats()
}

func (s *reportService) CRTFeeStatusReport(context.Context) models.CRTFeeStatusReport {
	return s.store.CRTFeeStatusReport()
}
