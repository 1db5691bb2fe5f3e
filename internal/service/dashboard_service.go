package service

import (
	"context"

	"github.com/classpoint/sis-backend/internal/repository"
)

// DashboardSummary aggregates the landing page metrics.
type DashboardSummary struct {
	Departments       int                               `json:"departments"`
	Subjects          int                               `json:"subjects"`
	Teachers          int                               `json:"teachers"`
	Students          int                               `json:"students"`
	Classes           int                               `json:"classes"`
	ClassesByDeptCode map[string]int                    `json:"classes_by_department"`
	RecentClasses     []repository.DashboardRecentClass `json:"recent_classes"`
}

// DashboardService assembles the admin landing page data.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetSummary retrieves entity counts, per-department class distribution, and
// the most recently touched classes.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	departments, subjects, teachers, students, classes, err := s.dashboardRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	byDept, err := s.dashboardRepo.GetClassCountsByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.dashboardRepo.GetRecentClasses(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Departments:       departments,
		Subjects:          subjects,
		Teachers:          teachers,
		Students:          students,
		Classes:           classes,
		ClassesByDeptCode: byDept,
		RecentClasses:     recent,
	}, nil
}
