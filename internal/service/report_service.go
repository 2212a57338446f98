package service

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/repository"
)

const defaultOverdueMonths = 12

type ReportService interface {
	LastVisitByBranch(ctx context.Context) ([]dto.LastVisitRow, error)
	BranchesToAudit(ctx context.Context, months int) ([]dto.BranchToAuditRow, error)
	AuditsByPeriod(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditByPeriodRow, error)
	AuditorPerformance(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditorPerformanceRow, error)
	ScoresByState(ctx context.Context, months int) ([]dto.StateScoreRow, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) LastVisitByBranch(ctx context.Context) ([]dto.LastVisitRow, error) {
	return s.repo.LastVisitByBranch(ctx)
}

func (s *reportService) BranchesToAudit(ctx context.Context, months int) ([]dto.BranchToAuditRow, error) {
	if months <= 0 || months > 60 {
		months = defaultOverdueMonths
	}
	return s.repo.BranchesToAudit(ctx, months)
}

func (s *reportService) AuditsByPeriod(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditByPeriodRow, error) {
	return s.repo.AuditsByPeriod(ctx, filter)
}

func (s *reportService) AuditorPerformance(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditorPerformanceRow, error) {
	return s.repo.AuditorPerformance(ctx, filter)
}

func (s *reportService) ScoresByState(ctx context.Context, months int) ([]dto.StateScoreRow, error) {
	if months <= 0 || months > 60 {
		months = defaultOverdueMonths
	}
	return s.repo.ScoresByState(ctx, months)
}
