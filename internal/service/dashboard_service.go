package service

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Window defaults for the dashboard aggregates.
const (
	dashboardYearMonths     = 12
	dashboardHalfYearMonths = 6
	upcomingVisitDays       = 30
	upcomingVisitLimit      = 10
	recentAuditLimit        = 10
)

type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
	MonthlyScores(ctx context.Context, months int) ([]dto.MonthlyScorePoint, error)
	SummaryDistribution(ctx context.Context, months int) ([]dto.SummarySlice, error)
}

type dashboardService struct {
	repo repository.ReportRepository
}

func NewDashboardService(repo repository.ReportRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// Overview runs the dashboard aggregates concurrently; they are independent
// reads against the same pool.
func (s *dashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{
		GeneralSummary:  map[string]int{},
		MonthlyAnalysis: []dto.MonthlyAnalysis{},
		StateAnalysis:   []dto.StateAnalysis{},
		UpcomingVisits:  []dto.ScheduleResponse{},
		RecentAudits:    []dto.RecentAudit{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountBranches(ctx)
		resp.TotalBranches = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountBranchesVisitedSince(ctx, dashboardYearMonths)
		resp.BranchesVisitedLastYear = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountBranchesNotVisitedSince(ctx, dashboardYearMonths)
		resp.BranchesNotVisitedLastYear = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountBranchesVisitedSince(ctx, dashboardHalfYearMonths)
		resp.BranchesVisitedLast6Months = n
		return err
	})
	g.Go(func() error {
		counts, err := s.repo.SummaryDistribution(ctx, dashboardYearMonths)
		if err != nil {
			return err
		}
		for _, c := range counts {
			resp.GeneralSummary[c.GeneralSummary] = c.Total
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.MonthlyAnalysis(ctx, dashboardYearMonths)
		if rows != nil {
			resp.MonthlyAnalysis = rows
		}
		return err
	})
	g.Go(func() error {
		rows, err := s.repo.StateAnalysis(ctx, dashboardYearMonths)
		if rows != nil {
			resp.StateAnalysis = rows
		}
		return err
	})
	g.Go(func() error {
		rows, err := s.repo.UpcomingVisits(ctx, upcomingVisitDays, upcomingVisitLimit)
		if rows != nil {
			resp.UpcomingVisits = rows
		}
		return err
	})
	g.Go(func() error {
		rows, err := s.repo.RecentAudits(ctx, recentAuditLimit)
		if rows != nil {
			resp.RecentAudits = rows
		}
		return err
	})
	g.Go(func() error {
		stats, err := s.repo.ScoreStats(ctx, dashboardYearMonths)
		if err != nil {
			return err
		}
		resp.ScoreStats = *stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *dashboardService) MonthlyScores(ctx context.Context, months int) ([]dto.MonthlyScorePoint, error) {
	if months <= 0 || months > 60 {
		months = dashboardYearMonths
	}
	rows, err := s.repo.MonthlyAnalysis(ctx, months)
	if err != nil {
		return nil, err
	}
	points := make([]dto.MonthlyScorePoint, len(rows))
	for i, r := range rows {
		points[i] = dto.MonthlyScorePoint{
			Month:       r.Month,
			AvgScore:    r.AvgScore,
			TotalAudits: r.TotalAudits,
		}
	}
	return points, nil
}

func (s *dashboardService) SummaryDistribution(ctx context.Context, months int) ([]dto.SummarySlice, error) {
	if months <= 0 || months > 60 {
		months = dashboardYearMonths
	}
	counts, err := s.repo.SummaryDistribution(ctx, months)
	if err != nil {
		return nil, err
	}
	slices := make([]dto.SummarySlice, len(counts))
	for i, c := range counts {
		slices[i] = dto.SummarySlice{Summary: c.GeneralSummary, Total: c.Total}
	}
	return slices, nil
}
