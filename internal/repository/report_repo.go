package repository

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/dto"

	"gorm.io/gorm"
)

// ReportRepository holds every read-only aggregate query behind the dashboard
// and report endpoints. All SQL here is parameterized; window arguments use
// make_interval so callers can never splice text into a query.
type ReportRepository interface {
	// Dashboard
	CountBranches(ctx context.Context) (int, error)
	CountBranchesVisitedSince(ctx context.Context, months int) (int, error)
	CountBranchesNotVisitedSince(ctx context.Context, months int) (int, error)
	SummaryDistribution(ctx context.Context, months int) ([]SummaryCount, error)
	MonthlyAnalysis(ctx context.Context, months int) ([]dto.MonthlyAnalysis, error)
	StateAnalysis(ctx context.Context, months int) ([]dto.StateAnalysis, error)
	UpcomingVisits(ctx context.Context, days, limit int) ([]dto.ScheduleResponse, error)
	RecentAudits(ctx context.Context, limit int) ([]dto.RecentAudit, error)
	ScoreStats(ctx context.Context, months int) (*dto.ScoreStats, error)

	// Reports
	LastVisitByBranch(ctx context.Context) ([]dto.LastVisitRow, error)
	BranchesToAudit(ctx context.Context, months int) ([]dto.BranchToAuditRow, error)
	AuditsByPeriod(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditByPeriodRow, error)
	AuditorPerformance(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditorPerformanceRow, error)
	ScoresByState(ctx context.Context, months int) ([]dto.StateScoreRow, error)
}

// SummaryCount is one bucket of the general_summary distribution.
type SummaryCount struct {
	GeneralSummary string
	Total          int
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) CountBranches(ctx context.Context) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM branches`).Scan(&n).Error
	return n, err
}

func (r *reportRepo) CountBranchesVisitedSince(ctx context.Context, months int) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT branch_id)
		FROM audits
		WHERE visit_date >= CURRENT_DATE - make_interval(months => ?)`, months).Scan(&n).Error
	return n, err
}

// CountBranchesNotVisitedSince is the set complement of the visited count, so
// visited + not visited always equals the branch total.
func (r *reportRepo) CountBranchesNotVisitedSince(ctx context.Context, months int) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM branches b
		WHERE NOT EXISTS (
			SELECT 1 FROM audits a
			WHERE a.branch_id = b.id
			  AND a.visit_date >= CURRENT_DATE - make_interval(months => ?)
		)`, months).Scan(&n).Error
	return n, err
}

func (r *reportRepo) SummaryDistribution(ctx context.Context, months int) ([]SummaryCount, error) {
	var rows []SummaryCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT general_summary, COUNT(*) AS total
		FROM audits
		WHERE visit_date >= CURRENT_DATE - make_interval(months => ?)
		  AND general_summary IS NOT NULL
		GROUP BY general_summary`, months).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) MonthlyAnalysis(ctx context.Context, months int) ([]dto.MonthlyAnalysis, error) {
	var rows []dto.MonthlyAnalysis
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(date_trunc('month', visit_date), 'YYYY-MM') AS month,
			COUNT(*) AS total_audits,
			ROUND(COALESCE(AVG(score), 0), 2) AS avg_score
		FROM audits
		WHERE visit_date >= CURRENT_DATE - make_interval(months => ?)
		GROUP BY date_trunc('month', visit_date)
		ORDER BY month`, months).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) StateAnalysis(ctx context.Context, months int) ([]dto.StateAnalysis, error) {
	var rows []dto.StateAnalysis
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.state,
			COUNT(DISTINCT b.id) AS total_branches,
			COUNT(a.id) AS total_audits,
			ROUND(COALESCE(AVG(a.score), 0), 2) AS avg_score
		FROM branches b
		LEFT JOIN audits a ON b.id = a.branch_id
			AND a.visit_date >= CURRENT_DATE - make_interval(months => ?)
		GROUP BY b.state
		ORDER BY b.state`, months).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) UpcomingVisits(ctx context.Context, days, limit int) ([]dto.ScheduleResponse, error) {
	var rows []dto.ScheduleResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id, s.branch_id,
			to_char(s.scheduled_date, 'YYYY-MM-DD') AS scheduled_date,
			s.audit_type,
			b.name AS branch_name, b.code AS branch_code
		FROM schedules s
		JOIN branches b ON s.branch_id = b.id
		WHERE s.scheduled_date BETWEEN CURRENT_DATE AND CURRENT_DATE + make_interval(days => ?)
		ORDER BY s.scheduled_date
		LIMIT ?`, days, limit).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) RecentAudits(ctx context.Context, limit int) ([]dto.RecentAudit, error) {
	var rows []dto.RecentAudit
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			to_char(a.visit_date, 'YYYY-MM-DD') AS visit_date,
			a.score, a.general_summary,
			b.name AS branch_name, b.code AS branch_code,
			u.username AS auditor_name
		FROM audits a
		JOIN branches b ON a.branch_id = b.id
		JOIN users u ON a.auditor_id = u.id
		ORDER BY a.visit_date DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) ScoreStats(ctx context.Context, months int) (*dto.ScoreStats, error) {
	var stats dto.ScoreStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ROUND(COALESCE(AVG(score), 0), 2) AS avg_score,
			COALESCE(MIN(score), 0) AS min_score,
			COALESCE(MAX(score), 0) AS max_score,
			COUNT(*) AS total_audits
		FROM audits
		WHERE visit_date >= CURRENT_DATE - make_interval(months => ?)`, months).Scan(&stats).Error
	return &stats, err
}

func (r *reportRepo) LastVisitByBranch(ctx context.Context) ([]dto.LastVisitRow, error) {
	var rows []dto.LastVisitRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id, b.code, b.name, b.state, b.city,
			to_char(a.visit_date, 'YYYY-MM-DD') AS last_visit_date,
			a.score AS last_score,
			a.general_summary AS last_summary,
			u.username AS last_auditor,
			CASE
				WHEN a.visit_date IS NULL THEN 'Nunca visitada'
				WHEN a.visit_date < CURRENT_DATE - INTERVAL '12 months' THEN 'Mais de 1 ano'
				WHEN a.visit_date < CURRENT_DATE - INTERVAL '6 months' THEN 'Mais de 6 meses'
				ELSE 'Recente'
			END AS visit_status
		FROM branches b
		LEFT JOIN LATERAL (
			SELECT * FROM audits a2
			WHERE a2.branch_id = b.id
			ORDER BY a2.visit_date DESC
			LIMIT 1
		) a ON true
		LEFT JOIN users u ON a.auditor_id = u.id
		ORDER BY b.name`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) BranchesToAudit(ctx context.Context, months int) ([]dto.BranchToAuditRow, error) {
	var rows []dto.BranchToAuditRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id, b.code, b.name, b.state, b.city,
			to_char(a.visit_date, 'YYYY-MM-DD') AS last_visit_date,
			CASE
				WHEN a.visit_date IS NULL THEN 'Nunca visitada'
				ELSE (CURRENT_DATE - a.visit_date)::text || ' dias atrás'
			END AS days_since_last_visit
		FROM branches b
		LEFT JOIN LATERAL (
			SELECT * FROM audits a2
			WHERE a2.branch_id = b.id
			ORDER BY a2.visit_date DESC
			LIMIT 1
		) a ON true
		WHERE a.visit_date IS NULL
		   OR a.visit_date < CURRENT_DATE - make_interval(months => ?)
		ORDER BY a.visit_date ASC NULLS FIRST, b.name`, months).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) AuditsByPeriod(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditByPeriodRow, error) {
	q := r.db.WithContext(ctx).
		Table("audits a").
		Select(`a.id,
			to_char(a.visit_date, 'YYYY-MM-DD') AS visit_date,
			a.score, a.general_summary, a.month_analyzed,
			b.code AS branch_code, b.name AS branch_name, b.state, b.city,
			u.username AS auditor_name,
			a.notes`).
		Joins("JOIN branches b ON a.branch_id = b.id").
		Joins("JOIN users u ON a.auditor_id = u.id")

	if filter.StartDate != "" {
		q = q.Where("a.visit_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("a.visit_date <= ?", filter.EndDate)
	}
	if filter.BranchID != "" {
		q = q.Where("a.branch_id = ?", filter.BranchID)
	}
	if filter.AuditorID != "" {
		q = q.Where("a.auditor_id = ?", filter.AuditorID)
	}

	var rows []dto.AuditByPeriodRow
	err := q.Order("a.visit_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) AuditorPerformance(ctx context.Context, filter dto.ReportPeriodFilter) ([]dto.AuditorPerformanceRow, error) {
	// The window goes in the join condition so auditors with zero audits in
	// the period still appear with zeroed stats.
	join := "LEFT JOIN audits a ON u.id = a.auditor_id"
	var args []interface{}
	if filter.StartDate != "" {
		join += " AND a.visit_date >= ?"
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		join += " AND a.visit_date <= ?"
		args = append(args, filter.EndDate)
	}

	var rows []dto.AuditorPerformanceRow
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id, u.username,
			COUNT(a.id) AS total_audits,
			ROUND(COALESCE(AVG(a.score), 0), 2) AS avg_score,
			COALESCE(MIN(a.score), 0) AS min_score,
			COALESCE(MAX(a.score), 0) AS max_score,
			COUNT(*) FILTER (WHERE a.general_summary = 'de acordo') AS audits_ok,
			COUNT(*) FILTER (WHERE a.general_summary = 'com pontos de atenção') AS audits_attention,
			COUNT(*) FILTER (WHERE a.general_summary = 'em desacordo') AS audits_nok`).
		Joins(join, args...).
		Where("u.role = ?", "auditor").
		Group("u.id, u.username").
		Order("total_audits DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) ScoresByState(ctx context.Context, months int) ([]dto.StateScoreRow, error) {
	var rows []dto.StateScoreRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.state,
			COUNT(a.id) AS total_audits,
			ROUND(COALESCE(AVG(a.score), 0), 2) AS avg_score,
			COALESCE(MIN(a.score), 0) AS min_score,
			COALESCE(MAX(a.score), 0) AS max_score,
			COUNT(*) FILTER (WHERE a.general_summary = 'de acordo') AS audits_ok,
			COUNT(*) FILTER (WHERE a.general_summary = 'com pontos de atenção') AS audits_attention,
			COUNT(*) FILTER (WHERE a.general_summary = 'em desacordo') AS audits_nok
		FROM branches b
		LEFT JOIN audits a ON b.id = a.branch_id
			AND a.visit_date >= CURRENT_DATE - make_interval(months => ?)
		GROUP BY b.state
		ORDER BY AVG(a.score) DESC NULLS LAST`, months).Scan(&rows).Error
	return rows, err
}
