package dto

// Report rows keep the snake_case keys of the original report exports so the
// spreadsheet tooling downstream keeps working.

// LastVisitRow: one row per branch, including branches never audited.
// VisitStatus ∈ {"Nunca visitada", "Mais de 1 ano", "Mais de 6 meses", "Recente"}.
type LastVisitRow struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	State         string  `json:"state"`
	City          string  `json:"city"`
	LastVisitDate *string `json:"last_visit_date"`
	LastScore     *int    `json:"last_score"`
	LastSummary   *string `json:"last_summary"`
	LastAuditor   *string `json:"last_auditor"`
	VisitStatus   string  `json:"visit_status"`
}

// BranchToAuditRow: branches overdue for a visit, oldest/never-visited first.
type BranchToAuditRow struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	LastVisitDate      *string `json:"last_visit_date"`
	DaysSinceLastVisit string  `json:"days_since_last_visit"`
}

// AuditByPeriodRow: audits denormalized with branch and auditor names.
type AuditByPeriodRow struct {
	ID             string  `json:"id"`
	VisitDate      string  `json:"visit_date"`
	Score          *int    `json:"score"`
	GeneralSummary *string `json:"general_summary"`
	MonthAnalyzed  string  `json:"month_analyzed"`
	BranchCode     string  `json:"branch_code"`
	BranchName     string  `json:"branch_name"`
	State          string  `json:"state"`
	City           string  `json:"city"`
	AuditorName    string  `json:"auditor_name"`
	Notes          *string `json:"notes"`
}

// AuditorPerformanceRow: per-auditor score stats and summary-category counts.
type AuditorPerformanceRow struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	TotalAudits     int     `json:"total_audits"`
	AvgScore        float64 `json:"avg_score"`
	MinScore        int     `json:"min_score"`
	MaxScore        int     `json:"max_score"`
	AuditsOK        int     `gorm:"column:audits_ok"  json:"audits_ok"`
	AuditsAttention int     `json:"audits_attention"`
	AuditsNOK       int     `gorm:"column:audits_nok" json:"audits_nok"`
}

// StateScoreRow: per-state score stats over the trailing 12 months.
type StateScoreRow struct {
	State           string  `json:"state"`
	TotalAudits     int     `json:"total_audits"`
	AvgScore        float64 `json:"avg_score"`
	MinScore        int     `json:"min_score"`
	MaxScore        int     `json:"max_score"`
	AuditsOK        int     `gorm:"column:audits_ok"  json:"audits_ok"`
	AuditsAttention int     `json:"audits_attention"`
	AuditsNOK       int     `gorm:"column:audits_nok" json:"audits_nok"`
}

// ReportPeriodFilter windows the audits-by-period and auditor-performance
// reports. Zero values mean "no filter".
type ReportPeriodFilter struct {
	StartDate string
	EndDate   string
	BranchID  string
	AuditorID string
}
