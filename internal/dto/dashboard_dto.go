package dto

// Dashboard aggregates. Field names follow the JSON consumed by the frontend
// charts; every value tolerates zero matching rows (zero/empty, never null).

type MonthlyAnalysis struct {
	Month       string  `json:"month"`
	TotalAudits int     `json:"totalAudits"`
	AvgScore    float64 `json:"avgScore"`
}

type StateAnalysis struct {
	State         string  `json:"state"`
	TotalBranches int     `json:"totalBranches"`
	TotalAudits   int     `json:"totalAudits"`
	AvgScore      float64 `json:"avgScore"`
}

type ScoreStats struct {
	AvgScore    float64 `json:"avgScore"`
	MinScore    int     `json:"minScore"`
	MaxScore    int     `json:"maxScore"`
	TotalAudits int     `json:"totalAudits"`
}

type RecentAudit struct {
	ID             string  `json:"id"`
	VisitDate      string  `json:"visit_date"`
	Score          *int    `json:"score"`
	GeneralSummary *string `json:"general_summary"`
	BranchName     string  `json:"branch_name"`
	BranchCode     string  `json:"branch_code"`
	AuditorName    string  `json:"auditor_name"`
}

type DashboardResponse struct {
	TotalBranches              int                `json:"totalBranches"`
	BranchesVisitedLastYear    int                `json:"branchesVisitedLastYear"`
	BranchesNotVisitedLastYear int                `json:"branchesNotVisitedLastYear"`
	BranchesVisitedLast6Months int                `json:"branchesVisitedLast6Months"`
	GeneralSummary             map[string]int     `json:"generalSummary"`
	MonthlyAnalysis            []MonthlyAnalysis  `json:"monthlyAnalysis"`
	StateAnalysis              []StateAnalysis    `json:"stateAnalysis"`
	UpcomingVisits             []ScheduleResponse `json:"upcomingVisits"`
	RecentAudits               []RecentAudit      `json:"recentAudits"`
	ScoreStats                 ScoreStats         `json:"scoreStats"`
}

// Chart endpoints reuse the same aggregates with chart-specific shapes.

type MonthlyScorePoint struct {
	Month       string  `json:"month"`
	AvgScore    float64 `json:"avgScore"`
	TotalAudits int     `json:"totalAudits"`
}

type SummarySlice struct {
	Summary string `json:"summary"`
	Total   int    `json:"total"`
}
