package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateScheduleRequest struct {
	BranchID      string `json:"branch_id"      validate:"required,uuid4"`
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	AuditType     string `json:"audit_type"     validate:"required,oneof=completa parcial 'somente estoque'"`
}

// UpdateScheduleRequest is a partial patch: only non-nil fields change.
type UpdateScheduleRequest struct {
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	AuditType     *string `json:"audit_type"     validate:"omitempty,oneof=completa parcial 'somente estoque'"`
}

// ScheduleFilter narrows the schedule list. Zero values mean "no filter".
type ScheduleFilter struct {
	BranchID  string
	StartDate string
	EndDate   string
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ScheduleResponse struct {
	ID            string `json:"id"`
	BranchID      string `json:"branch_id"`
	BranchName    string `json:"branch_name"`
	BranchCode    string `json:"branch_code"`
	ScheduledDate string `json:"scheduled_date"`
	AuditType     string `json:"audit_type"`
}
