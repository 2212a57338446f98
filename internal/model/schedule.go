package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditType values for a planned visit.
const (
	AuditTypeFull      = "completa"
	AuditTypePartial   = "parcial"
	AuditTypeStockOnly = "somente estoque"
)

// Schedule is a planned future audit visit. The composite unique index keeps
// at most one schedule per (branch, date) pair; concurrent creates race on the
// constraint, not on an application pre-check.
type Schedule struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedules_branch_date"`
	Branch        Branch    `gorm:"foreignKey:BranchID;constraint:OnDelete:RESTRICT"`
	ScheduledDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_schedules_branch_date"`
	AuditType     string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
