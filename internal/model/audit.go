package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeneralSummary values — the three categorical outcomes of an audit.
const (
	SummaryCompliant    = "de acordo"
	SummaryAttention    = "com pontos de atenção"
	SummaryNonCompliant = "em desacordo"
)

// Audit is one recorded compliance inspection of a branch. Owned by the
// auditor who created it; administrators may edit or delete any audit.
// FKs RESTRICT deletion of the referenced branch and auditor.
type Audit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Branch    Branch    `gorm:"foreignKey:BranchID;constraint:OnDelete:RESTRICT"`
	AuditorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Auditor   User      `gorm:"foreignKey:AuditorID;constraint:OnDelete:RESTRICT"`

	VisitDate      time.Time `gorm:"type:date;not null;index"`
	MonthAnalyzed  string    `gorm:"not null"`
	ScheduledVisit bool      `gorm:"not null"`

	StoreCategory          *string
	VATNumber              *string `gorm:"column:vat_number"`
	CustomerAspectCategory *string
	NPSScore               *int `gorm:"column:nps_score"`
	CheckupsDone           *int

	TyrecoStock            *bool
	MonthlyInventoryStatus *string
	StockAdjustmentMade    *bool
	SalesReturnsCompliance *string

	TireQuantity         *int
	ImportedTireQuantity *int
	PirelliTireQuantity  *int
	PartsQuantity        *int

	HasNFToShip     *bool            `gorm:"column:has_nf_to_ship"`
	CashBalance     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	PartsStockValue *decimal.Decimal `gorm:"type:numeric(14,2)"`
	TireStockValue  *decimal.Decimal `gorm:"type:numeric(14,2)"`

	GeneralSummary *string `gorm:"type:varchar(30)"`
	Score          *int
	Notes          *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
