package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateAuditRequest struct {
	BranchID       string `json:"branch_id"       validate:"required,uuid4"`
	VisitDate      string `json:"visit_date"      validate:"required,datetime=2006-01-02"`
	MonthAnalyzed  string `json:"month_analyzed"  validate:"required"`
	ScheduledVisit *bool  `json:"scheduled_visit" validate:"required"`

	StoreCategory          *string `json:"store_category"`
	VATNumber              *string `json:"vat_number"`
	CustomerAspectCategory *string `json:"customer_aspect_category"`
	NPSScore               *int    `json:"nps_score"               validate:"omitempty,min=0,max=100"`
	CheckupsDone           *int    `json:"checkups_done"           validate:"omitempty,min=0"`

	TyrecoStock            *bool   `json:"tyreco_stock"`
	MonthlyInventoryStatus *string `json:"monthly_inventory_status"`
	StockAdjustmentMade    *bool   `json:"stock_adjustment_made"`
	SalesReturnsCompliance *string `json:"sales_returns_compliance"`

	TireQuantity         *int `json:"tire_quantity"          validate:"omitempty,min=0"`
	ImportedTireQuantity *int `json:"imported_tire_quantity" validate:"omitempty,min=0"`
	PirelliTireQuantity  *int `json:"pirelli_tire_quantity"  validate:"omitempty,min=0"`
	PartsQuantity        *int `json:"parts_quantity"         validate:"omitempty,min=0"`

	HasNFToShip     *bool            `json:"has_nf_to_ship"`
	CashBalance     *decimal.Decimal `json:"cash_balance"`
	PartsStockValue *decimal.Decimal `json:"parts_stock_value"`
	TireStockValue  *decimal.Decimal `json:"tire_stock_value"`

	GeneralSummary *string `json:"general_summary" validate:"omitempty,oneof='de acordo' 'com pontos de atenção' 'em desacordo'"`
	Score          *int    `json:"score"           validate:"omitempty,min=0,max=100"`
	Notes          *string `json:"notes"`
}

// UpdateAuditRequest is a partial patch: only non-nil fields change.
// branch_id and auditor_id are deliberately not patchable.
type UpdateAuditRequest struct {
	VisitDate      *string `json:"visit_date"      validate:"omitempty,datetime=2006-01-02"`
	MonthAnalyzed  *string `json:"month_analyzed"  validate:"omitempty,min=1"`
	ScheduledVisit *bool   `json:"scheduled_visit"`

	StoreCategory          *string `json:"store_category"`
	VATNumber              *string `json:"vat_number"`
	CustomerAspectCategory *string `json:"customer_aspect_category"`
	NPSScore               *int    `json:"nps_score"               validate:"omitempty,min=0,max=100"`
	CheckupsDone           *int    `json:"checkups_done"           validate:"omitempty,min=0"`

	TyrecoStock            *bool   `json:"tyreco_stock"`
	MonthlyInventoryStatus *string `json:"monthly_inventory_status"`
	StockAdjustmentMade    *bool   `json:"stock_adjustment_made"`
	SalesReturnsCompliance *string `json:"sales_returns_compliance"`

	TireQuantity         *int `json:"tire_quantity"          validate:"omitempty,min=0"`
	ImportedTireQuantity *int `json:"imported_tire_quantity" validate:"omitempty,min=0"`
	PirelliTireQuantity  *int `json:"pirelli_tire_quantity"  validate:"omitempty,min=0"`
	PartsQuantity        *int `json:"parts_quantity"         validate:"omitempty,min=0"`

	HasNFToShip     *bool            `json:"has_nf_to_ship"`
	CashBalance     *decimal.Decimal `json:"cash_balance"`
	PartsStockValue *decimal.Decimal `json:"parts_stock_value"`
	TireStockValue  *decimal.Decimal `json:"tire_stock_value"`

	GeneralSummary *string `json:"general_summary" validate:"omitempty,oneof='de acordo' 'com pontos de atenção' 'em desacordo'"`
	Score          *int    `json:"score"           validate:"omitempty,min=0,max=100"`
	Notes          *string `json:"notes"`
}

// AuditFilter narrows the audit list. Zero values mean "no filter".
type AuditFilter struct {
	BranchID  string
	AuditorID string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// ─── Responses ───────────────────────────────────────────────────────────────

type AuditResponse struct {
	ID             string `json:"id"`
	BranchID       string `json:"branch_id"`
	BranchName     string `json:"branch_name"`
	BranchCode     string `json:"branch_code"`
	AuditorID      string `json:"auditor_id"`
	AuditorName    string `json:"auditor_name"`
	VisitDate      string `json:"visit_date"`
	MonthAnalyzed  string `json:"month_analyzed"`
	ScheduledVisit bool   `json:"scheduled_visit"`

	StoreCategory          *string `json:"store_category"`
	VATNumber              *string `json:"vat_number"`
	CustomerAspectCategory *string `json:"customer_aspect_category"`
	NPSScore               *int    `json:"nps_score"`
	CheckupsDone           *int    `json:"checkups_done"`

	TyrecoStock            *bool   `json:"tyreco_stock"`
	MonthlyInventoryStatus *string `json:"monthly_inventory_status"`
	StockAdjustmentMade    *bool   `json:"stock_adjustment_made"`
	SalesReturnsCompliance *string `json:"sales_returns_compliance"`

	TireQuantity         *int `json:"tire_quantity"`
	ImportedTireQuantity *int `json:"imported_tire_quantity"`
	PirelliTireQuantity  *int `json:"pirelli_tire_quantity"`
	PartsQuantity        *int `json:"parts_quantity"`

	HasNFToShip     *bool            `json:"has_nf_to_ship"`
	CashBalance     *decimal.Decimal `json:"cash_balance"`
	PartsStockValue *decimal.Decimal `json:"parts_stock_value"`
	TireStockValue  *decimal.Decimal `json:"tire_stock_value"`

	GeneralSummary *string `json:"general_summary"`
	Score          *int    `json:"score"`
	Notes          *string `json:"notes"`
	CreatedAt      string  `json:"created_at"`
}
