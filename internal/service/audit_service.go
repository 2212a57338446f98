package service

import (
	"context"
	"time"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"
	"github.com/campneus/auditoria-campneus/internal/repository"

	"github.com/google/uuid"
)

type AuditService interface {
	Create(ctx context.Context, auditorID uuid.UUID, req dto.CreateAuditRequest) (*dto.AuditResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AuditResponse, error)
	List(ctx context.Context, filter dto.AuditFilter) ([]dto.AuditResponse, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, req dto.UpdateAuditRequest) (*dto.AuditResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// Create records a new audit. The auditor is always the authenticated caller,
// never a field of the payload.
func (s *auditService) Create(ctx context.Context, auditorID uuid.UUID, req dto.CreateAuditRequest) (*dto.AuditResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, apierror.WithMessage(apierror.ErrNotFound, "filial não encontrada")
	}
	visitDate, err := parseDate(req.VisitDate)
	if err != nil {
		return nil, err
	}

	audit := &model.Audit{
		BranchID:       branchID,
		AuditorID:      auditorID,
		VisitDate:      visitDate,
		MonthAnalyzed:  req.MonthAnalyzed,
		ScheduledVisit: *req.ScheduledVisit,

		StoreCategory:          req.StoreCategory,
		VATNumber:              req.VATNumber,
		CustomerAspectCategory: req.CustomerAspectCategory,
		NPSScore:               req.NPSScore,
		CheckupsDone:           req.CheckupsDone,

		TyrecoStock:            req.TyrecoStock,
		MonthlyInventoryStatus: req.MonthlyInventoryStatus,
		StockAdjustmentMade:    req.StockAdjustmentMade,
		SalesReturnsCompliance: req.SalesReturnsCompliance,

		TireQuantity:         req.TireQuantity,
		ImportedTireQuantity: req.ImportedTireQuantity,
		PirelliTireQuantity:  req.PirelliTireQuantity,
		PartsQuantity:        req.PartsQuantity,

		HasNFToShip:     req.HasNFToShip,
		CashBalance:     req.CashBalance,
		PartsStockValue: req.PartsStockValue,
		TireStockValue:  req.TireStockValue,

		GeneralSummary: req.GeneralSummary,
		Score:          req.Score,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, audit); err != nil {
		return nil, fkNotFound(err, "filial não encontrada")
	}
	return s.GetByID(ctx, audit.ID)
}

func (s *auditService) GetByID(ctx context.Context, id uuid.UUID) (*dto.AuditResponse, error) {
	audit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "auditoria não encontrada")
	}
	resp := toAuditResponse(audit)
	return &resp, nil
}

func (s *auditService) List(ctx context.Context, filter dto.AuditFilter) ([]dto.AuditResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	audits, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AuditResponse, len(audits))
	for i := range audits {
		resp[i] = toAuditResponse(&audits[i])
	}
	return resp, nil
}

// Update is allowed to the audit's creator or to administrators.
func (s *auditService) Update(ctx context.Context, actor *model.User, id uuid.UUID, req dto.UpdateAuditRequest) (*dto.AuditResponse, error) {
	audit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "auditoria não encontrada")
	}
	if actor.Role != model.RoleAdministrator && audit.AuditorID != actor.ID {
		return nil, apierror.WithMessage(apierror.ErrForbidden, "sem permissão para editar esta auditoria")
	}

	fields := map[string]interface{}{}
	if req.VisitDate != nil {
		visitDate, err := parseDate(*req.VisitDate)
		if err != nil {
			return nil, err
		}
		fields["visit_date"] = visitDate
	}
	if req.MonthAnalyzed != nil {
		fields["month_analyzed"] = *req.MonthAnalyzed
	}
	if req.ScheduledVisit != nil {
		fields["scheduled_visit"] = *req.ScheduledVisit
	}
	if req.StoreCategory != nil {
		fields["store_category"] = *req.StoreCategory
	}
	if req.VATNumber != nil {
		fields["vat_number"] = *req.VATNumber
	}
	if req.CustomerAspectCategory != nil {
		fields["customer_aspect_category"] = *req.CustomerAspectCategory
	}
	if req.NPSScore != nil {
		fields["nps_score"] = *req.NPSScore
	}
	if req.CheckupsDone != nil {
		fields["checkups_done"] = *req.CheckupsDone
	}
	if req.TyrecoStock != nil {
		fields["tyreco_stock"] = *req.TyrecoStock
	}
	if req.MonthlyInventoryStatus != nil {
		fields["monthly_inventory_status"] = *req.MonthlyInventoryStatus
	}
	if req.StockAdjustmentMade != nil {
		fields["stock_adjustment_made"] = *req.StockAdjustmentMade
	}
	if req.SalesReturnsCompliance != nil {
		fields["sales_returns_compliance"] = *req.SalesReturnsCompliance
	}
	if req.TireQuantity != nil {
		fields["tire_quantity"] = *req.TireQuantity
	}
	if req.ImportedTireQuantity != nil {
		fields["imported_tire_quantity"] = *req.ImportedTireQuantity
	}
	if req.PirelliTireQuantity != nil {
		fields["pirelli_tire_quantity"] = *req.PirelliTireQuantity
	}
	if req.PartsQuantity != nil {
		fields["parts_quantity"] = *req.PartsQuantity
	}
	if req.HasNFToShip != nil {
		fields["has_nf_to_ship"] = *req.HasNFToShip
	}
	if req.CashBalance != nil {
		fields["cash_balance"] = *req.CashBalance
	}
	if req.PartsStockValue != nil {
		fields["parts_stock_value"] = *req.PartsStockValue
	}
	if req.TireStockValue != nil {
		fields["tire_stock_value"] = *req.TireStockValue
	}
	if req.GeneralSummary != nil {
		fields["general_summary"] = *req.GeneralSummary
	}
	if req.Score != nil {
		fields["score"] = *req.Score
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		return nil, apierror.ErrNoFields
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *auditService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "auditoria não encontrada")
	}
	return s.repo.Delete(ctx, id)
}

func toAuditResponse(a *model.Audit) dto.AuditResponse {
	return dto.AuditResponse{
		ID:             a.ID.String(),
		BranchID:       a.BranchID.String(),
		BranchName:     a.Branch.Name,
		BranchCode:     a.Branch.Code,
		AuditorID:      a.AuditorID.String(),
		AuditorName:    a.Auditor.Username,
		VisitDate:      a.VisitDate.Format(dateLayout),
		MonthAnalyzed:  a.MonthAnalyzed,
		ScheduledVisit: a.ScheduledVisit,

		StoreCategory:          a.StoreCategory,
		VATNumber:              a.VATNumber,
		CustomerAspectCategory: a.CustomerAspectCategory,
		NPSScore:               a.NPSScore,
		CheckupsDone:           a.CheckupsDone,

		TyrecoStock:            a.TyrecoStock,
		MonthlyInventoryStatus: a.MonthlyInventoryStatus,
		StockAdjustmentMade:    a.StockAdjustmentMade,
		SalesReturnsCompliance: a.SalesReturnsCompliance,

		TireQuantity:         a.TireQuantity,
		ImportedTireQuantity: a.ImportedTireQuantity,
		PirelliTireQuantity:  a.PirelliTireQuantity,
		PartsQuantity:        a.PartsQuantity,

		HasNFToShip:     a.HasNFToShip,
		CashBalance:     a.CashBalance,
		PartsStockValue: a.PartsStockValue,
		TireStockValue:  a.TireStockValue,

		GeneralSummary: a.GeneralSummary,
		Score:          a.Score,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
