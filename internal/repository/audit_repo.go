package repository

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(ctx context.Context, a *model.Audit) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Audit, error)
	List(ctx context.Context, filter dto.AuditFilter) ([]model.Audit, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error)
	CountByAuditor(ctx context.Context, auditorID uuid.UUID) (int64, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, a *model.Audit) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *auditRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Audit, error) {
	var a model.Audit
	err := r.db.WithContext(ctx).Preload("Branch").Preload("Auditor").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *auditRepo) List(ctx context.Context, filter dto.AuditFilter) ([]model.Audit, error) {
	q := r.db.WithContext(ctx).Model(&model.Audit{})

	if filter.BranchID != "" {
		q = q.Where("branch_id = ?", filter.BranchID)
	}
	if filter.AuditorID != "" {
		q = q.Where("auditor_id = ?", filter.AuditorID)
	}
	if filter.StartDate != "" {
		q = q.Where("visit_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("visit_date <= ?", filter.EndDate)
	}

	var audits []model.Audit
	err := q.Preload("Branch").Preload("Auditor").
		Order("visit_date DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&audits).Error
	return audits, err
}

func (r *auditRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Audit{}).Where("id = ?", id).Updates(fields).Error
}

func (r *auditRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Audit{}, "id = ?", id).Error
}

func (r *auditRepo) CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Audit{}).Where("branch_id = ?", branchID).Count(&n).Error
	return n, err
}

func (r *auditRepo) CountByAuditor(ctx context.Context, auditorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Audit{}).Where("auditor_id = ?", auditorID).Count(&n).Error
	return n, err
}
