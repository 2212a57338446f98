package repository

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	List(ctx context.Context, filter dto.ScheduleFilter) ([]model.Schedule, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error)
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) ScheduleRepository { return &scheduleRepo{db: db} }

func (r *scheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *scheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).Preload("Branch").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *scheduleRepo) List(ctx context.Context, filter dto.ScheduleFilter) ([]model.Schedule, error) {
	q := r.db.WithContext(ctx).Model(&model.Schedule{})

	if filter.BranchID != "" {
		q = q.Where("branch_id = ?", filter.BranchID)
	}
	if filter.StartDate != "" {
		q = q.Where("scheduled_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("scheduled_date <= ?", filter.EndDate)
	}

	var schedules []model.Schedule
	err := q.Preload("Branch").Order("scheduled_date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Schedule{}).Where("id = ?", id).Updates(fields).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Schedule{}, "id = ?", id).Error
}

func (r *scheduleRepo) CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Schedule{}).Where("branch_id = ?", branchID).Count(&n).Error
	return n, err
}
