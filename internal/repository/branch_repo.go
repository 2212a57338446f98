package repository

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(ctx context.Context, b *model.Branch) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func (r *branchRepo) Create(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *branchRepo) List(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).Order("name ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Branch{}).Where("id = ?", id).Updates(fields).Error
}

func (r *branchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Branch{}, "id = ?", id).Error
}
