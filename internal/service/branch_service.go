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

type BranchService interface {
	Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchResponse, error)
	List(ctx context.Context) ([]dto.BranchResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchService struct {
	repo         repository.BranchRepository
	auditRepo    repository.AuditRepository
	scheduleRepo repository.ScheduleRepository
}

func NewBranchService(repo repository.BranchRepository, auditRepo repository.AuditRepository, scheduleRepo repository.ScheduleRepository) BranchService {
	return &branchService{repo: repo, auditRepo: auditRepo, scheduleRepo: scheduleRepo}
}

func (s *branchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	branch := &model.Branch{
		Code:  req.Code,
		Name:  req.Name,
		CNPJ:  req.CNPJ,
		State: req.State,
		City:  req.City,
	}
	if err := s.repo.Create(ctx, branch); err != nil {
		return nil, conflict(err, "código ou CNPJ já existe")
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

func (s *branchService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchResponse, error) {
	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "filial não encontrada")
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

func (s *branchService) List(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BranchResponse, len(branches))
	for i := range branches {
		resp[i] = toBranchResponse(&branches[i])
	}
	return resp, nil
}

func (s *branchService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "filial não encontrada")
	}

	fields := map[string]interface{}{}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.CNPJ != nil {
		fields["cnpj"] = *req.CNPJ
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if len(fields) == 0 {
		return nil, apierror.ErrNoFields
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, conflict(err, "código ou CNPJ já existe")
	}

	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

// Delete refuses when the branch is referenced by audits or schedules
// (restrict, not cascade). The RESTRICT FKs are the backstop for races.
func (s *branchService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "filial não encontrada")
	}

	audits, err := s.auditRepo.CountByBranch(ctx, id)
	if err != nil {
		return err
	}
	schedules, err := s.scheduleRepo.CountByBranch(ctx, id)
	if err != nil {
		return err
	}
	if audits > 0 || schedules > 0 {
		return apierror.WithMessage(apierror.ErrConflict, "filial possui auditorias ou agendamentos vinculados")
	}
	return s.repo.Delete(ctx, id)
}

func toBranchResponse(b *model.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:        b.ID.String(),
		Code:      b.Code,
		Name:      b.Name,
		CNPJ:      b.CNPJ,
		State:     b.State,
		City:      b.City,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
