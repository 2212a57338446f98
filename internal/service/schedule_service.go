package service

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"
	"github.com/campneus/auditoria-campneus/internal/repository"

	"github.com/google/uuid"
)

type ScheduleService interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, error)
	List(ctx context.Context, filter dto.ScheduleFilter) ([]dto.ScheduleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	repo repository.ScheduleRepository
}

func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

// Create books a visit. One schedule per branch per date; the composite unique
// index rejects duplicates even under concurrent requests.
func (s *scheduleService) Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, apierror.WithMessage(apierror.ErrNotFound, "filial não encontrada")
	}
	scheduledDate, err := parseDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		BranchID:      branchID,
		ScheduledDate: scheduledDate,
		AuditType:     req.AuditType,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		err = conflict(err, "já existe agendamento para esta filial nesta data")
		return nil, fkNotFound(err, "filial não encontrada")
	}

	created, err := s.repo.FindByID(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}
	resp := toScheduleResponse(created)
	return &resp, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "agendamento não encontrado")
	}
	resp := toScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) List(ctx context.Context, filter dto.ScheduleFilter) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		resp[i] = toScheduleResponse(&schedules[i])
	}
	return resp, nil
}

func (s *scheduleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "agendamento não encontrado")
	}

	fields := map[string]interface{}{}
	if req.ScheduledDate != nil {
		scheduledDate, err := parseDate(*req.ScheduledDate)
		if err != nil {
			return nil, err
		}
		fields["scheduled_date"] = scheduledDate
	}
	if req.AuditType != nil {
		fields["audit_type"] = *req.AuditType
	}
	if len(fields) == 0 {
		return nil, apierror.ErrNoFields
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, conflict(err, "já existe agendamento para esta filial nesta data")
	}

	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "agendamento não encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func toScheduleResponse(s *model.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:            s.ID.String(),
		BranchID:      s.BranchID.String(),
		BranchName:    s.Branch.Name,
		BranchCode:    s.Branch.Code,
		ScheduledDate: s.ScheduledDate.Format(dateLayout),
		AuditType:     s.AuditType,
	}
}
