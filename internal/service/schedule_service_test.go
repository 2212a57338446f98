package service

import (
	"context"
	"testing"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleSetup() (*stubBranchRepo, *stubScheduleRepo, ScheduleService) {
	branches := newStubBranchRepo()
	schedules := newStubScheduleRepo(branches)
	return branches, schedules, NewScheduleService(schedules)
}

func TestScheduleCreate_Success(t *testing.T) {
	branches, _, svc := newScheduleSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")

	resp, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		BranchID: b.ID.String(), ScheduledDate: "2026-10-01", AuditType: model.AuditTypeFull,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", resp.ScheduledDate)
	assert.Equal(t, "completa", resp.AuditType)
	assert.Equal(t, "F001", resp.BranchCode)
}

func TestScheduleCreate_DuplicateSlot(t *testing.T) {
	branches, _, svc := newScheduleSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")

	req := dto.CreateScheduleRequest{
		BranchID: b.ID.String(), ScheduledDate: "2026-10-01", AuditType: model.AuditTypePartial,
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Equal(t, "já existe agendamento para esta filial nesta data", err.Error())
}

func TestScheduleCreate_SameDateDifferentBranch(t *testing.T) {
	branches, _, svc := newScheduleSetup()
	b1 := seedBranch(branches, "F001", "Campinas Centro")
	b2 := seedBranch(branches, "F002", "Sorocaba")

	_, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		BranchID: b1.ID.String(), ScheduledDate: "2026-10-01", AuditType: model.AuditTypeFull,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateScheduleRequest{
		BranchID: b2.ID.String(), ScheduledDate: "2026-10-01", AuditType: model.AuditTypeFull,
	})
	assert.NoError(t, err)
}

func TestScheduleCreate_UnknownBranch(t *testing.T) {
	_, _, svc := newScheduleSetup()

	_, err := svc.Create(context.Background(), dto.CreateScheduleRequest{
		BranchID: uuid.NewString(), ScheduledDate: "2026-10-01", AuditType: model.AuditTypeFull,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestScheduleGetByID(t *testing.T) {
	branches, schedules, svc := newScheduleSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	date, _ := parseDate("2026-10-01")
	s := &model.Schedule{BranchID: b.ID, ScheduledDate: date, AuditType: model.AuditTypeStockOnly}
	require.NoError(t, schedules.Create(context.Background(), s))

	resp, err := svc.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID.String(), resp.ID)
	assert.Equal(t, "2026-10-01", resp.ScheduledDate)
	assert.Equal(t, "somente estoque", resp.AuditType)
	assert.Equal(t, "Campinas Centro", resp.BranchName)
	assert.Equal(t, "F001", resp.BranchCode)
}

func TestScheduleGetByID_NotFound(t *testing.T) {
	_, _, svc := newScheduleSetup()

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Equal(t, "agendamento não encontrado", err.Error())
}

func TestScheduleUpdate_NoFields(t *testing.T) {
	branches, schedules, svc := newScheduleSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	date, _ := parseDate("2026-10-01")
	s := &model.Schedule{BranchID: b.ID, ScheduledDate: date, AuditType: model.AuditTypeFull}
	require.NoError(t, schedules.Create(context.Background(), s))

	_, err := svc.Update(context.Background(), s.ID, dto.UpdateScheduleRequest{})
	assert.ErrorIs(t, err, apierror.ErrNoFields)
}

func TestScheduleUpdate_MoveOntoTakenSlot(t *testing.T) {
	branches, schedules, svc := newScheduleSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	d1, _ := parseDate("2026-10-01")
	d2, _ := parseDate("2026-10-02")
	s1 := &model.Schedule{BranchID: b.ID, ScheduledDate: d1, AuditType: model.AuditTypeFull}
	s2 := &model.Schedule{BranchID: b.ID, ScheduledDate: d2, AuditType: model.AuditTypeFull}
	require.NoError(t, schedules.Create(context.Background(), s1))
	require.NoError(t, schedules.Create(context.Background(), s2))

	taken := "2026-10-01"
	_, err := svc.Update(context.Background(), s2.ID, dto.UpdateScheduleRequest{ScheduledDate: &taken})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestScheduleDelete_NotFound(t *testing.T) {
	_, _, svc := newScheduleSetup()
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
