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

func newAuditSetup() (*stubBranchRepo, *stubUserRepo, *stubAuditRepo, AuditService) {
	branches := newStubBranchRepo()
	users := newStubUserRepo()
	audits := newStubAuditRepo(branches, users)
	return branches, users, audits, NewAuditService(audits)
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestAuditCreate_ForcesAuditorToCaller(t *testing.T) {
	branches, users, _, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	auditor := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)

	resp, err := svc.Create(context.Background(), auditor.ID, dto.CreateAuditRequest{
		BranchID:       b.ID.String(),
		VisitDate:      "2026-08-15",
		MonthAnalyzed:  "2026-07",
		ScheduledVisit: boolPtr(true),
		Score:          intPtr(87),
	})
	require.NoError(t, err)
	assert.Equal(t, auditor.ID.String(), resp.AuditorID)
	assert.Equal(t, "auditor1", resp.AuditorName)
	assert.Equal(t, "F001", resp.BranchCode)
	assert.Equal(t, "2026-08-15", resp.VisitDate)
}

func TestAuditCreate_UnknownBranch(t *testing.T) {
	_, users, _, svc := newAuditSetup()
	auditor := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)

	_, err := svc.Create(context.Background(), auditor.ID, dto.CreateAuditRequest{
		BranchID:       uuid.NewString(),
		VisitDate:      "2026-08-15",
		MonthAnalyzed:  "2026-07",
		ScheduledVisit: boolPtr(false),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Equal(t, "filial não encontrada", err.Error())
}

func TestAuditUpdate_OwnerCanEdit(t *testing.T) {
	branches, users, audits, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	owner := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	audit := &model.Audit{BranchID: b.ID, AuditorID: owner.ID, MonthAnalyzed: "2026-07"}
	require.NoError(t, audits.Create(context.Background(), audit))

	resp, err := svc.Update(context.Background(), owner, audit.ID, dto.UpdateAuditRequest{Score: intPtr(92)})
	require.NoError(t, err)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 92, *resp.Score)
}

func TestAuditUpdate_NonOwnerForbidden(t *testing.T) {
	branches, users, audits, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	owner := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	other := seedUser(users, "auditor2", "whatever2", model.RoleAuditor)
	audit := &model.Audit{BranchID: b.ID, AuditorID: owner.ID, MonthAnalyzed: "2026-07"}
	require.NoError(t, audits.Create(context.Background(), audit))

	_, err := svc.Update(context.Background(), other, audit.ID, dto.UpdateAuditRequest{Score: intPtr(10)})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrForbidden)
	assert.Equal(t, "sem permissão para editar esta auditoria", err.Error())
}

func TestAuditUpdate_AdminCanEditAny(t *testing.T) {
	branches, users, audits, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	owner := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	admin := seedUser(users, "admin", "whatever3", model.RoleAdministrator)
	audit := &model.Audit{BranchID: b.ID, AuditorID: owner.ID, MonthAnalyzed: "2026-07"}
	require.NoError(t, audits.Create(context.Background(), audit))

	_, err := svc.Update(context.Background(), admin, audit.ID, dto.UpdateAuditRequest{Score: intPtr(55)})
	assert.NoError(t, err)
}

func TestAuditUpdate_NoFields(t *testing.T) {
	branches, users, audits, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	owner := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	audit := &model.Audit{BranchID: b.ID, AuditorID: owner.ID, MonthAnalyzed: "2026-07"}
	require.NoError(t, audits.Create(context.Background(), audit))

	_, err := svc.Update(context.Background(), owner, audit.ID, dto.UpdateAuditRequest{})
	assert.ErrorIs(t, err, apierror.ErrNoFields)
}

func TestAuditList_DefaultLimit(t *testing.T) {
	branches, users, audits, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	auditor := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	for i := 0; i < 60; i++ {
		require.NoError(t, audits.Create(context.Background(), &model.Audit{
			BranchID: b.ID, AuditorID: auditor.ID, MonthAnalyzed: "2026-07",
		}))
	}

	resp, err := svc.List(context.Background(), dto.AuditFilter{})
	require.NoError(t, err)
	assert.Len(t, resp, 50)
}

func TestAuditList_LimitClampedToMax(t *testing.T) {
	branches, users, audits, svc := newAuditSetup()
	b := seedBranch(branches, "F001", "Campinas Centro")
	auditor := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	for i := 0; i < 250; i++ {
		require.NoError(t, audits.Create(context.Background(), &model.Audit{
			BranchID: b.ID, AuditorID: auditor.ID, MonthAnalyzed: "2026-07",
		}))
	}

	// An oversized limit caps at 200, it must not shrink below the max.
	resp, err := svc.List(context.Background(), dto.AuditFilter{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, resp, 200)
}

func TestAuditDelete_NotFound(t *testing.T) {
	_, _, _, svc := newAuditSetup()
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
