package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendCredentials(to, username, password string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func newUserSetup() (*stubUserRepo, *stubAuditRepo) {
	users := newStubUserRepo()
	return users, newStubAuditRepo(newStubBranchRepo(), users)
}

func TestUserCreate_HashesPassword(t *testing.T) {
	users, audits := newUserSetup()
	svc := NewUserService(users, audits, nil)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "auditor1", Password: "secret123", Role: "auditor",
	})
	require.NoError(t, err)
	assert.Equal(t, "auditor1", resp.Username)

	stored, err := users.FindByUsername(context.Background(), "auditor1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	users, audits := newUserSetup()
	seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	svc := NewUserService(users, audits, nil)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "auditor1", Password: "secret123", Role: "auditor",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestUserCreate_SendsCredentialsMail(t *testing.T) {
	users, audits := newUserSetup()
	mailer := &recordingMailer{}
	svc := NewUserService(users, audits, mailer)

	email := "novo@campneus.com.br"
	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "novo", Password: "secret123", Role: "auditor", Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{email}, mailer.sent)
}

func TestUserCreate_MailFailureDoesNotFailCreation(t *testing.T) {
	users, audits := newUserSetup()
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc := NewUserService(users, audits, mailer)

	email := "novo@campneus.com.br"
	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "novo", Password: "secret123", Role: "auditor", Email: &email,
	})
	assert.NoError(t, err)
}

func TestUserUpdate_NoFields(t *testing.T) {
	users, audits := newUserSetup()
	u := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	svc := NewUserService(users, audits, nil)

	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, apierror.ErrNoFields)
}

func TestUserUpdate_ChangesRole(t *testing.T) {
	users, audits := newUserSetup()
	u := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	svc := NewUserService(users, audits, nil)

	role := "administrador"
	resp, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "administrador", resp.Role)
}

func TestUserDelete_RestrictedWhenAuthorOfAudits(t *testing.T) {
	users, audits := newUserSetup()
	u := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	b := seedBranch(audits.branches, "F001", "Campinas Centro")
	require.NoError(t, audits.Create(context.Background(), &model.Audit{
		BranchID: b.ID, AuditorID: u.ID, MonthAnalyzed: "2026-08",
	}))
	svc := NewUserService(users, audits, nil)

	err := svc.Delete(context.Background(), u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Equal(t, "usuário possui auditorias vinculadas", err.Error())
}

func TestUserDelete_Unreferenced(t *testing.T) {
	users, audits := newUserSetup()
	u := seedUser(users, "auditor1", "whatever1", model.RoleAuditor)
	svc := NewUserService(users, audits, nil)

	require.NoError(t, svc.Delete(context.Background(), u.ID))
	_, err := users.FindByID(context.Background(), u.ID)
	assert.Error(t, err)
}
