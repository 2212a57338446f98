package service

import (
	"context"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"
	"github.com/campneus/auditoria-campneus/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Mailer sends the credentials notification for newly created accounts.
// A nil Mailer (SMTP not configured) disables mail entirely.
type Mailer interface {
	SendCredentials(to, username, password string) error
}

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo      repository.UserRepository
	auditRepo repository.AuditRepository
	mailer    Mailer
}

func NewUserService(repo repository.UserRepository, auditRepo repository.AuditRepository, mailer Mailer) UserService {
	return &userService{repo: repo, auditRepo: auditRepo, mailer: mailer}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.Role(req.Role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, conflict(err, "nome de usuário já existe")
	}

	// Best effort: a mail failure must never fail account creation.
	if s.mailer != nil && user.Email != nil {
		if err := s.mailer.SendCredentials(*user.Email, user.Username, req.Password); err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("failed to send credentials email")
		}
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}
	return resp, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "usuário não encontrado")
	}

	// Fixed whitelist: request fields map to known columns, never to
	// caller-controlled keys.
	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if len(fields) == 0 {
		return nil, apierror.ErrNoFields
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, conflict(err, "nome de usuário já existe")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete is restricted when the user authored audits: removing them would
// orphan observational records, so the API refuses with a conflict.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "usuário não encontrado")
	}
	n, err := s.auditRepo.CountByAuditor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apierror.WithMessage(apierror.ErrConflict, "usuário possui auditorias vinculadas")
	}
	return s.repo.Delete(ctx, id)
}
