package service

import (
	"context"
	"time"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// In-memory repository stubs. They reproduce the two behaviors the services
// depend on: gorm.ErrRecordNotFound on missing rows and gorm.ErrDuplicatedKey
// on unique-constraint violations.

// ── Users ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["username"].(string); ok {
		for otherID, other := range r.users {
			if otherID != id && other.Username == v {
				return gorm.ErrDuplicatedKey
			}
		}
		u.Username = v
	}
	if v, ok := fields["password_hash"].(string); ok {
		u.PasswordHash = v
	}
	if v, ok := fields["role"].(string); ok {
		u.Role = model.Role(v)
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = &v
	}
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func seedUser(r *stubUserRepo, username, password string, role model.Role) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u
}

// ── Branches ──────────────────────────────────────────────────────────────────

type stubBranchRepo struct {
	branches map[uuid.UUID]*model.Branch
}

func newStubBranchRepo() *stubBranchRepo {
	return &stubBranchRepo{branches: make(map[uuid.UUID]*model.Branch)}
}

func (r *stubBranchRepo) Create(_ context.Context, b *model.Branch) error {
	for _, existing := range r.branches {
		if existing.Code == b.Code || existing.CNPJ == b.CNPJ {
			return gorm.ErrDuplicatedKey
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	r.branches[b.ID] = b
	return nil
}

func (r *stubBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Branch, error) {
	b, ok := r.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBranchRepo) List(_ context.Context) ([]model.Branch, error) {
	branches := make([]model.Branch, 0, len(r.branches))
	for _, b := range r.branches {
		branches = append(branches, *b)
	}
	return branches, nil
}

func (r *stubBranchRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	b, ok := r.branches[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["code"].(string); ok {
		for otherID, other := range r.branches {
			if otherID != id && other.Code == v {
				return gorm.ErrDuplicatedKey
			}
		}
		b.Code = v
	}
	if v, ok := fields["name"].(string); ok {
		b.Name = v
	}
	if v, ok := fields["cnpj"].(string); ok {
		b.CNPJ = v
	}
	if v, ok := fields["state"].(string); ok {
		b.State = v
	}
	if v, ok := fields["city"].(string); ok {
		b.City = v
	}
	return nil
}

func (r *stubBranchRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.branches, id)
	return nil
}

func seedBranch(r *stubBranchRepo, code, name string) *model.Branch {
	b := &model.Branch{
		ID:    uuid.New(),
		Code:  code,
		Name:  name,
		CNPJ:  code + "0001",
		State: "SP",
		City:  "Campinas",
	}
	r.branches[b.ID] = b
	return b
}

// ── Audits ────────────────────────────────────────────────────────────────────

type stubAuditRepo struct {
	audits   map[uuid.UUID]*model.Audit
	branches *stubBranchRepo
	users    *stubUserRepo
}

func newStubAuditRepo(branches *stubBranchRepo, users *stubUserRepo) *stubAuditRepo {
	return &stubAuditRepo{
		audits:   make(map[uuid.UUID]*model.Audit),
		branches: branches,
		users:    users,
	}
}

func (r *stubAuditRepo) Create(_ context.Context, a *model.Audit) error {
	if r.branches != nil {
		if _, ok := r.branches.branches[a.BranchID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.audits[a.ID] = a
	return nil
}

func (r *stubAuditRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Audit, error) {
	a, ok := r.audits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	preloaded := *a
	if r.branches != nil {
		if b, ok := r.branches.branches[a.BranchID]; ok {
			preloaded.Branch = *b
		}
	}
	if r.users != nil {
		if u, ok := r.users.users[a.AuditorID]; ok {
			preloaded.Auditor = *u
		}
	}
	return &preloaded, nil
}

func (r *stubAuditRepo) List(_ context.Context, filter dto.AuditFilter) ([]model.Audit, error) {
	audits := make([]model.Audit, 0, len(r.audits))
	for _, a := range r.audits {
		if filter.BranchID != "" && filter.BranchID != a.BranchID.String() {
			continue
		}
		if filter.AuditorID != "" && filter.AuditorID != a.AuditorID.String() {
			continue
		}
		audits = append(audits, *a)
	}
	if filter.Limit > 0 && len(audits) > filter.Limit {
		audits = audits[:filter.Limit]
	}
	return audits, nil
}

func (r *stubAuditRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	a, ok := r.audits[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["score"].(int); ok {
		a.Score = &v
	}
	if v, ok := fields["notes"].(string); ok {
		a.Notes = &v
	}
	if v, ok := fields["general_summary"].(string); ok {
		a.GeneralSummary = &v
	}
	return nil
}

func (r *stubAuditRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.audits, id)
	return nil
}

func (r *stubAuditRepo) CountByBranch(_ context.Context, branchID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range r.audits {
		if a.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

func (r *stubAuditRepo) CountByAuditor(_ context.Context, auditorID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range r.audits {
		if a.AuditorID == auditorID {
			n++
		}
	}
	return n, nil
}

// ── Schedules ─────────────────────────────────────────────────────────────────

type stubScheduleRepo struct {
	schedules map[uuid.UUID]*model.Schedule
	branches  *stubBranchRepo
}

func newStubScheduleRepo(branches *stubBranchRepo) *stubScheduleRepo {
	return &stubScheduleRepo{
		schedules: make(map[uuid.UUID]*model.Schedule),
		branches:  branches,
	}
}

func (r *stubScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	if r.branches != nil {
		if _, ok := r.branches.branches[s.BranchID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	for _, existing := range r.schedules {
		if existing.BranchID == s.BranchID && existing.ScheduledDate.Equal(s.ScheduledDate) {
			return gorm.ErrDuplicatedKey
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.schedules[s.ID] = s
	return nil
}

func (r *stubScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	preloaded := *s
	if r.branches != nil {
		if b, ok := r.branches.branches[s.BranchID]; ok {
			preloaded.Branch = *b
		}
	}
	return &preloaded, nil
}

func (r *stubScheduleRepo) List(_ context.Context, filter dto.ScheduleFilter) ([]model.Schedule, error) {
	schedules := make([]model.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		if filter.BranchID != "" && filter.BranchID != s.BranchID.String() {
			continue
		}
		schedules = append(schedules, *s)
	}
	return schedules, nil
}

func (r *stubScheduleRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	s, ok := r.schedules[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["scheduled_date"].(time.Time); ok {
		for otherID, other := range r.schedules {
			if otherID != id && other.BranchID == s.BranchID && other.ScheduledDate.Equal(v) {
				return gorm.ErrDuplicatedKey
			}
		}
		s.ScheduledDate = v
	}
	if v, ok := fields["audit_type"].(string); ok {
		s.AuditType = v
	}
	return nil
}

func (r *stubScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.schedules, id)
	return nil
}

func (r *stubScheduleRepo) CountByBranch(_ context.Context, branchID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.schedules {
		if s.BranchID == branchID {
			n++
		}
	}
	return n, nil
}
