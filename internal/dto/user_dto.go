package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"     validate:"required,oneof=administrador auditor"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// UpdateUserRequest is a partial patch: only non-nil fields change.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"     validate:"omitempty,oneof=administrador auditor"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
}
