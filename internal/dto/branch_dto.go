package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateBranchRequest struct {
	Code  string `json:"code"  validate:"required"`
	Name  string `json:"name"  validate:"required"`
	CNPJ  string `json:"cnpj"  validate:"required"`
	State string `json:"state" validate:"required,len=2"`
	City  string `json:"city"  validate:"required"`
}

// UpdateBranchRequest is a partial patch: only non-nil fields change.
type UpdateBranchRequest struct {
	Code  *string `json:"code"  validate:"omitempty,min=1"`
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	CNPJ  *string `json:"cnpj"  validate:"omitempty,min=1"`
	State *string `json:"state" validate:"omitempty,len=2"`
	City  *string `json:"city"  validate:"omitempty,min=1"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type BranchResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CNPJ      string `json:"cnpj"`
	State     string `json:"state"`
	City      string `json:"city"`
	CreatedAt string `json:"created_at"`
}
