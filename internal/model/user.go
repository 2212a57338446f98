package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a user. Stored as its Portuguese wire value.
type Role string

const (
	RoleAdministrator Role = "administrador"
	RoleAuditor       Role = "auditor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleAuditor:
		return true
	}
	return false
}

// User is an authenticated operator of the system. Accounts are managed
// exclusively by administrators; there is no self-service signup.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
