package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a retail location subject to periodic audits. Reference data,
// maintained only by administrators. Code and CNPJ are unique at the DB level
// so concurrent creates cannot slip past the check (duplicates surface as
// gorm.ErrDuplicatedKey).
type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	CNPJ      string    `gorm:"column:cnpj;uniqueIndex;not null"`
	State     string    `gorm:"type:varchar(2);not null"`
	City      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
