package service

import (
	"errors"
	"time"

	"github.com/campneus/auditoria-campneus/internal/apierror"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// notFound translates a gorm lookup failure into the API vocabulary.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.WithMessage(apierror.ErrNotFound, msg)
	}
	return err
}

// conflict translates a unique-constraint violation (surfaced by GORM's
// TranslateError as ErrDuplicatedKey) into the API vocabulary. The database
// constraint is the single source of truth; there is no pre-check to race.
func conflict(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.WithMessage(apierror.ErrConflict, msg)
	}
	return err
}

// fkNotFound translates a foreign-key violation on insert into NotFound for
// the referenced row.
func fkNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apierror.WithMessage(apierror.ErrNotFound, msg)
	}
	return err
}
