package usecase

import (
	"context"
	"errors"
	"strings"

	"clinica-api/internal/service"
	"clinica-api/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isDuplicateKeyError checks if the error is a unique constraint violation
// on the named index. Dialects that translate errors to gorm.ErrDuplicatedKey
// drop the index name, so those always match.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// checkExists adds the exists message to field unless it already failed a
// shape rule or the referenced row is live.
func checkExists(ctx context.Context, refs service.ReferenceService, db *gorm.DB, errs *validator.Errors, field, kind string, id int64) error {
	if errs.Has(field) {
		return nil
	}

	ok, err := refs.Exists(ctx, db, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		errs.Add(field, validator.ExistsMessage(field))
	}
	return nil
}
