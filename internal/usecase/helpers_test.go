package usecase

import (
	"errors"
	"fmt"
	"testing"

	"clinica-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation on the index",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "idx_paciente_cpf"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("insert paciente: %w", &pgconn.PgError{Code: "23505", ConstraintName: "IDX_PACIENTE_CPF"}),
			want: true,
		},
		{
			name: "unique violation on another index",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "idx_medico_paciente"},
			want: false,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "idx_paciente_cpf"},
			want: false,
		},
		{
			name: "translated duplicate key",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKeyError(tt.err, entity.PacienteCPFIndex))
		})
	}
}
