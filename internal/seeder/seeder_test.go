package seeder

import (
	"context"
	"testing"

	"clinica-api/internal/domain/entity"
	"clinica-api/internal/repository"
	"clinica-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeeder_RunIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	s := New(db, testutil.NewLogger(), repository.NewUserRepository(), repository.NewCidadeRepository())
	user := DefaultUser{Name: "Christian Ramires", Email: "christian.ramires@example.com", Password: "password"}

	require.NoError(t, s.Run(context.Background(), user))
	require.NoError(t, s.Run(context.Background(), user))

	var users []entity.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("password")))

	var count int64
	require.NoError(t, db.Model(&entity.Cidade{}).Count(&count).Error)
	assert.Equal(t, int64(27), count)
	assert.Len(t, Capitals, 27)
}

func TestSeeder_KeepsExistingCidades(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&entity.Cidade{Nome: "Campinas", Estado: "São Paulo"}).Error)

	s := New(db, testutil.NewLogger(), repository.NewUserRepository(), repository.NewCidadeRepository())
	require.NoError(t, s.Run(context.Background(), DefaultUser{Name: "A", Email: "a@example.com", Password: "x"}))

	var count int64
	require.NoError(t, db.Model(&entity.Cidade{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeeder_ReportsClosedDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	s := New(db, testutil.NewLogger(), repository.NewUserRepository(), repository.NewCidadeRepository())
	err = s.Run(context.Background(), DefaultUser{Name: "A", Email: "a@example.com", Password: "x"})
	assert.ErrorContains(t, err, "database is closed")
}
