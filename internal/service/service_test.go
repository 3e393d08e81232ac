package service

import (
	"context"
	"testing"
	"time"

	"clinica-api/internal/domain/entity"
	"clinica-api/internal/repository"
	"clinica-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCidadeCacheService_List(t *testing.T) {
	db := testutil.NewDB(t)
	client, server := testutil.NewRedis(t)
	cidadeRepo := repository.NewCidadeRepository()
	cache := NewCidadeCacheService(db, client, testutil.NewLogger(), cidadeRepo, time.Minute)
	ctx := context.Background()

	require.NoError(t, cidadeRepo.Create(db, &entity.Cidade{Nome: "Recife", Estado: "Pernambuco"}))

	cidades, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cidades, 1)
	assert.True(t, server.Exists(CidadeListCacheKey))
	assert.Equal(t, time.Minute, server.TTL(CidadeListCacheKey))

	// A write the cache was not told about stays invisible until invalidation
	require.NoError(t, cidadeRepo.Create(db, &entity.Cidade{Nome: "Palmas", Estado: "Tocantins"}))

	cidades, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cidades, 1)

	cache.Invalidate(ctx)
	assert.False(t, server.Exists(CidadeListCacheKey))

	cidades, err = cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cidades, 2)
	assert.Equal(t, "Recife", cidades[0].Nome)
	assert.Equal(t, "Palmas", cidades[1].Nome)
}

func TestCidadeCacheService_FallsBackWhenRedisIsDown(t *testing.T) {
	db := testutil.NewDB(t)
	client, server := testutil.NewRedis(t)
	cidadeRepo := repository.NewCidadeRepository()
	cache := NewCidadeCacheService(db, client, testutil.NewLogger(), cidadeRepo, time.Minute)

	require.NoError(t, cidadeRepo.Create(db, &entity.Cidade{Nome: "Aracaju", Estado: "Sergipe"}))
	server.Close()

	cidades, err := cache.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cidades, 1)
	assert.Equal(t, "Aracaju", cidades[0].Nome)
}

func TestCidadeCacheService_DiscardsCorruptEntry(t *testing.T) {
	db := testutil.NewDB(t)
	client, server := testutil.NewRedis(t)
	cidadeRepo := repository.NewCidadeRepository()
	cache := NewCidadeCacheService(db, client, testutil.NewLogger(), cidadeRepo, time.Minute)

	require.NoError(t, cidadeRepo.Create(db, &entity.Cidade{Nome: "Manaus", Estado: "Amazonas"}))
	require.NoError(t, server.Set(CidadeListCacheKey, "not json"))

	cidades, err := cache.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cidades, 1)
	assert.Equal(t, "Manaus", cidades[0].Nome)
}

func TestCidadeCacheService_SkipsWriteAfterInvalidate(t *testing.T) {
	db := testutil.NewDB(t)
	client, server := testutil.NewRedis(t)
	cidadeRepo := repository.NewCidadeRepository()
	cache := NewCidadeCacheService(db, client, testutil.NewLogger(), cidadeRepo, time.Minute)
	ctx := context.Background()

	require.NoError(t, cidadeRepo.Create(db, &entity.Cidade{Nome: "Belém", Estado: "Pará"}))

	// A load starts, then a write commits and invalidates before the load stores
	version, ok := cache.version(ctx)
	require.True(t, ok)
	cache.Invalidate(ctx)
	cache.store(ctx, version, []entity.Cidade{{Nome: "Stale", Estado: "Pará"}})
	assert.False(t, server.Exists(CidadeListCacheKey))

	cidades, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cidades, 1)
	assert.Equal(t, "Belém", cidades[0].Nome)
	assert.True(t, server.Exists(CidadeListCacheKey))

	// The current version still writes
	version, ok = cache.version(ctx)
	require.True(t, ok)
	cache.store(ctx, version, []entity.Cidade{{Nome: "Fresh", Estado: "Pará"}})

	cidades, err = cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cidades, 1)
	assert.Equal(t, "Fresh", cidades[0].Nome)
}

func TestCidadeCacheService_InvalidateIgnoresCancelledContext(t *testing.T) {
	db := testutil.NewDB(t)
	client, server := testutil.NewRedis(t)
	cidadeRepo := repository.NewCidadeRepository()
	cache := NewCidadeCacheService(db, client, testutil.NewLogger(), cidadeRepo, time.Minute)

	require.NoError(t, cidadeRepo.Create(db, &entity.Cidade{Nome: "Natal", Estado: "Rio Grande do Norte"}))
	_, err := cache.List(context.Background())
	require.NoError(t, err)
	require.True(t, server.Exists(CidadeListCacheKey))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cache.Invalidate(ctx)

	assert.False(t, server.Exists(CidadeListCacheKey))
}

func TestReferenceService(t *testing.T) {
	db := testutil.NewDB(t)
	cidadeRepo := repository.NewCidadeRepository()
	medicoRepo := repository.NewMedicoRepository()
	pacienteRepo := repository.NewPacienteRepository()
	refs := NewReferenceService(cidadeRepo, medicoRepo, pacienteRepo)
	ctx := context.Background()

	cidade := &entity.Cidade{Nome: "Cuiabá", Estado: "Mato Grosso"}
	require.NoError(t, cidadeRepo.Create(db, cidade))
	paciente := &entity.Paciente{Nome: "Ana", CPF: "11144477735", Celular: "11987654321"}
	require.NoError(t, pacienteRepo.Create(db, paciente))

	t.Run("exists", func(t *testing.T) {
		ok, err := refs.Exists(ctx, db, RefCidade, cidade.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = refs.Exists(ctx, db, RefMedico, 1)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = refs.Exists(ctx, db, RefPaciente, 0)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = refs.Exists(ctx, db, "hospital", 1)
		assert.Error(t, err)
	})

	t.Run("cpf taken", func(t *testing.T) {
		taken, err := refs.CPFTaken(ctx, db, "11144477735", nil)
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = refs.CPFTaken(ctx, db, "11144477735", &paciente.ID)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("soft-deleted rows do not exist", func(t *testing.T) {
		require.NoError(t, pacienteRepo.Delete(db, paciente.ID))

		ok, err := refs.Exists(ctx, db, RefPaciente, paciente.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		taken, err := refs.CPFTaken(ctx, db, "11144477735", nil)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestAuditService(t *testing.T) {
	db := testutil.NewDB(t)
	auditRepo := repository.NewAuditLogRepository()
	audit := NewAuditService(testutil.NewLogger(), auditRepo)
	ctx := context.Background()

	require.NoError(t, audit.LogUpdate(ctx, db, nil, entity.AuditActionMedicoUpdate, "medico", 7, map[string]string{"nome": "a"}, map[string]string{"nome": "b"}))

	logs, _, err := auditRepo.FindAll(db, entity.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].UserID)
	assert.Equal(t, entity.AuditActionMedicoUpdate, logs[0].Action)
	assert.Equal(t, "medico", logs[0].Metadata["entity"])
	assert.EqualValues(t, 7, logs[0].Metadata["entity_id"])
	assert.Equal(t, map[string]interface{}{"nome": "b"}, logs[0].Metadata["new_value"])
}
