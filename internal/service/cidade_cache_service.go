package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinica-api/internal/domain/entity"
	"clinica-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// CidadeListCacheKey holds the JSON encoded list of live cidades.
const CidadeListCacheKey = "cidades:all"

// cidadeListVersionKey counts invalidations. A list loaded before an
// invalidation must not be written back after it.
const cidadeListVersionKey = "cidades:version"

var errStaleCidadeList = errors.New("cidade list changed while loading")

// CidadeCacheService serves the cidade list from Redis, loading it from the
// database on a miss. Concurrent misses share one query. Redis failures fall
// back to the database and are only logged.
type CidadeCacheService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	cidadeRepo  repository.CidadeRepository
	ttl         time.Duration
	group       singleflight.Group
}

func NewCidadeCacheService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	cidadeRepo repository.CidadeRepository,
	ttl time.Duration,
) *CidadeCacheService {
	return &CidadeCacheService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		cidadeRepo:  cidadeRepo,
		ttl:         ttl,
	}
}

func (s *CidadeCacheService) List(ctx context.Context) ([]entity.Cidade, error) {
	cached, err := s.redisClient.Get(ctx, CidadeListCacheKey).Bytes()
	switch {
	case err == nil:
		var cidades []entity.Cidade
		if err := json.Unmarshal(cached, &cidades); err == nil {
			return cidades, nil
		}
		s.log.Warnf("Discarding unreadable cidade cache entry")
	case !errors.Is(err, redis.Nil):
		s.log.Warnf("Failed to read cidade cache: %+v", err)
	}

	v, err, _ := s.group.Do(CidadeListCacheKey, func() (interface{}, error) {
		version, versionOK := s.version(ctx)

		cidades, err := s.cidadeRepo.FindAll(s.db.WithContext(ctx))
		if err != nil {
			return nil, err
		}

		if versionOK {
			s.store(ctx, version, cidades)
		}
		return cidades, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]entity.Cidade), nil
}

// Invalidate drops the cached list and bumps the version so in-flight loads
// discard what they read. Call it after every committed cidade write. It
// still runs when the request context is already cancelled.
func (s *CidadeCacheService) Invalidate(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, cidadeListVersionKey)
		pipe.Del(ctx, CidadeListCacheKey)
		return nil
	})
	if err != nil {
		s.log.Warnf("Failed to invalidate cidade cache: %+v", err)
	}
}

// version reads the invalidation counter. ok is false when Redis cannot be
// read, in which case nothing should be cached.
func (s *CidadeCacheService) version(ctx context.Context) (string, bool) {
	version, err := s.redisClient.Get(ctx, cidadeListVersionKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warnf("Failed to read cidade cache version: %+v", err)
		return "", false
	}
	return version, true
}

// store writes the list only if no invalidation happened since version was
// read, watching the version key until the write commits.
func (s *CidadeCacheService) store(ctx context.Context, version string, cidades []entity.Cidade) {
	data, err := json.Marshal(cidades)
	if err != nil {
		s.log.Warnf("Failed to encode cidade cache: %+v", err)
		return
	}

	err = s.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, cidadeListVersionKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleCidadeList
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, CidadeListCacheKey, data, s.ttl)
			return nil
		})
		return err
	}, cidadeListVersionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleCidadeList), errors.Is(err, redis.TxFailedErr):
		s.log.Debugf("Skipping stale cidade cache write")
	default:
		s.log.Warnf("Failed to write cidade cache: %+v", err)
	}
}
