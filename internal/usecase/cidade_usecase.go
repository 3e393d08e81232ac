package usecase

import (
	"context"
	"errors"

	"clinica-api/internal/converter"
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/delivery/http/middleware"
	"clinica-api/internal/domain/entity"
	"clinica-api/internal/domain/repository"
	"clinica-api/internal/service"
	"clinica-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCidadeNotFound = errors.New("cidade not found")
)

type CidadeUsecase interface {
	GetAllCidades(ctx context.Context) ([]dto.CidadeResponse, error)
	GetCidade(ctx context.Context, id int64) (*dto.CidadeResponse, error)
	CreateCidade(ctx context.Context, req *dto.CidadeRequest) (*dto.CidadeResponse, error)
	UpdateCidade(ctx context.Context, id int64, req *dto.CidadeRequest) (*dto.CidadeResponse, error)
	DeleteCidade(ctx context.Context, id int64) error
	GetMedicosByCidade(ctx context.Context, id int64) ([]dto.MedicoResponse, error)
}

type cidadeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validator    *validator.CustomValidator
	cidadeRepo   repository.CidadeRepository
	medicoRepo   repository.MedicoRepository
	cache        *service.CidadeCacheService
	auditService service.AuditService
}

func NewCidadeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	cidadeRepo repository.CidadeRepository,
	medicoRepo repository.MedicoRepository,
	cache *service.CidadeCacheService,
	auditService service.AuditService,
) CidadeUsecase {
	return &cidadeUsecase{
		db:           db,
		log:          log,
		validator:    validator,
		cidadeRepo:   cidadeRepo,
		medicoRepo:   medicoRepo,
		cache:        cache,
		auditService: auditService,
	}
}

func (u *cidadeUsecase) GetAllCidades(ctx context.Context) ([]dto.CidadeResponse, error) {
	cidades, err := u.cache.List(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all cidades: %+v", err)
		return nil, err
	}

	return converter.CidadesToResponses(cidades), nil
}

func (u *cidadeUsecase) GetCidade(ctx context.Context, id int64) (*dto.CidadeResponse, error) {
	cidade, err := u.cidadeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find cidade: %+v", err)
		return nil, err
	}
	if cidade == nil {
		return nil, ErrCidadeNotFound
	}

	return converter.CidadeToResponse(cidade), nil
}

func (u *cidadeUsecase) CreateCidade(ctx context.Context, req *dto.CidadeRequest) (*dto.CidadeResponse, error) {
	if errs := u.validator.Check(req); !errs.Empty() {
		return nil, errs
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	cidade := &entity.Cidade{
		Nome:   req.Nome,
		Estado: req.Estado,
	}
	if err := u.cidadeRepo.Create(tx, cidade); err != nil {
		u.log.Warnf("Failed to create cidade: %+v", err)
		return nil, err
	}

	resp := converter.CidadeToResponse(cidade)
	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionCidadeCreate, "cidade", cidade.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)
	return resp, nil
}

func (u *cidadeUsecase) UpdateCidade(ctx context.Context, id int64, req *dto.CidadeRequest) (*dto.CidadeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	cidade, err := u.cidadeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find cidade: %+v", err)
		return nil, err
	}
	if cidade == nil {
		return nil, ErrCidadeNotFound
	}

	if errs := u.validator.Check(req); !errs.Empty() {
		return nil, errs
	}

	oldValue := converter.CidadeToResponse(cidade)
	cidade.Nome = req.Nome
	cidade.Estado = req.Estado

	if err := u.cidadeRepo.Update(tx, cidade); err != nil {
		u.log.Warnf("Failed to update cidade: %+v", err)
		return nil, err
	}

	resp := converter.CidadeToResponse(cidade)
	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionCidadeUpdate, "cidade", cidade.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)
	return resp, nil
}

func (u *cidadeUsecase) DeleteCidade(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	cidade, err := u.cidadeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find cidade: %+v", err)
		return err
	}
	if cidade == nil {
		return ErrCidadeNotFound
	}

	if err := u.cidadeRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete cidade: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionCidadeDelete, "cidade", id, converter.CidadeToResponse(cidade)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.cache.Invalidate(ctx)
	return nil
}

func (u *cidadeUsecase) GetMedicosByCidade(ctx context.Context, id int64) ([]dto.MedicoResponse, error) {
	db := u.db.WithContext(ctx)

	cidade, err := u.cidadeRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find cidade: %+v", err)
		return nil, err
	}
	if cidade == nil {
		return nil, ErrCidadeNotFound
	}

	medicos, err := u.medicoRepo.FindByCidadeID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicos by cidade: %+v", err)
		return nil, err
	}

	return converter.MedicosToResponses(medicos), nil
}
