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
	"clinica-api/pkg/brdoc"
	"clinica-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPacienteNotFound = errors.New("paciente not found")
)

const cpfUniqueField = "cpfWithoutFormat"

type PacienteUsecase interface {
	GetAllPacientes(ctx context.Context) ([]dto.PacienteResponse, error)
	GetPaciente(ctx context.Context, id int64) (*dto.PacienteResponse, error)
	CreatePaciente(ctx context.Context, req *dto.PacienteRequest) (*dto.PacienteResponse, error)
	UpdatePaciente(ctx context.Context, id int64, req *dto.PacienteRequest) (*dto.PacienteResponse, error)
	DeletePaciente(ctx context.Context, id int64) error
}

type pacienteUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validator    *validator.CustomValidator
	pacienteRepo repository.PacienteRepository
	refs         service.ReferenceService
	auditService service.AuditService
}

func NewPacienteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	pacienteRepo repository.PacienteRepository,
	refs service.ReferenceService,
	auditService service.AuditService,
) PacienteUsecase {
	return &pacienteUsecase{
		db:           db,
		log:          log,
		validator:    validator,
		pacienteRepo: pacienteRepo,
		refs:         refs,
		auditService: auditService,
	}
}

func (u *pacienteUsecase) GetAllPacientes(ctx context.Context) ([]dto.PacienteResponse, error) {
	pacientes, err := u.pacienteRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all pacientes: %+v", err)
		return nil, err
	}

	return converter.PacientesToResponses(pacientes), nil
}

func (u *pacienteUsecase) GetPaciente(ctx context.Context, id int64) (*dto.PacienteResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find paciente: %+v", err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) CreatePaciente(ctx context.Context, req *dto.PacienteRequest) (*dto.PacienteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	if err := u.validate(ctx, tx, req, nil); err != nil {
		return nil, err
	}

	paciente := &entity.Paciente{
		Nome:    req.Nome,
		CPF:     req.CPFWithoutFormat,
		Celular: brdoc.OnlyDigits(req.Celular),
	}
	if err := u.pacienteRepo.Create(tx, paciente); err != nil {
		if isDuplicateKeyError(err, entity.PacienteCPFIndex) {
			return nil, cpfTakenError()
		}
		u.log.Warnf("Failed to create paciente: %+v", err)
		return nil, err
	}

	resp := converter.PacienteToResponse(paciente)
	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionPacienteCreate, "paciente", paciente.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *pacienteUsecase) UpdatePaciente(ctx context.Context, id int64, req *dto.PacienteRequest) (*dto.PacienteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	paciente, err := u.pacienteRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find paciente: %+v", err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	if err := u.validate(ctx, tx, req, &paciente.ID); err != nil {
		return nil, err
	}

	oldValue := converter.PacienteToResponse(paciente)
	paciente.Nome = req.Nome
	paciente.CPF = req.CPFWithoutFormat
	paciente.Celular = brdoc.OnlyDigits(req.Celular)

	if err := u.pacienteRepo.Update(tx, paciente); err != nil {
		if isDuplicateKeyError(err, entity.PacienteCPFIndex) {
			return nil, cpfTakenError()
		}
		u.log.Warnf("Failed to update paciente: %+v", err)
		return nil, err
	}

	resp := converter.PacienteToResponse(paciente)
	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionPacienteUpdate, "paciente", paciente.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// DeletePaciente soft-deletes the patient. Links to doctors are kept.
func (u *pacienteUsecase) DeletePaciente(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	paciente, err := u.pacienteRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find paciente: %+v", err)
		return err
	}
	if paciente == nil {
		return ErrPacienteNotFound
	}

	if err := u.pacienteRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete paciente: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionPacienteDelete, "paciente", id, converter.PacienteToResponse(paciente)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// validate normalizes the request, runs the shape and checksum rules and
// then checks the canonical cpf against live patients other than exceptID.
// Every failure is collected before returning.
func (u *pacienteUsecase) validate(ctx context.Context, tx *gorm.DB, req *dto.PacienteRequest, exceptID *int64) error {
	req.Prepare()

	errs := u.validator.Check(req)
	if !errs.Has(cpfUniqueField) {
		taken, err := u.refs.CPFTaken(ctx, tx, req.CPFWithoutFormat, exceptID)
		if err != nil {
			u.log.Warnf("Failed to check cpf uniqueness: %+v", err)
			return err
		}
		if taken {
			errs.Add(cpfUniqueField, validator.UniqueMessage(cpfUniqueField))
		}
	}

	if !errs.Empty() {
		return errs
	}
	return nil
}

func cpfTakenError() *validator.Errors {
	errs := validator.NewErrors()
	errs.Add(cpfUniqueField, validator.UniqueMessage(cpfUniqueField))
	return errs
}
