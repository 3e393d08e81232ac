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
	ErrMedicoNotFound = errors.New("medico not found")
)

const attachSavepoint = "attach_paciente"

type MedicoUsecase interface {
	GetAllMedicos(ctx context.Context) ([]dto.MedicoResponse, error)
	GetMedico(ctx context.Context, id int64) (*dto.MedicoResponse, error)
	CreateMedico(ctx context.Context, req *dto.MedicoRequest) (*dto.MedicoResponse, error)
	UpdateMedico(ctx context.Context, id int64, req *dto.MedicoRequest) (*dto.MedicoResponse, error)
	DeleteMedico(ctx context.Context, id int64) error
	GetPacientes(ctx context.Context, id int64) ([]dto.PacienteResponse, error)
	AttachPaciente(ctx context.Context, id int64, req *dto.AttachPacienteRequest) (*dto.MedicoResponse, error)
}

type medicoUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	validator          *validator.CustomValidator
	medicoRepo         repository.MedicoRepository
	medicoPacienteRepo repository.MedicoPacienteRepository
	refs               service.ReferenceService
	auditService       service.AuditService
}

func NewMedicoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	medicoRepo repository.MedicoRepository,
	medicoPacienteRepo repository.MedicoPacienteRepository,
	refs service.ReferenceService,
	auditService service.AuditService,
) MedicoUsecase {
	return &medicoUsecase{
		db:                 db,
		log:                log,
		validator:          validator,
		medicoRepo:         medicoRepo,
		medicoPacienteRepo: medicoPacienteRepo,
		refs:               refs,
		auditService:       auditService,
	}
}

func (u *medicoUsecase) GetAllMedicos(ctx context.Context) ([]dto.MedicoResponse, error) {
	medicos, err := u.medicoRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all medicos: %+v", err)
		return nil, err
	}

	return converter.MedicosToResponses(medicos), nil
}

func (u *medicoUsecase) GetMedico(ctx context.Context, id int64) (*dto.MedicoResponse, error) {
	medico, err := u.medicoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medico: %+v", err)
		return nil, err
	}
	if medico == nil {
		return nil, ErrMedicoNotFound
	}

	return converter.MedicoToResponse(medico), nil
}

func (u *medicoUsecase) CreateMedico(ctx context.Context, req *dto.MedicoRequest) (*dto.MedicoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	if err := u.validate(ctx, tx, req); err != nil {
		return nil, err
	}

	medico := &entity.Medico{
		Nome:          req.Nome,
		Especialidade: req.Especialidade,
		CidadeID:      req.CidadeID,
	}
	if err := u.medicoRepo.Create(tx, medico); err != nil {
		u.log.Warnf("Failed to create medico: %+v", err)
		return nil, err
	}

	resp := converter.MedicoToResponse(medico)
	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionMedicoCreate, "medico", medico.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *medicoUsecase) UpdateMedico(ctx context.Context, id int64, req *dto.MedicoRequest) (*dto.MedicoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	medico, err := u.medicoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medico: %+v", err)
		return nil, err
	}
	if medico == nil {
		return nil, ErrMedicoNotFound
	}

	if err := u.validate(ctx, tx, req); err != nil {
		return nil, err
	}

	oldValue := converter.MedicoToResponse(medico)
	medico.Nome = req.Nome
	medico.Especialidade = req.Especialidade
	medico.CidadeID = req.CidadeID

	if err := u.medicoRepo.Update(tx, medico); err != nil {
		u.log.Warnf("Failed to update medico: %+v", err)
		return nil, err
	}

	resp := converter.MedicoToResponse(medico)
	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionMedicoUpdate, "medico", medico.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *medicoUsecase) DeleteMedico(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	medico, err := u.medicoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medico: %+v", err)
		return err
	}
	if medico == nil {
		return ErrMedicoNotFound
	}

	if err := u.medicoRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete medico: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionMedicoDelete, "medico", id, converter.MedicoToResponse(medico)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *medicoUsecase) GetPacientes(ctx context.Context, id int64) ([]dto.PacienteResponse, error) {
	db := u.db.WithContext(ctx)

	medico, err := u.medicoRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medico: %+v", err)
		return nil, err
	}
	if medico == nil {
		return nil, ErrMedicoNotFound
	}

	links, err := u.medicoPacienteRepo.FindByMedicoID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pacientes of medico: %+v", err)
		return nil, err
	}

	return converter.LinksToPacienteResponses(links), nil
}

// AttachPaciente links a patient to the doctor in the path and returns the
// doctor with every linked patient. Attaching a pair that is already linked
// changes nothing.
func (u *medicoUsecase) AttachPaciente(ctx context.Context, id int64, req *dto.AttachPacienteRequest) (*dto.MedicoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	medico, err := u.medicoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medico: %+v", err)
		return nil, err
	}
	if medico == nil {
		return nil, ErrMedicoNotFound
	}

	errs := u.validator.Check(req)
	if err := checkExists(ctx, u.refs, tx, errs, "medico_id", service.RefMedico, req.MedicoID); err != nil {
		u.log.Warnf("Failed to check medico reference: %+v", err)
		return nil, err
	}
	if err := checkExists(ctx, u.refs, tx, errs, "paciente_id", service.RefPaciente, req.PacienteID); err != nil {
		u.log.Warnf("Failed to check paciente reference: %+v", err)
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}

	link, err := u.medicoPacienteRepo.FindLink(tx, medico.ID, req.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find medico paciente link: %+v", err)
		return nil, err
	}

	if link == nil {
		link = &entity.MedicoPaciente{
			MedicoID:   medico.ID,
			PacienteID: req.PacienteID,
		}

		if err := tx.SavePoint(attachSavepoint).Error; err != nil {
			return nil, err
		}
		if err := u.medicoPacienteRepo.Create(tx, link); err != nil {
			if !isDuplicateKeyError(err, entity.MedicoPacienteIndex) {
				u.log.Warnf("Failed to attach paciente: %+v", err)
				return nil, err
			}
			// A concurrent request linked the same pair first.
			if err := tx.RollbackTo(attachSavepoint).Error; err != nil {
				return nil, err
			}
		} else {
			if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionMedicoAttach, "medico_paciente", link.ID, entity.JSON{
				"medico_id":   link.MedicoID,
				"paciente_id": link.PacienteID,
			}); err != nil {
				return nil, err
			}
		}
	}

	links, err := u.medicoPacienteRepo.FindByMedicoID(tx, medico.ID)
	if err != nil {
		u.log.Warnf("Failed to find pacientes of medico: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicoWithPacientesToResponse(medico, links), nil
}

// validate runs the shape rules and then checks cidade_id against live
// cidades, reporting everything at once.
func (u *medicoUsecase) validate(ctx context.Context, tx *gorm.DB, req *dto.MedicoRequest) error {
	errs := u.validator.Check(req)
	if err := checkExists(ctx, u.refs, tx, errs, "cidade_id", service.RefCidade, req.CidadeID); err != nil {
		u.log.Warnf("Failed to check cidade reference: %+v", err)
		return err
	}
	if !errs.Empty() {
		return errs
	}
	return nil
}
