package service

import (
	"context"
	"fmt"

	"clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

// Kinds of record a request may reference by id.
const (
	RefCidade   = "cidade"
	RefMedico   = "medico"
	RefPaciente = "paciente"
)

// ReferenceService answers the cross-record questions asked while
// validating a request. Soft-deleted rows never count.
type ReferenceService interface {
	// CPFTaken reports whether a live patient other than excludeID already
	// holds the canonical cpf.
	CPFTaken(ctx context.Context, db *gorm.DB, cpf string, excludeID *int64) (bool, error)
	Exists(ctx context.Context, db *gorm.DB, kind string, id int64) (bool, error)
}

type referenceService struct {
	cidadeRepo   repository.CidadeRepository
	medicoRepo   repository.MedicoRepository
	pacienteRepo repository.PacienteRepository
}

func NewReferenceService(
	cidadeRepo repository.CidadeRepository,
	medicoRepo repository.MedicoRepository,
	pacienteRepo repository.PacienteRepository,
) ReferenceService {
	return &referenceService{
		cidadeRepo:   cidadeRepo,
		medicoRepo:   medicoRepo,
		pacienteRepo: pacienteRepo,
	}
}

func (s *referenceService) CPFTaken(ctx context.Context, db *gorm.DB, cpf string, excludeID *int64) (bool, error) {
	var except int64
	if excludeID != nil {
		except = *excludeID
	}
	return s.pacienteRepo.ExistsByCPF(db.WithContext(ctx), cpf, except)
}

func (s *referenceService) Exists(ctx context.Context, db *gorm.DB, kind string, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	db = db.WithContext(ctx)
	switch kind {
	case RefCidade:
		cidade, err := s.cidadeRepo.FindByID(db, id)
		return cidade != nil, err
	case RefMedico:
		medico, err := s.medicoRepo.FindByID(db, id)
		return medico != nil, err
	case RefPaciente:
		paciente, err := s.pacienteRepo.FindByID(db, id)
		return paciente != nil, err
	default:
		return false, fmt.Errorf("unknown reference kind %q", kind)
	}
}
