package repository

import (
	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicoPacienteRepository interface {
	Create(db *gorm.DB, link *entity.MedicoPaciente) error
	FindLink(db *gorm.DB, medicoID, pacienteID int64) (*entity.MedicoPaciente, error)
	// FindByMedicoID returns the doctor's links with their patient loaded,
	// oldest first.
	FindByMedicoID(db *gorm.DB, medicoID int64) ([]entity.MedicoPaciente, error)
}
