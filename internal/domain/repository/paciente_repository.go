package repository

import (
	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PacienteRepository interface {
	Create(db *gorm.DB, paciente *entity.Paciente) error
	FindByID(db *gorm.DB, id int64) (*entity.Paciente, error)
	FindAll(db *gorm.DB) ([]entity.Paciente, error)
	// ExistsByCPF reports whether a live patient other than exceptID holds cpf.
	// Pass zero to check every patient.
	ExistsByCPF(db *gorm.DB, cpf string, exceptID int64) (bool, error)
	Update(db *gorm.DB, paciente *entity.Paciente) error
	Delete(db *gorm.DB, id int64) error
}
