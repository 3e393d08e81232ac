package repository

import (
	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicoRepository interface {
	Create(db *gorm.DB, medico *entity.Medico) error
	FindByID(db *gorm.DB, id int64) (*entity.Medico, error)
	FindAll(db *gorm.DB) ([]entity.Medico, error)
	FindByCidadeID(db *gorm.DB, cidadeID int64) ([]entity.Medico, error)
	Update(db *gorm.DB, medico *entity.Medico) error
	Delete(db *gorm.DB, id int64) error
}
