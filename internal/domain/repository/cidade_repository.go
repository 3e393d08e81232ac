package repository

import (
	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type CidadeRepository interface {
	Create(db *gorm.DB, cidade *entity.Cidade) error
	FindByID(db *gorm.DB, id int64) (*entity.Cidade, error)
	FindAll(db *gorm.DB) ([]entity.Cidade, error)
	Update(db *gorm.DB, cidade *entity.Cidade) error
	Delete(db *gorm.DB, id int64) error
}
