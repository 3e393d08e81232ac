package repository

import (
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicoRepository struct{}

func NewMedicoRepository() domainRepo.MedicoRepository {
	return &medicoRepository{}
}

func (r *medicoRepository) Create(db *gorm.DB, medico *entity.Medico) error {
	return db.Omit("Cidade", "Links").Create(medico).Error
}

func (r *medicoRepository) FindByID(db *gorm.DB, id int64) (*entity.Medico, error) {
	var medico entity.Medico
	err := db.First(&medico, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medico, nil
}

func (r *medicoRepository) FindAll(db *gorm.DB) ([]entity.Medico, error) {
	var medicos []entity.Medico
	err := db.Order("id ASC").Find(&medicos).Error
	if err != nil {
		return nil, err
	}
	return medicos, nil
}

func (r *medicoRepository) FindByCidadeID(db *gorm.DB, cidadeID int64) ([]entity.Medico, error) {
	var medicos []entity.Medico
	err := db.Preload("Cidade").
		Where("cidade_id = ?", cidadeID).
		Order("id ASC").
		Find(&medicos).Error
	if err != nil {
		return nil, err
	}
	return medicos, nil
}

func (r *medicoRepository) Update(db *gorm.DB, medico *entity.Medico) error {
	return db.Omit("Cidade", "Links").Save(medico).Error
}

func (r *medicoRepository) Delete(db *gorm.DB, id int64) error {
	return db.Delete(&entity.Medico{}, id).Error
}
