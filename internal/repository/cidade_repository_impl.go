package repository

import (
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type cidadeRepository struct{}

func NewCidadeRepository() domainRepo.CidadeRepository {
	return &cidadeRepository{}
}

func (r *cidadeRepository) Create(db *gorm.DB, cidade *entity.Cidade) error {
	return db.Create(cidade).Error
}

func (r *cidadeRepository) FindByID(db *gorm.DB, id int64) (*entity.Cidade, error) {
	var cidade entity.Cidade
	err := db.First(&cidade, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cidade, nil
}

func (r *cidadeRepository) FindAll(db *gorm.DB) ([]entity.Cidade, error) {
	var cidades []entity.Cidade
	err := db.Order("id ASC").Find(&cidades).Error
	if err != nil {
		return nil, err
	}
	return cidades, nil
}

func (r *cidadeRepository) Update(db *gorm.DB, cidade *entity.Cidade) error {
	return db.Save(cidade).Error
}

func (r *cidadeRepository) Delete(db *gorm.DB, id int64) error {
	return db.Delete(&entity.Cidade{}, id).Error
}
