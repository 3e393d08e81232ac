package repository

import (
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type pacienteRepository struct{}

func NewPacienteRepository() domainRepo.PacienteRepository {
	return &pacienteRepository{}
}

func (r *pacienteRepository) Create(db *gorm.DB, paciente *entity.Paciente) error {
	return db.Create(paciente).Error
}

func (r *pacienteRepository) FindByID(db *gorm.DB, id int64) (*entity.Paciente, error) {
	var paciente entity.Paciente
	err := db.First(&paciente, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) FindAll(db *gorm.DB) ([]entity.Paciente, error) {
	var pacientes []entity.Paciente
	err := db.Order("id ASC").Find(&pacientes).Error
	if err != nil {
		return nil, err
	}
	return pacientes, nil
}

func (r *pacienteRepository) ExistsByCPF(db *gorm.DB, cpf string, exceptID int64) (bool, error) {
	var count int64
	query := db.Model(&entity.Paciente{}).Where("cpf = ?", cpf)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pacienteRepository) Update(db *gorm.DB, paciente *entity.Paciente) error {
	return db.Save(paciente).Error
}

func (r *pacienteRepository) Delete(db *gorm.DB, id int64) error {
	return db.Delete(&entity.Paciente{}, id).Error
}
