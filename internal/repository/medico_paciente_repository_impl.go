package repository

import (
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicoPacienteRepository struct{}

func NewMedicoPacienteRepository() domainRepo.MedicoPacienteRepository {
	return &medicoPacienteRepository{}
}

func (r *medicoPacienteRepository) Create(db *gorm.DB, link *entity.MedicoPaciente) error {
	return db.Omit("Medico", "Paciente").Create(link).Error
}

func (r *medicoPacienteRepository) FindLink(db *gorm.DB, medicoID, pacienteID int64) (*entity.MedicoPaciente, error) {
	var link entity.MedicoPaciente
	err := db.Where("medico_id = ? AND paciente_id = ?", medicoID, pacienteID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *medicoPacienteRepository) FindByMedicoID(db *gorm.DB, medicoID int64) ([]entity.MedicoPaciente, error) {
	var links []entity.MedicoPaciente
	// Preload applies the soft-delete scope, so links to removed patients come
	// back with a nil Paciente.
	err := db.Preload("Paciente").
		Where("medico_id = ?", medicoID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	active := links[:0]
	for _, link := range links {
		if link.Paciente != nil {
			active = append(active, link)
		}
	}
	return active, nil
}
