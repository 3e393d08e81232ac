package entity

import (
	"time"

	"gorm.io/gorm"
)

// MedicoPaciente links a doctor to a patient. Rows are never hard-deleted,
// so the history of a soft-deleted patient stays attached to the doctor.
type MedicoPaciente struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicoID   int64          `gorm:"not null;uniqueIndex:idx_medico_paciente,where:deleted_at IS NULL" json:"medico_id"`
	PacienteID int64          `gorm:"not null;index;uniqueIndex:idx_medico_paciente,where:deleted_at IS NULL" json:"paciente_id"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// Relationships
	Medico   *Medico   `gorm:"foreignKey:MedicoID" json:"medico,omitempty"`
	Paciente *Paciente `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
}

func (MedicoPaciente) TableName() string {
	return "medico_paciente"
}
