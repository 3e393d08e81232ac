package entity

import (
	"time"

	"gorm.io/gorm"
)

// Paciente stores cpf and celular as digits only; display formatting happens
// when the record is shaped into a response.
type Paciente struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string         `gorm:"type:varchar(255);not null" json:"nome"`
	CPF       string         `gorm:"column:cpf;type:char(11);not null;uniqueIndex:idx_paciente_cpf,where:deleted_at IS NULL" json:"cpf"`
	Celular   string         `gorm:"type:varchar(20);not null" json:"celular"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Paciente) TableName() string {
	return "paciente"
}

// Unique index names, matched against constraint violations.
const (
	PacienteCPFIndex    = "idx_paciente_cpf"
	MedicoPacienteIndex = "idx_medico_paciente"
)
