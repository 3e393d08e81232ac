package entity

import (
	"time"

	"gorm.io/gorm"
)

// Medico is a doctor registered in one city
type Medico struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome          string         `gorm:"type:varchar(255);not null" json:"nome"`
	Especialidade string         `gorm:"type:varchar(255);not null" json:"especialidade"`
	CidadeID      int64          `gorm:"not null;index" json:"cidade_id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// Relationships
	Cidade *Cidade          `gorm:"foreignKey:CidadeID" json:"cidade,omitempty"`
	Links  []MedicoPaciente `gorm:"foreignKey:MedicoID" json:"-"`
}

func (Medico) TableName() string {
	return "medico"
}
