package entity

import (
	"time"

	"gorm.io/gorm"
)

// Cidade is a city where doctors practice
type Cidade struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string         `gorm:"type:varchar(100);not null" json:"nome"`
	Estado    string         `gorm:"type:varchar(100);not null" json:"estado"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// Relationships
	Medicos []Medico `gorm:"foreignKey:CidadeID" json:"medicos,omitempty"`
}

func (Cidade) TableName() string {
	return "cidades"
}
