package dto

import (
	"time"

	"clinica-api/pkg/brdoc"
)

// Request DTOs

// PacienteRequest is shared by create and update. CPFWithoutFormat is derived
// from CPF by Prepare and is never read from the client.
type PacienteRequest struct {
	Nome             string `json:"nome" validate:"required,max=255"`
	CPF              string `json:"cpf" validate:"required,cpf_format,cpf"`
	Celular          string `json:"celular" validate:"required,celular_com_ddd"`
	CPFWithoutFormat string `json:"cpfWithoutFormat" validate:"required"`
}

// Prepare derives the canonical cpf used by the uniqueness check.
func (r *PacienteRequest) Prepare() {
	r.CPFWithoutFormat = brdoc.OnlyDigits(r.CPF)
}

// Response DTOs

type PacienteResponse struct {
	ID        int64          `json:"id"`
	Nome      string         `json:"nome"`
	CPF       string         `json:"cpf"`
	Celular   string         `json:"celular"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt *time.Time     `json:"deleted_at"`
	Pivot     *PivotResponse `json:"pivot,omitempty"`
}

// PivotResponse describes the link row a patient was reached through.
type PivotResponse struct {
	MedicoID   int64     `json:"medico_id"`
	PacienteID int64     `json:"paciente_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
