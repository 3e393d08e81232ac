package dto

import "time"

// Request DTOs

type MedicoRequest struct {
	Nome          string `json:"nome" validate:"required,max=255"`
	Especialidade string `json:"especialidade" validate:"required,max=255"`
	CidadeID      int64  `json:"cidade_id" validate:"required"`
}

// AttachPacienteRequest links a patient to the doctor named in the path.
type AttachPacienteRequest struct {
	MedicoID   int64 `json:"medico_id" validate:"required"`
	PacienteID int64 `json:"paciente_id" validate:"required"`
}

// Response DTOs

type MedicoResponse struct {
	ID            int64              `json:"id"`
	Nome          string             `json:"nome"`
	Especialidade string             `json:"especialidade"`
	CidadeID      int64              `json:"cidade_id"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     *time.Time         `json:"deleted_at"`
	Cidade        *CidadeResponse    `json:"cidade,omitempty"`
	Pacientes     []PacienteResponse `json:"pacientes,omitempty"`
}
