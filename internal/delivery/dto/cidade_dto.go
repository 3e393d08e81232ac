package dto

import "time"

// Request DTOs

type CidadeRequest struct {
	Nome   string `json:"nome" validate:"required,max=100"`
	Estado string `json:"estado" validate:"required,max=100"`
}

// Response DTOs

type CidadeResponse struct {
	ID        int64      `json:"id"`
	Nome      string     `json:"nome"`
	Estado    string     `json:"estado"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}
