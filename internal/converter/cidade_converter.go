package converter

import (
	"time"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

func CidadeToResponse(cidade *entity.Cidade) *dto.CidadeResponse {
	if cidade == nil {
		return nil
	}

	return &dto.CidadeResponse{
		ID:        cidade.ID,
		Nome:      cidade.Nome,
		Estado:    cidade.Estado,
		CreatedAt: cidade.CreatedAt,
		UpdatedAt: cidade.UpdatedAt,
		DeletedAt: deletedAt(cidade.DeletedAt),
	}
}

func CidadesToResponses(cidades []entity.Cidade) []dto.CidadeResponse {
	responses := make([]dto.CidadeResponse, len(cidades))
	for i := range cidades {
		responses[i] = *CidadeToResponse(&cidades[i])
	}
	return responses
}

func deletedAt(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
