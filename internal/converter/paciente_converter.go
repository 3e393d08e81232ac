package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
	"clinica-api/pkg/brdoc"
)

// PacienteToResponse renders cpf and celular in display form.
func PacienteToResponse(paciente *entity.Paciente) *dto.PacienteResponse {
	if paciente == nil {
		return nil
	}

	return &dto.PacienteResponse{
		ID:        paciente.ID,
		Nome:      paciente.Nome,
		CPF:       brdoc.FormatCPF(paciente.CPF),
		Celular:   brdoc.FormatPhone(paciente.Celular),
		CreatedAt: paciente.CreatedAt,
		UpdatedAt: paciente.UpdatedAt,
		DeletedAt: deletedAt(paciente.DeletedAt),
	}
}

func PacientesToResponses(pacientes []entity.Paciente) []dto.PacienteResponse {
	responses := make([]dto.PacienteResponse, len(pacientes))
	for i := range pacientes {
		responses[i] = *PacienteToResponse(&pacientes[i])
	}
	return responses
}

// LinksToPacienteResponses expects Paciente to be loaded on every link.
func LinksToPacienteResponses(links []entity.MedicoPaciente) []dto.PacienteResponse {
	responses := make([]dto.PacienteResponse, 0, len(links))
	for _, link := range links {
		if link.Paciente == nil {
			continue
		}
		response := PacienteToResponse(link.Paciente)
		response.Pivot = &dto.PivotResponse{
			MedicoID:   link.MedicoID,
			PacienteID: link.PacienteID,
			CreatedAt:  link.CreatedAt,
			UpdatedAt:  link.UpdatedAt,
		}
		responses = append(responses, *response)
	}
	return responses
}
