package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
)

// MedicoToResponse includes the cidade when it was preloaded.
func MedicoToResponse(medico *entity.Medico) *dto.MedicoResponse {
	if medico == nil {
		return nil
	}

	return &dto.MedicoResponse{
		ID:            medico.ID,
		Nome:          medico.Nome,
		Especialidade: medico.Especialidade,
		CidadeID:      medico.CidadeID,
		CreatedAt:     medico.CreatedAt,
		UpdatedAt:     medico.UpdatedAt,
		DeletedAt:     deletedAt(medico.DeletedAt),
		Cidade:        CidadeToResponse(medico.Cidade),
	}
}

func MedicosToResponses(medicos []entity.Medico) []dto.MedicoResponse {
	responses := make([]dto.MedicoResponse, len(medicos))
	for i := range medicos {
		responses[i] = *MedicoToResponse(&medicos[i])
	}
	return responses
}

// MedicoWithPacientesToResponse renders a doctor together with the patients
// reached through links, each carrying its pivot row.
func MedicoWithPacientesToResponse(medico *entity.Medico, links []entity.MedicoPaciente) *dto.MedicoResponse {
	response := MedicoToResponse(medico)
	if response == nil {
		return nil
	}

	response.Pacientes = LinksToPacienteResponses(links)
	return response
}
