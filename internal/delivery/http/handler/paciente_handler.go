package handler

import (
	"net/http"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type PacienteHandler struct {
	pacienteUsecase usecase.PacienteUsecase
	log             *logrus.Logger
}

func NewPacienteHandler(pacienteUsecase usecase.PacienteUsecase, log *logrus.Logger) *PacienteHandler {
	return &PacienteHandler{
		pacienteUsecase: pacienteUsecase,
		log:             log,
	}
}

func (h *PacienteHandler) GetAllPacientes(w http.ResponseWriter, r *http.Request) {
	pacientes, err := h.pacienteUsecase.GetAllPacientes(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, pacientes)
}

// CreatePaciente registers a patient
// @Tags Pacientes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PacienteRequest true "Paciente"
// @Success 201 {object} dto.PacienteResponse
// @Failure 422 {object} response.ValidationResponse
// @Router /pacientes [post]
func (h *PacienteHandler) CreatePaciente(w http.ResponseWriter, r *http.Request) {
	var req dto.PacienteRequest
	if !decode(w, r, &req) {
		return
	}

	paciente, err := h.pacienteUsecase.CreatePaciente(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, paciente)
}

func (h *PacienteHandler) GetPaciente(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Paciente not found.")
		return
	}

	paciente, err := h.pacienteUsecase.GetPaciente(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, paciente)
}

func (h *PacienteHandler) UpdatePaciente(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Paciente not found.")
		return
	}

	var req dto.PacienteRequest
	if !decode(w, r, &req) {
		return
	}

	paciente, err := h.pacienteUsecase.UpdatePaciente(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, paciente)
}

func (h *PacienteHandler) DeletePaciente(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Paciente not found.")
		return
	}

	if err := h.pacienteUsecase.DeletePaciente(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.NoContent(w)
}
