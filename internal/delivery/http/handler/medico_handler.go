package handler

import (
	"net/http"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type MedicoHandler struct {
	medicoUsecase usecase.MedicoUsecase
	log           *logrus.Logger
}

func NewMedicoHandler(medicoUsecase usecase.MedicoUsecase, log *logrus.Logger) *MedicoHandler {
	return &MedicoHandler{
		medicoUsecase: medicoUsecase,
		log:           log,
	}
}

func (h *MedicoHandler) GetAllMedicos(w http.ResponseWriter, r *http.Request) {
	medicos, err := h.medicoUsecase.GetAllMedicos(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, medicos)
}

// CreateMedico creates a doctor in an existing cidade
// @Tags Medicos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MedicoRequest true "Medico"
// @Success 201 {object} dto.MedicoResponse
// @Failure 422 {object} response.ValidationResponse
// @Router /medicos [post]
func (h *MedicoHandler) CreateMedico(w http.ResponseWriter, r *http.Request) {
	var req dto.MedicoRequest
	if !decode(w, r, &req) {
		return
	}

	medico, err := h.medicoUsecase.CreateMedico(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, medico)
}

func (h *MedicoHandler) GetMedico(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medico not found.")
		return
	}

	medico, err := h.medicoUsecase.GetMedico(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, medico)
}

func (h *MedicoHandler) UpdateMedico(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medico not found.")
		return
	}

	var req dto.MedicoRequest
	if !decode(w, r, &req) {
		return
	}

	medico, err := h.medicoUsecase.UpdateMedico(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, medico)
}

func (h *MedicoHandler) DeleteMedico(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medico not found.")
		return
	}

	if err := h.medicoUsecase.DeleteMedico(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

func (h *MedicoHandler) GetPacientes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medico not found.")
		return
	}

	pacientes, err := h.medicoUsecase.GetPacientes(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, pacientes)
}

// AttachPaciente links a patient to the doctor
// @Tags Medicos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Medico ID"
// @Param request body dto.AttachPacienteRequest true "Link"
// @Success 201 {object} dto.MedicoResponse
// @Failure 404 {object} response.MessageResponse
// @Failure 422 {object} response.ValidationResponse
// @Router /medicos/{id}/pacientes [post]
func (h *MedicoHandler) AttachPaciente(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medico not found.")
		return
	}

	var req dto.AttachPacienteRequest
	if !decode(w, r, &req) {
		return
	}

	medico, err := h.medicoUsecase.AttachPaciente(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, medico)
}
