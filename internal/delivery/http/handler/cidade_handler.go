package handler

import (
	"net/http"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type CidadeHandler struct {
	cidadeUsecase usecase.CidadeUsecase
	log           *logrus.Logger
}

func NewCidadeHandler(cidadeUsecase usecase.CidadeUsecase, log *logrus.Logger) *CidadeHandler {
	return &CidadeHandler{
		cidadeUsecase: cidadeUsecase,
		log:           log,
	}
}

// GetAllCidades lists every live cidade
// @Tags Cidades
// @Produce json
// @Success 200 {array} dto.CidadeResponse
// @Router /cidades [get]
func (h *CidadeHandler) GetAllCidades(w http.ResponseWriter, r *http.Request) {
	cidades, err := h.cidadeUsecase.GetAllCidades(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, cidades)
}

// CreateCidade creates a cidade
// @Tags Cidades
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CidadeRequest true "Cidade"
// @Success 201 {object} dto.CidadeResponse
// @Failure 422 {object} response.ValidationResponse
// @Router /cidades [post]
func (h *CidadeHandler) CreateCidade(w http.ResponseWriter, r *http.Request) {
	var req dto.CidadeRequest
	if !decode(w, r, &req) {
		return
	}

	cidade, err := h.cidadeUsecase.CreateCidade(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, cidade)
}

func (h *CidadeHandler) GetCidade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Cidade not found.")
		return
	}

	cidade, err := h.cidadeUsecase.GetCidade(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, cidade)
}

func (h *CidadeHandler) UpdateCidade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Cidade not found.")
		return
	}

	var req dto.CidadeRequest
	if !decode(w, r, &req) {
		return
	}

	cidade, err := h.cidadeUsecase.UpdateCidade(r.Context(), id, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, cidade)
}

func (h *CidadeHandler) DeleteCidade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Cidade not found.")
		return
	}

	if err := h.cidadeUsecase.DeleteCidade(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

// GetMedicosByCidade lists the doctors of one cidade with the cidade embedded
// @Tags Cidades
// @Produce json
// @Param id path int true "Cidade ID"
// @Success 200 {array} dto.MedicoResponse
// @Failure 404 {object} response.MessageResponse
// @Router /cidades/{id}/medicos [get]
func (h *CidadeHandler) GetMedicosByCidade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Cidade not found.")
		return
	}

	medicos, err := h.cidadeUsecase.GetMedicosByCidade(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, medicos)
}
