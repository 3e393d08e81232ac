package handler

import (
	"net/http"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	log             *logrus.Logger
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, log *logrus.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		log:             log,
	}
}

// GetAuditLog godoc
// @Summary Get audit log entry
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Audit log ID"
// @Success 200 {object} dto.AuditLogResponse
// @Failure 404 {object} response.MessageResponse
// @Router /audit-logs/{id} [get]
func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Audit log not found.")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, auditLog)
}

// ListAuditLogs godoc
// @Summary List audit log entries
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param action query string false "Action, e.g. paciente.create"
// @Param user_id query int false "Acting user"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size (max 100)"
// @Success 200 {object} dto.AuditLogListResponse
// @Failure 422 {object} response.ValidationResponse
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	req := &dto.AuditLogListRequest{
		Action:  r.URL.Query().Get("action"),
		UserID:  q.integer("user_id"),
		Page:    int(q.integer("page")),
		PerPage: int(q.integer("per_page")),
	}
	if !q.errs.Empty() {
		response.ValidationError(w, q.errs)
		return
	}

	auditLogs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, auditLogs)
}
