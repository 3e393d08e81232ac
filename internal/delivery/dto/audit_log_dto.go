package dto

import (
	"time"

	"clinica-api/internal/domain/entity"
)

// AuditLogListRequest carries the query string of GET /audit-logs.
type AuditLogListRequest struct {
	Action  string `json:"action" validate:"omitempty,max=100"`
	UserID  int64  `json:"user_id" validate:"omitempty,min=1"`
	Page    int    `json:"page" validate:"omitempty,min=1"`
	PerPage int    `json:"per_page" validate:"omitempty,min=1,max=100"`
}

type AuditLogResponse struct {
	ID        int64         `json:"id"`
	User      *UserResponse `json:"user"`
	Action    string        `json:"action"`
	Metadata  entity.JSON   `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs     []AuditLogResponse `json:"logs"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
	LastPage int                `json:"last_page"`
}
