package usecase

import (
	"context"
	"errors"

	"clinica-api/internal/converter"
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
	"clinica-api/internal/domain/repository"
	"clinica-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultAuditLogPageSize = 15

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validator    *validator.CustomValidator
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		validator:    validator,
		auditLogRepo: auditLogRepo,
	}
}

// ListAuditLogs pages through the trail, newest first. Page defaults to 1
// and page size to 15.
func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error) {
	if errs := u.validator.Check(req); !errs.Empty() {
		return nil, errs
	}

	page, perPage := req.Page, req.PerPage
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = defaultAuditLogPageSize
	}

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), entity.AuditLogFilter{
		Action: req.Action,
		UserID: req.UserID,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogPageToResponse(logs, total, page, perPage), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
