package service

import (
	"context"
	"fmt"

	"github.com/talentbinder/dashboard/internal/domain"
)

type AuditAPI interface {
	GetAll(ctx context.Context, filter domain.AuditFilter) (domain.AuditPage, error)
	Stats(ctx context.Context) ([]domain.AuditStat, error)
}

// AuditService reads the audit trail for the admin logging view. Pagination
// and filtering happen upstream; this layer only normalizes the filter.
type AuditService struct {
	api AuditAPI
}

func NewAuditService(api AuditAPI) *AuditService {
	return &AuditService{api: api}
}

func (s *AuditService) ListLogs(ctx context.Context, filter domain.AuditFilter) (domain.AuditPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	page, err := s.api.GetAll(ctx, filter)
	if err != nil {
		return domain.AuditPage{}, fmt.Errorf("s.api.GetAll -> %w", err)
	}

	return page, nil
}

func (s *AuditService) Stats(ctx context.Context) ([]domain.AuditStat, error) {
	stats, err := s.api.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.Stats -> %w", err)
	}

	return stats, nil
}
