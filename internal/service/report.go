package service

import (
	"context"
	"fmt"

	"github.com/talentbinder/dashboard/internal/domain"
)

const (
	msgInvalidStatus     = "Ungültiger Status"
	msgInvalidAttendance = "Ungültige Anwesenheit"
)

type ReportAPI interface {
	EventReports(ctx context.Context, eventID uint) ([]domain.Report, error)
	Create(ctx context.Context, eventID uint, form domain.ReportForm) (domain.Report, error)
	Update(ctx context.Context, eventID, candidateID uint, form domain.ReportForm) (domain.Report, error)
	Delete(ctx context.Context, eventID, candidateID uint) error
}

type ReportService struct {
	api      ReportAPI
	sessions SessionResolver
}

func NewReportService(api ReportAPI, sessions SessionResolver) *ReportService {
	return &ReportService{
		api:      api,
		sessions: sessions,
	}
}

func (s *ReportService) ListEventReports(ctx context.Context, eventID uint) ([]domain.Report, error) {
	reports, err := s.api.EventReports(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.api.EventReports -> %w", err)
	}

	return domain.DedupeBy(reports, func(r domain.Report) uint { return r.AttendanceID }), nil
}

func validateReportForm(form domain.ReportForm) error {
	if form.CandidateID == 0 {
		return &ValidationError{Field: "candidateId", Message: msgSelectCandidate}
	}
	if !domain.ValidCandidateStatus(form.Status) {
		return &ValidationError{Field: "status", Message: msgInvalidStatus}
	}
	if !domain.ValidAttendance(form.Attendance) {
		return &ValidationError{Field: "attendance", Message: msgInvalidAttendance}
	}
	return nil
}

func (s *ReportService) CreateReport(ctx context.Context, eventID uint, form domain.ReportForm) (domain.Report, error) {
	if err := validateReportForm(form); err != nil {
		return domain.Report{}, err
	}

	report, err := s.api.Create(ctx, eventID, form)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.api.Create -> %w", err)
	}

	return report, nil
}

// UpdateReport edits a filed report in place. A candidate accumulates one
// report per author; a recruiter may only edit their own, admins may edit any.
func (s *ReportService) UpdateReport(ctx context.Context, token string, eventID, candidateID uint, form domain.ReportForm) (domain.Report, error) {
	form.CandidateID = candidateID
	if err := validateReportForm(form); err != nil {
		return domain.Report{}, err
	}

	sess := s.sessions.Get(ctx, token)
	if sess == nil {
		return domain.Report{}, ErrAuthenticationRequired
	}

	if !sess.IsAdmin() {
		reports, err := s.ListEventReports(ctx, eventID)
		if err != nil {
			return domain.Report{}, err
		}

		owned := false
		for _, r := range reports {
			if r.CandidateID == candidateID && r.CreatedBy == sess.ID {
				owned = true
				break
			}
		}
		if !owned {
			return domain.Report{}, ErrForbidden
		}
	}

	report, err := s.api.Update(ctx, eventID, candidateID, form)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.api.Update -> %w", err)
	}

	return report, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, eventID, candidateID uint) error {
	if err := s.api.Delete(ctx, eventID, candidateID); err != nil {
		return fmt.Errorf("s.api.Delete -> %w", err)
	}

	return nil
}
