package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

const (
	msgSelectApprenticeship    = "Bitte wählen Sie eine Lehrstelle aus"
	msgDuplicateApprenticeship = "Diese Lehrstelle ist bereits zugeordnet"
)

type CandidateAPI interface {
	GetAll(ctx context.Context, params backend.CandidateListParams) ([]domain.Candidate, error)
	Create(ctx context.Context, form backend.CandidateForm) (domain.Candidate, error)
	Update(ctx context.Context, id uint, form backend.CandidateForm) error
	Delete(ctx context.Context, id uint) error
	Apprenticeships(ctx context.Context, candidateID uint) ([]domain.Apprenticeship, error)
	AddApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) error
	RemoveApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) error
}

type CandidateService struct {
	api   CandidateAPI
	locks *mutationLocks
}

func NewCandidateService(api CandidateAPI) *CandidateService {
	return &CandidateService{
		api:   api,
		locks: newMutationLocks(),
	}
}

// ListCandidates passes search/status/sort through to the backend and dedupes
// the result by id before it reaches any view.
func (s *CandidateService) ListCandidates(ctx context.Context, params backend.CandidateListParams) ([]domain.Candidate, error) {
	candidates, err := s.api.GetAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("s.api.GetAll -> %w", err)
	}

	return domain.DedupeBy(candidates, func(c domain.Candidate) uint { return c.ID }), nil
}

// CreateCandidate stages the submitted apprenticeship ids, persists the
// candidate and flushes the staged set with the same partial-success policy as
// event creation.
func (s *CandidateService) CreateCandidate(ctx context.Context, form backend.CandidateForm, pendingApprenticeshipIDs []uint) (domain.Candidate, error) {
	if form.Status == "" {
		form.Status = domain.CandidateStatusNormal
	}

	pending := NewPendingApprenticeships()
	for _, apprenticeshipID := range pendingApprenticeshipIDs {
		if err := pending.Add(apprenticeshipID); err != nil {
			return domain.Candidate{}, err
		}
	}

	created, err := s.api.Create(ctx, form)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.api.Create -> %w", err)
	}

	for _, apprenticeshipID := range pending.IDs() {
		if err := s.api.AddApprenticeship(ctx, created.ID, apprenticeshipID); err != nil {
			zap.L().Warn("skipping pending apprenticeship after failed add",
				zap.Uint("candidateID", created.ID),
				zap.Uint("apprenticeshipID", apprenticeshipID),
				zap.Error(err))
		}
	}

	return created, nil
}

func (s *CandidateService) UpdateCandidate(ctx context.Context, id uint, form backend.CandidateForm) error {
	if err := s.api.Update(ctx, id, form); err != nil {
		return fmt.Errorf("s.api.Update -> %w", err)
	}

	return nil
}

func (s *CandidateService) DeleteCandidate(ctx context.Context, id uint) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.api.Delete -> %w", err)
	}

	return nil
}

func (s *CandidateService) Apprenticeships(ctx context.Context, candidateID uint) ([]domain.Apprenticeship, error) {
	apprenticeships, err := s.api.Apprenticeships(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("s.api.Apprenticeships -> %w", err)
	}

	return domain.DedupeBy(apprenticeships, func(a domain.Apprenticeship) uint { return a.ID }), nil
}

func (s *CandidateService) AddApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) ([]domain.Apprenticeship, error) {
	if apprenticeshipID == 0 {
		return nil, &ValidationError{Field: "apprenticeshipId", Message: msgSelectApprenticeship}
	}

	key := fmt.Sprintf("candidate:%d:apprenticeships", candidateID)
	if !s.locks.acquire(key) {
		return nil, ErrMutationInFlight
	}
	defer s.locks.release(key)

	members, err := s.Apprenticeships(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.ID == apprenticeshipID {
			return nil, &ValidationError{Field: "apprenticeshipId", Message: msgDuplicateApprenticeship}
		}
	}

	if err := s.api.AddApprenticeship(ctx, candidateID, apprenticeshipID); err != nil {
		return nil, fmt.Errorf("s.api.AddApprenticeship -> %w", err)
	}

	return s.Apprenticeships(ctx, candidateID)
}

func (s *CandidateService) RemoveApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) ([]domain.Apprenticeship, error) {
	key := fmt.Sprintf("candidate:%d:apprenticeships", candidateID)
	if !s.locks.acquire(key) {
		return nil, ErrMutationInFlight
	}
	defer s.locks.release(key)

	if err := s.api.RemoveApprenticeship(ctx, candidateID, apprenticeshipID); err != nil {
		return nil, fmt.Errorf("s.api.RemoveApprenticeship -> %w", err)
	}

	return s.Apprenticeships(ctx, candidateID)
}

// NewPendingApprenticeships stages apprenticeship edits for a candidate that
// has not been created yet.
func NewPendingApprenticeships() *PendingSet {
	return NewPendingSet(msgSelectApprenticeship, msgDuplicateApprenticeship)
}
