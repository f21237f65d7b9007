package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/talentbinder/dashboard/internal/domain"
)

const (
	msgSelectRecruiter       = "Bitte wählen Sie einen Recruiter aus"
	msgDuplicateRecruiter    = "Dieser Recruiter ist bereits in der Liste"
	msgSelectCandidate       = "Bitte wählen Sie einen Kandidaten aus"
	msgDuplicateRegistration = "Dieser Kandidat ist bereits für dieses Event angemeldet"
)

type EventAPI interface {
	GetAll(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id uint) (domain.Event, error)
	Create(ctx context.Context, form domain.EventForm) (domain.Event, error)
	Update(ctx context.Context, id uint, form domain.EventForm) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

type RosterAPI interface {
	Accounts(ctx context.Context) ([]domain.Recruiter, error)
	AccountsBestEffort(ctx context.Context) []domain.Recruiter
	EventRecruiters(ctx context.Context, eventID uint) ([]domain.Recruiter, error)
	EventRecruitersBestEffort(ctx context.Context, eventID uint) []domain.Recruiter
	AddRecruiter(ctx context.Context, eventID, accountID uint) error
	RemoveRecruiter(ctx context.Context, eventID, accountID uint) error
	EventRegistrations(ctx context.Context, eventID uint) (int, []domain.Registration, error)
	AddRegistration(ctx context.Context, eventID, candidateID uint) error
	RemoveRegistration(ctx context.Context, eventID, candidateID uint) error
	RegistrationCountBestEffort(ctx context.Context, eventID uint) int
}

type SessionResolver interface {
	Get(ctx context.Context, token string) *domain.Session
	IsOwner(ctx context.Context, token string, creatorID uint) bool
}

type EventService struct {
	api      EventAPI
	roster   RosterAPI
	sessions SessionResolver
	locks    *mutationLocks
}

func NewEventService(api EventAPI, roster RosterAPI, sessions SessionResolver) *EventService {
	return &EventService{
		api:      api,
		roster:   roster,
		sessions: sessions,
		locks:    newMutationLocks(),
	}
}

// ListEvents returns the deduped event collection enriched with per-event
// registration counts. The counts are fetched concurrently and best-effort: a
// failing count degrades that one event to zero without touching its
// siblings. Backend order is preserved.
func (s *EventService) ListEvents(ctx context.Context, search string) ([]domain.Event, error) {
	events, err := s.api.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.GetAll -> %w", err)
	}

	events = domain.DedupeBy(events, func(e domain.Event) uint { return e.ID })

	var wg sync.WaitGroup
	for i := range events {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			events[i].RegistrationsCount = s.roster.RegistrationCountBestEffort(ctx, events[i].ID)
		}(i)
	}
	wg.Wait()

	s.fillCreatorNames(ctx, events)

	if search == "" {
		return events, nil
	}

	needle := strings.ToLower(search)
	filtered := events[:0:0]
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) {
			filtered = append(filtered, e)
		}
	}

	return filtered, nil
}

// fillCreatorNames resolves creator names missing from the event payload
// (older backend revisions omit them) out of the accounts lookup. Best-effort:
// an unresolved account just keeps its empty name.
func (s *EventService) fillCreatorNames(ctx context.Context, events []domain.Event) {
	needed := false
	for _, e := range events {
		if e.CreatedByAccountID != 0 && e.CreatedByFirstName == "" && e.CreatedByLastName == "" {
			needed = true
			break
		}
	}
	if !needed {
		return
	}

	byID := make(map[uint]domain.Recruiter)
	for _, a := range s.roster.AccountsBestEffort(ctx) {
		byID[a.AccountID] = a
	}
	for i := range events {
		if events[i].CreatedByFirstName != "" || events[i].CreatedByLastName != "" {
			continue
		}
		if a, ok := byID[events[i].CreatedByAccountID]; ok {
			events[i].CreatedByFirstName = a.FirstName
			events[i].CreatedByLastName = a.LastName
		}
	}
}

// GetEvent returns the event with its derived detail data: registration count
// and assigned recruiters, both best-effort.
func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.Get -> %w", err)
	}
	event.RegistrationsCount = s.roster.RegistrationCountBestEffort(ctx, event.ID)
	event.Recruiters = s.roster.EventRecruitersBestEffort(ctx, event.ID)

	return event, nil
}

// CreateEvent stages the submitted recruiter ids, persists the event and then
// flushes the staged set sequentially. Staging rejects an unselected or
// duplicate id before any network call; during the flush a failing add is
// logged and skipped, so it neither rolls back the created event nor aborts
// the remaining adds.
func (s *EventService) CreateEvent(ctx context.Context, form domain.EventForm, pendingRecruiterIDs []uint) (domain.Event, error) {
	pending := NewPendingRecruiters()
	for _, accountID := range pendingRecruiterIDs {
		if err := pending.Add(accountID); err != nil {
			return domain.Event{}, err
		}
	}

	created, err := s.api.Create(ctx, form)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.Create -> %w", err)
	}

	for _, accountID := range pending.IDs() {
		if err := s.roster.AddRecruiter(ctx, created.ID, accountID); err != nil {
			zap.L().Warn("skipping pending recruiter after failed add",
				zap.Uint("eventID", created.ID),
				zap.Uint("accountID", accountID),
				zap.Error(err))
		}
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, token string, id uint, form domain.EventForm) (domain.Event, error) {
	current, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.Get -> %w", err)
	}
	if !s.sessions.IsOwner(ctx, token, current.CreatedByAccountID) {
		return domain.Event{}, ErrForbidden
	}

	updated, err := s.api.Update(ctx, id, form)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.api.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, token string, id uint) error {
	current, err := s.api.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("s.api.Get -> %w", err)
	}
	if !s.sessions.IsOwner(ctx, token, current.CreatedByAccountID) {
		return ErrForbidden
	}

	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.api.Delete -> %w", err)
	}

	return nil
}

// Accounts lists every account eligible for recruiter assignment, deduped for
// the picker.
func (s *EventService) Accounts(ctx context.Context) ([]domain.Recruiter, error) {
	accounts, err := s.roster.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roster.Accounts -> %w", err)
	}

	return domain.DedupeBy(accounts, func(r domain.Recruiter) uint { return r.AccountID }), nil
}

func (s *EventService) EventRecruiters(ctx context.Context, eventID uint) ([]domain.Recruiter, error) {
	recruiters, err := s.roster.EventRecruiters(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.roster.EventRecruiters -> %w", err)
	}

	return domain.DedupeBy(recruiters, func(r domain.Recruiter) uint { return r.AccountID }), nil
}

// AddRecruiter applies an edit-time membership add: duplicate membership is
// rejected before the join-create is issued, and the returned list is the
// re-queried server truth, never a local optimistic insert.
func (s *EventService) AddRecruiter(ctx context.Context, eventID, accountID uint) ([]domain.Recruiter, error) {
	if accountID == 0 {
		return nil, &ValidationError{Field: "recruiterId", Message: msgSelectRecruiter}
	}

	key := fmt.Sprintf("event:%d:recruiters", eventID)
	if !s.locks.acquire(key) {
		return nil, ErrMutationInFlight
	}
	defer s.locks.release(key)

	members, err := s.EventRecruiters(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.AccountID == accountID {
			return nil, &ValidationError{Field: "recruiterId", Message: msgDuplicateRecruiter}
		}
	}

	if err := s.roster.AddRecruiter(ctx, eventID, accountID); err != nil {
		return nil, fmt.Errorf("s.roster.AddRecruiter -> %w", err)
	}

	return s.EventRecruiters(ctx, eventID)
}

func (s *EventService) RemoveRecruiter(ctx context.Context, eventID, accountID uint) ([]domain.Recruiter, error) {
	key := fmt.Sprintf("event:%d:recruiters", eventID)
	if !s.locks.acquire(key) {
		return nil, ErrMutationInFlight
	}
	defer s.locks.release(key)

	if err := s.roster.RemoveRecruiter(ctx, eventID, accountID); err != nil {
		return nil, fmt.Errorf("s.roster.RemoveRecruiter -> %w", err)
	}

	return s.EventRecruiters(ctx, eventID)
}

func (s *EventService) EventRegistrations(ctx context.Context, eventID uint) (int, []domain.Registration, error) {
	count, registrations, err := s.roster.EventRegistrations(ctx, eventID)
	if err != nil {
		return 0, nil, fmt.Errorf("s.roster.EventRegistrations -> %w", err)
	}

	registrations = domain.DedupeBy(registrations, func(r domain.Registration) uint { return r.CandidateID })
	return count, registrations, nil
}

func (s *EventService) AddRegistration(ctx context.Context, eventID, candidateID uint) ([]domain.Registration, error) {
	if candidateID == 0 {
		return nil, &ValidationError{Field: "candidateId", Message: msgSelectCandidate}
	}

	key := fmt.Sprintf("event:%d:registrations", eventID)
	if !s.locks.acquire(key) {
		return nil, ErrMutationInFlight
	}
	defer s.locks.release(key)

	_, members, err := s.EventRegistrations(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.CandidateID == candidateID {
			return nil, &ValidationError{Field: "candidateId", Message: msgDuplicateRegistration}
		}
	}

	if err := s.roster.AddRegistration(ctx, eventID, candidateID); err != nil {
		return nil, fmt.Errorf("s.roster.AddRegistration -> %w", err)
	}

	_, members, err = s.EventRegistrations(ctx, eventID)
	return members, err
}

// RemoveRegistration is destructive from the end user's point of view; the
// HTTP layer requires an explicit confirmation before calling it. The
// join-delete itself is idempotent (a 204 on repeat counts as success).
func (s *EventService) RemoveRegistration(ctx context.Context, eventID, candidateID uint) ([]domain.Registration, error) {
	key := fmt.Sprintf("event:%d:registrations", eventID)
	if !s.locks.acquire(key) {
		return nil, ErrMutationInFlight
	}
	defer s.locks.release(key)

	if err := s.roster.RemoveRegistration(ctx, eventID, candidateID); err != nil {
		return nil, fmt.Errorf("s.roster.RemoveRegistration -> %w", err)
	}

	_, members, err := s.EventRegistrations(ctx, eventID)
	return members, err
}

// NewPendingRecruiters stages recruiter edits for an event that has not been
// created yet.
func NewPendingRecruiters() *PendingSet {
	return NewPendingSet(msgSelectRecruiter, msgDuplicateRecruiter)
}
