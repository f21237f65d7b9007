package backend

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/talentbinder/dashboard/internal/domain"
)

// RecruiterClient covers both join families hanging off an event: recruiter
// assignments and candidate registrations.
type RecruiterClient struct {
	c *Client
}

func NewRecruiterClient(c *Client) *RecruiterClient {
	return &RecruiterClient{c: c}
}

type recruiterPayload struct {
	AccountID      uint   `json:"accountId"`
	AccountIDSnake uint   `json:"account_id"`
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	FirstNameSnake string `json:"first_name"`
	LastName       string `json:"lastName"`
	LastNameSnake  string `json:"last_name"`
	Email          string `json:"email"`
}

func (p recruiterPayload) toDomain() domain.Recruiter {
	accountID := p.AccountID
	if accountID == 0 {
		accountID = p.AccountIDSnake
	}
	if accountID == 0 {
		accountID = p.ID
	}

	return domain.Recruiter{
		AccountID: accountID,
		FirstName: firstNonEmpty(p.FirstName, p.FirstNameSnake),
		LastName:  firstNonEmpty(p.LastName, p.LastNameSnake),
		Email:     p.Email,
	}
}

type registrationPayload struct {
	CandidateID      uint   `json:"candidateId"`
	CandidateIDSnake uint   `json:"candidate_id"`
	FirstName        string `json:"firstName"`
	FirstNameSnake   string `json:"first_name"`
	LastName         string `json:"lastName"`
	LastNameSnake    string `json:"last_name"`
	Email            string `json:"email"`
}

func (p registrationPayload) toDomain() domain.Registration {
	candidateID := p.CandidateID
	if candidateID == 0 {
		candidateID = p.CandidateIDSnake
	}

	return domain.Registration{
		CandidateID: candidateID,
		FirstName:   firstNonEmpty(p.FirstName, p.FirstNameSnake),
		LastName:    firstNonEmpty(p.LastName, p.LastNameSnake),
		Email:       p.Email,
	}
}

func (rc *RecruiterClient) EventRecruiters(ctx context.Context, eventID uint) ([]domain.Recruiter, error) {
	resp, raw, err := rc.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/recruiters", eventID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("recruiters.EventRecruiters -> %w", err)
	}

	var envelope struct {
		Recruiters []recruiterPayload `json:"recruiters"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	recruiters := make([]domain.Recruiter, 0, len(envelope.Recruiters))
	for _, p := range envelope.Recruiters {
		recruiters = append(recruiters, p.toDomain())
	}

	return recruiters, nil
}

func (rc *RecruiterClient) AddRecruiter(ctx context.Context, eventID, accountID uint) error {
	body := map[string]uint{"recruiter_id": accountID}
	resp, raw, err := rc.c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/recruiters", eventID), nil, body)
	if err != nil {
		return fmt.Errorf("recruiters.AddRecruiter -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

func (rc *RecruiterClient) RemoveRecruiter(ctx context.Context, eventID, accountID uint) error {
	resp, raw, err := rc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d/recruiters/%d", eventID, accountID), nil, nil)
	if err != nil {
		return fmt.Errorf("recruiters.RemoveRecruiter -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

func (rc *RecruiterClient) EventRegistrations(ctx context.Context, eventID uint) (int, []domain.Registration, error) {
	resp, raw, err := rc.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/registrations", eventID), nil, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("recruiters.EventRegistrations -> %w", err)
	}

	var envelope struct {
		Count         int                   `json:"count"`
		Registrations []registrationPayload `json:"registrations"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return 0, nil, err
	}

	registrations := make([]domain.Registration, 0, len(envelope.Registrations))
	for _, p := range envelope.Registrations {
		registrations = append(registrations, p.toDomain())
	}

	count := envelope.Count
	if count == 0 {
		count = len(registrations)
	}

	return count, registrations, nil
}

func (rc *RecruiterClient) AddRegistration(ctx context.Context, eventID, candidateID uint) error {
	body := map[string]uint{"candidate_id": candidateID}
	resp, raw, err := rc.c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/registrations", eventID), nil, body)
	if err != nil {
		return fmt.Errorf("recruiters.AddRegistration -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

func (rc *RecruiterClient) RemoveRegistration(ctx context.Context, eventID, candidateID uint) error {
	resp, raw, err := rc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d/registrations/%d", eventID, candidateID), nil, nil)
	if err != nil {
		return fmt.Errorf("recruiters.RemoveRegistration -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

func (rc *RecruiterClient) Accounts(ctx context.Context) ([]domain.Recruiter, error) {
	resp, raw, err := rc.c.do(ctx, http.MethodGet, "/accounts", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("recruiters.Accounts -> %w", err)
	}

	var envelope struct {
		Accounts []recruiterPayload `json:"accounts"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	accounts := make([]domain.Recruiter, 0, len(envelope.Accounts))
	for _, p := range envelope.Accounts {
		accounts = append(accounts, p.toDomain())
	}

	return accounts, nil
}

// Best-effort variants back the secondary enrichments embedded in card
// rendering. They swallow errors and degrade to empty values so a failing
// lookup never blocks the primary list.

func (rc *RecruiterClient) AccountsBestEffort(ctx context.Context) []domain.Recruiter {
	accounts, err := rc.Accounts(ctx)
	if err != nil {
		zap.L().Warn("account lookup degraded to empty list", zap.Error(err))
		return []domain.Recruiter{}
	}
	return accounts
}

func (rc *RecruiterClient) EventRecruitersBestEffort(ctx context.Context, eventID uint) []domain.Recruiter {
	recruiters, err := rc.EventRecruiters(ctx, eventID)
	if err != nil {
		zap.L().Warn("recruiter lookup degraded to empty list",
			zap.Uint("eventID", eventID), zap.Error(err))
		return []domain.Recruiter{}
	}
	return recruiters
}

func (rc *RecruiterClient) RegistrationCountBestEffort(ctx context.Context, eventID uint) int {
	count, _, err := rc.EventRegistrations(ctx, eventID)
	if err != nil {
		zap.L().Warn("registration count degraded to zero",
			zap.Uint("eventID", eventID), zap.Error(err))
		return 0
	}
	return count
}
