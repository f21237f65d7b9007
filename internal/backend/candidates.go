package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/talentbinder/dashboard/internal/domain"
)

type CandidateClient struct {
	c *Client
}

func NewCandidateClient(c *Client) *CandidateClient {
	return &CandidateClient{c: c}
}

// CandidateListParams are serialized as query parameters; absent values are
// omitted entirely instead of being sent empty. Status may be a single value
// or a comma-joined multi-value.
type CandidateListParams struct {
	Search string
	Status string
	SortBy string
}

func (p CandidateListParams) query() url.Values {
	query := url.Values{}
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	if p.Status != "" {
		query.Set("status", p.Status)
	}
	if p.SortBy != "" {
		query.Set("sort_by", p.SortBy)
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

type candidatePayload struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	FirstNameSnake string `json:"first_name"`
	LastName       string `json:"lastName"`
	LastNameSnake  string `json:"last_name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	CreatedAtSnake string `json:"created_at"`

	Apprenticeships []domain.Apprenticeship `json:"apprenticeships"`
	// Historical single-FK shape; folded into the many-to-many model.
	ApprenticeshipID *uint `json:"apprenticeship_id"`
}

func (p candidatePayload) toDomain() domain.Candidate {
	apprenticeships := p.Apprenticeships
	if len(apprenticeships) == 0 && p.ApprenticeshipID != nil {
		apprenticeships = []domain.Apprenticeship{{ID: *p.ApprenticeshipID}}
	}

	return domain.Candidate{
		ID:              p.ID,
		FirstName:       firstNonEmpty(p.FirstName, p.FirstNameSnake),
		LastName:        firstNonEmpty(p.LastName, p.LastNameSnake),
		Email:           p.Email,
		Status:          p.Status,
		Apprenticeships: apprenticeships,
		CreatedAt:       parseTime(firstNonEmpty(p.CreatedAt, p.CreatedAtSnake)),
	}
}

func (cc *CandidateClient) GetAll(ctx context.Context, params CandidateListParams) ([]domain.Candidate, error) {
	resp, raw, err := cc.c.do(ctx, http.MethodGet, "/candidates", params.query(), nil)
	if err != nil {
		return nil, fmt.Errorf("candidates.GetAll -> %w", err)
	}

	var envelope struct {
		Candidates []candidatePayload `json:"candidates"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(envelope.Candidates))
	for _, p := range envelope.Candidates {
		candidates = append(candidates, p.toDomain())
	}

	return candidates, nil
}

type CandidateForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

func (cc *CandidateClient) Create(ctx context.Context, form CandidateForm) (domain.Candidate, error) {
	resp, raw, err := cc.c.do(ctx, http.MethodPost, "/candidates", nil, form)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("candidates.Create -> %w", err)
	}

	var envelope struct {
		Candidate candidatePayload `json:"candidate"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Candidate{}, err
	}

	return envelope.Candidate.toDomain(), nil
}

func (cc *CandidateClient) Update(ctx context.Context, id uint, form CandidateForm) error {
	resp, raw, err := cc.c.do(ctx, http.MethodPatch, fmt.Sprintf("/candidates/%d", id), nil, form)
	if err != nil {
		return fmt.Errorf("candidates.Update -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

func (cc *CandidateClient) Delete(ctx context.Context, id uint) error {
	resp, raw, err := cc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/candidates/%d", id), nil, nil)
	if err != nil {
		return fmt.Errorf("candidates.Delete -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

// AddApprenticeship creates a candidate↔apprenticeship join row.
func (cc *CandidateClient) AddApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) error {
	body := map[string]uint{"apprenticeship_id": apprenticeshipID}
	resp, raw, err := cc.c.do(ctx, http.MethodPost, fmt.Sprintf("/candidates/%d/apprenticeships", candidateID), nil, body)
	if err != nil {
		return fmt.Errorf("candidates.AddApprenticeship -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

func (cc *CandidateClient) RemoveApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) error {
	resp, raw, err := cc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/candidates/%d/apprenticeships/%d", candidateID, apprenticeshipID), nil, nil)
	if err != nil {
		return fmt.Errorf("candidates.RemoveApprenticeship -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}

// Apprenticeships returns the persisted membership for one candidate.
func (cc *CandidateClient) Apprenticeships(ctx context.Context, candidateID uint) ([]domain.Apprenticeship, error) {
	resp, raw, err := cc.c.do(ctx, http.MethodGet, fmt.Sprintf("/candidates/%d/apprenticeships", candidateID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("candidates.Apprenticeships -> %w", err)
	}

	var envelope struct {
		Apprenticeships []domain.Apprenticeship `json:"apprenticeships"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.Apprenticeships, nil
}
