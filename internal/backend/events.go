package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbinder/dashboard/internal/domain"
)

type EventClient struct {
	c *Client
}

func NewEventClient(c *Client) *EventClient {
	return &EventClient{c: c}
}

type eventPayload struct {
	ID                          uint   `json:"id"`
	Title                       string `json:"title"`
	Description                 string `json:"description"`
	StartingAt                  string `json:"startingAt"`
	StartingAtSnake             string `json:"starting_at"`
	EndingAt                    string `json:"endingAt"`
	Duration                    string `json:"duration"`
	BranchID                    *uint  `json:"branchId"`
	TemplateID                  *uint  `json:"templateId"`
	LocationID                  *uint  `json:"locationId"`
	RegistrationRequired        bool   `json:"registrationRequired"`
	InvitationsSendingAt        string `json:"invitationsSendingAt"`
	RegistrationsClosingAt      string `json:"registrationsClosingAt"`
	CreatedAt                   string `json:"createdAt"`
	CreatedAtSnake              string `json:"created_at"`
	CreatedByAccountID          uint   `json:"createdByAccountId"`
	CreatedByAccountIDSnake     uint   `json:"created_by_account_id"`
	CreatedByFirstName          string `json:"createdByFirstName"`
	CreatedByLastName           string `json:"createdByLastName"`
	CreatedByFirstNameSnakeCase string `json:"created_by_first_name"`
	CreatedByLastNameSnakeCase  string `json:"created_by_last_name"`
}

func (p eventPayload) toDomain() domain.Event {
	createdBy := p.CreatedByAccountID
	if createdBy == 0 {
		createdBy = p.CreatedByAccountIDSnake
	}

	return domain.Event{
		ID:                     p.ID,
		Title:                  p.Title,
		Description:            p.Description,
		StartingAt:             parseTime(firstNonEmpty(p.StartingAt, p.StartingAtSnake)),
		EndingAt:               parseTimePtr(p.EndingAt),
		Duration:               p.Duration,
		BranchID:               p.BranchID,
		TemplateID:             p.TemplateID,
		LocationID:             p.LocationID,
		RegistrationRequired:   p.RegistrationRequired,
		InvitationsSendingAt:   parseTimePtr(p.InvitationsSendingAt),
		RegistrationsClosingAt: parseTimePtr(p.RegistrationsClosingAt),
		CreatedAt:              parseTime(firstNonEmpty(p.CreatedAt, p.CreatedAtSnake)),
		CreatedByAccountID:     createdBy,
		CreatedByFirstName:     firstNonEmpty(p.CreatedByFirstName, p.CreatedByFirstNameSnakeCase),
		CreatedByLastName:      firstNonEmpty(p.CreatedByLastName, p.CreatedByLastNameSnakeCase),
	}
}

func (ec *EventClient) GetAll(ctx context.Context) ([]domain.Event, error) {
	resp, raw, err := ec.c.do(ctx, http.MethodGet, "/events", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("events.GetAll -> %w", err)
	}

	var envelope struct {
		Events []eventPayload `json:"events"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(envelope.Events))
	for _, p := range envelope.Events {
		events = append(events, p.toDomain())
	}

	return events, nil
}

func (ec *EventClient) Get(ctx context.Context, id uint) (domain.Event, error) {
	resp, raw, err := ec.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, nil)
	if err != nil {
		return domain.Event{}, fmt.Errorf("events.Get -> %w", err)
	}

	var envelope struct {
		Event eventPayload `json:"event"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Event{}, err
	}

	return envelope.Event.toDomain(), nil
}

func (ec *EventClient) Create(ctx context.Context, form domain.EventForm) (domain.Event, error) {
	resp, raw, err := ec.c.do(ctx, http.MethodPost, "/events", nil, form)
	if err != nil {
		return domain.Event{}, fmt.Errorf("events.Create -> %w", err)
	}

	var envelope struct {
		Event eventPayload `json:"event"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Event{}, err
	}

	return envelope.Event.toDomain(), nil
}

func (ec *EventClient) Update(ctx context.Context, id uint, form domain.EventForm) (domain.Event, error) {
	resp, raw, err := ec.c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), nil, form)
	if err != nil {
		return domain.Event{}, fmt.Errorf("events.Update -> %w", err)
	}

	var envelope struct {
		Event eventPayload `json:"event"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Event{}, err
	}

	return envelope.Event.toDomain(), nil
}

func (ec *EventClient) Delete(ctx context.Context, id uint) error {
	resp, raw, err := ec.c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
	if err != nil {
		return fmt.Errorf("events.Delete -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}
