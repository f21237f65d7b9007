package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbinder/dashboard/internal/domain"
)

type LookupClient struct {
	c *Client
}

func NewLookupClient(c *Client) *LookupClient {
	return &LookupClient{c: c}
}

func (lc *LookupClient) Apprenticeships(ctx context.Context) ([]domain.Apprenticeship, error) {
	resp, raw, err := lc.c.do(ctx, http.MethodGet, "/lookups/apprenticeships", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("lookups.Apprenticeships -> %w", err)
	}

	var envelope struct {
		Apprenticeships []domain.Apprenticeship `json:"apprenticeships"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.Apprenticeships, nil
}

func (lc *LookupClient) Branches(ctx context.Context) ([]domain.Branch, error) {
	resp, raw, err := lc.c.do(ctx, http.MethodGet, "/lookups/branches", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("lookups.Branches -> %w", err)
	}

	var envelope struct {
		Branches []domain.Branch `json:"branches"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.Branches, nil
}

func (lc *LookupClient) Locations(ctx context.Context) ([]domain.Location, error) {
	resp, raw, err := lc.c.do(ctx, http.MethodGet, "/lookups/locations", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("lookups.Locations -> %w", err)
	}

	var envelope struct {
		Locations []domain.Location `json:"locations"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.Locations, nil
}

func (lc *LookupClient) EventTypes(ctx context.Context) ([]domain.EventType, error) {
	resp, raw, err := lc.c.do(ctx, http.MethodGet, "/lookups/event-types", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("lookups.EventTypes -> %w", err)
	}

	var envelope struct {
		EventTypes []domain.EventType `json:"eventTypes"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.EventTypes, nil
}
