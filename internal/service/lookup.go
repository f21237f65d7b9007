package service

import (
	"context"
	"fmt"

	"github.com/talentbinder/dashboard/internal/domain"
	"github.com/talentbinder/dashboard/internal/listing"
)

const (
	nameUnassigned = "Nicht zugeordnet"
	nameUnknown    = "Unbekannt"
)

type LookupAPI interface {
	Apprenticeships(ctx context.Context) ([]domain.Apprenticeship, error)
	Branches(ctx context.Context) ([]domain.Branch, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	EventTypes(ctx context.Context) ([]domain.EventType, error)
}

// LookupService holds one listing controller per reference collection. The
// collections change rarely, so snapshots are served until a mutation or an
// explicit refresh invalidates them.
type LookupService struct {
	apprenticeships *listing.Controller[domain.Apprenticeship, uint]
	branches        *listing.Controller[domain.Branch, uint]
	locations       *listing.Controller[domain.Location, uint]
	eventTypes      *listing.Controller[domain.EventType, uint]
}

func NewLookupService(api LookupAPI) *LookupService {
	return &LookupService{
		apprenticeships: listing.NewController(api.Apprenticeships, func(a domain.Apprenticeship) uint { return a.ID }),
		branches:        listing.NewController(api.Branches, func(b domain.Branch) uint { return b.ID }),
		locations:       listing.NewController(api.Locations, func(l domain.Location) uint { return l.ID }),
		eventTypes:      listing.NewController(api.EventTypes, func(t domain.EventType) uint { return t.TemplateID }),
	}
}

func items[T any](ctx context.Context, c *listing.Controller[T, uint]) ([]T, error) {
	snap := c.Snapshot()
	if snap.Status != listing.StatusLoaded {
		snap = c.Load(ctx)
	}
	if snap.Status == listing.StatusError {
		return nil, fmt.Errorf("lookup load -> %w", snap.Err)
	}

	return snap.Items, nil
}

func (s *LookupService) Apprenticeships(ctx context.Context) ([]domain.Apprenticeship, error) {
	return items(ctx, s.apprenticeships)
}

func (s *LookupService) Branches(ctx context.Context) ([]domain.Branch, error) {
	return items(ctx, s.branches)
}

func (s *LookupService) Locations(ctx context.Context) ([]domain.Location, error) {
	return items(ctx, s.locations)
}

func (s *LookupService) EventTypes(ctx context.Context) ([]domain.EventType, error) {
	return items(ctx, s.eventTypes)
}

// Refresh invalidates every held collection; the next read refetches.
func (s *LookupService) Refresh() {
	s.apprenticeships.Invalidate()
	s.branches.Invalidate()
	s.locations.Invalidate()
	s.eventTypes.Invalidate()
}

// LocationName resolves a location id for display. A nil id is the explicit
// "no location" state, an id without a loaded match degrades to a placeholder
// instead of an error.
func (s *LookupService) LocationName(ctx context.Context, id *uint) string {
	if id == nil || *id == 0 {
		return nameUnassigned
	}

	locations, err := s.Locations(ctx)
	if err != nil {
		return nameUnknown
	}
	for _, l := range locations {
		if l.ID == *id {
			return l.Name
		}
	}

	return nameUnknown
}

// BranchName resolves a branch id for display with the same degradation rules
// as LocationName.
func (s *LookupService) BranchName(ctx context.Context, id uint) string {
	if id == 0 {
		return nameUnassigned
	}

	branches, err := s.Branches(ctx)
	if err != nil {
		return nameUnknown
	}
	for _, b := range branches {
		if b.ID == id {
			return b.Name
		}
	}

	return nameUnknown
}
