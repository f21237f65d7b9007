package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/api/handler/v1/response"
	"github.com/talentbinder/dashboard/internal/domain"
)

type LookupService interface {
	Apprenticeships(ctx context.Context) ([]domain.Apprenticeship, error)
	Branches(ctx context.Context) ([]domain.Branch, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	EventTypes(ctx context.Context) ([]domain.EventType, error)
	Refresh()
}

type LookupHandler struct {
	svc LookupService
}

func NewLookupHandler(svc LookupService) *LookupHandler {
	return &LookupHandler{svc: svc}
}

// HandleGetApprenticeships godoc
// @Summary      List apprenticeship reference data
// @Tags         lookups
// @Produce      json
// @Success      200  {object}  response.ApprenticeshipListResponse
// @Router       /lookups/apprenticeships [get]
func (h *LookupHandler) HandleGetApprenticeships(ctx *gin.Context) {
	apprenticeships, err := h.svc.Apprenticeships(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetApprenticeships -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.ApprenticeshipListResponse{Apprenticeships: apprenticeships})
}

// HandleGetBranches godoc
// @Summary      List branch reference data
// @Tags         lookups
// @Produce      json
// @Success      200  {object}  response.BranchListResponse
// @Router       /lookups/branches [get]
func (h *LookupHandler) HandleGetBranches(ctx *gin.Context) {
	branches, err := h.svc.Branches(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetBranches -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.BranchListResponse{Branches: branches})
}

// HandleGetLocations godoc
// @Summary      List location reference data
// @Tags         lookups
// @Produce      json
// @Success      200  {object}  response.LocationListResponse
// @Router       /lookups/locations [get]
func (h *LookupHandler) HandleGetLocations(ctx *gin.Context) {
	locations, err := h.svc.Locations(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetLocations -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.LocationListResponse{Locations: locations})
}

// HandleGetEventTypes godoc
// @Summary      List event template reference data
// @Tags         lookups
// @Produce      json
// @Success      200  {object}  response.EventTypeListResponse
// @Router       /lookups/event-types [get]
func (h *LookupHandler) HandleGetEventTypes(ctx *gin.Context) {
	eventTypes, err := h.svc.EventTypes(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetEventTypes -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventTypeListResponse{EventTypes: eventTypes})
}

// HandleRefreshLookups godoc
// @Summary      Drop cached reference data; next read refetches
// @Tags         lookups
// @Produce      json
// @Success      204
// @Router       /lookups/refresh [post]
func (h *LookupHandler) HandleRefreshLookups(ctx *gin.Context) {
	h.svc.Refresh()
	ctx.Status(http.StatusNoContent)
}
