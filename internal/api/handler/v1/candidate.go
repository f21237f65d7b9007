package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/api/handler/v1/request"
	"github.com/talentbinder/dashboard/internal/api/handler/v1/response"
	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type CandidateService interface {
	ListCandidates(ctx context.Context, params backend.CandidateListParams) ([]domain.Candidate, error)
	CreateCandidate(ctx context.Context, form backend.CandidateForm, pendingApprenticeshipIDs []uint) (domain.Candidate, error)
	UpdateCandidate(ctx context.Context, id uint, form backend.CandidateForm) error
	DeleteCandidate(ctx context.Context, id uint) error
	Apprenticeships(ctx context.Context, candidateID uint) ([]domain.Apprenticeship, error)
	AddApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) ([]domain.Apprenticeship, error)
	RemoveApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) ([]domain.Apprenticeship, error)
}

type CandidateHandler struct {
	svc CandidateService
}

func NewCandidateHandler(svc CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// HandleGetCandidates godoc
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Param        search   query     string  false  "search term"
// @Param        status   query     string  false  "status filter, comma-joined for multiple"
// @Param        sort_by  query     string  false  "sort key"
// @Success      200      {object}  response.CandidateListResponse
// @Router       /candidates [get]
func (h *CandidateHandler) HandleGetCandidates(ctx *gin.Context) {
	candidates, err := h.svc.ListCandidates(ctx.Request.Context(), backend.CandidateListParams{
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
		SortBy: ctx.Query("sort_by"),
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetCandidates -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.CandidateListResponse{Candidates: candidates})
}

// HandleCreateCandidate godoc
// @Summary      Create a candidate, flushing staged apprenticeship assignments
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        request  body      request.CandidateRequest true "request body"
// @Success      201      {object}  domain.Candidate
// @Failure      400      {object}  response.Err
// @Router       /candidates [post]
func (h *CandidateHandler) HandleCreateCandidate(ctx *gin.Context) {
	var req request.CandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCandidate(ctx.Request.Context(), req.ToForm(), req.ApprenticeshipIDs)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleCreateCandidate -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCandidate godoc
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidateID  path      int  true  "candidate id"
// @Param        request      body      request.CandidateRequest true "request body"
// @Success      204
// @Failure      400          {object}  response.Err
// @Router       /candidates/{candidateID} [patch]
func (h *CandidateHandler) HandleUpdateCandidate(ctx *gin.Context) {
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.UpdateCandidate(ctx.Request.Context(), candidateID, req.ToForm()); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleUpdateCandidate -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteCandidate godoc
// @Summary      Delete a candidate (confirm-gated)
// @Tags         candidates
// @Produce      json
// @Param        candidateID  path      int     true  "candidate id"
// @Param        confirm      query     string  true  "must be true"
// @Success      204
// @Failure      400          {object}  response.Err
// @Router       /candidates/{candidateID} [delete]
func (h *CandidateHandler) HandleDeleteCandidate(ctx *gin.Context) {
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if !requireConfirm(ctx) {
		return
	}

	if err := h.svc.DeleteCandidate(ctx.Request.Context(), candidateID); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteCandidate -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetCandidateApprenticeships godoc
// @Summary      List apprenticeships assigned to a candidate
// @Tags         candidates
// @Produce      json
// @Param        candidateID  path      int  true  "candidate id"
// @Success      200          {object}  response.ApprenticeshipListResponse
// @Router       /candidates/{candidateID}/apprenticeships [get]
func (h *CandidateHandler) HandleGetCandidateApprenticeships(ctx *gin.Context) {
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	apprenticeships, err := h.svc.Apprenticeships(ctx.Request.Context(), candidateID)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetCandidateApprenticeships -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.ApprenticeshipListResponse{Apprenticeships: apprenticeships})
}

// HandleAddCandidateApprenticeship godoc
// @Summary      Assign an apprenticeship to a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidateID  path      int  true  "candidate id"
// @Param        request      body      request.ApprenticeshipMemberRequest true "request body"
// @Success      200          {object}  response.ApprenticeshipListResponse
// @Failure      400          {object}  response.Err
// @Failure      409          {object}  response.Err
// @Router       /candidates/{candidateID}/apprenticeships [post]
func (h *CandidateHandler) HandleAddCandidateApprenticeship(ctx *gin.Context) {
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ApprenticeshipMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	apprenticeships, err := h.svc.AddApprenticeship(ctx.Request.Context(), candidateID, req.ApprenticeshipID)
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.ApprenticeshipListResponse{Apprenticeships: apprenticeships})
}

// HandleRemoveCandidateApprenticeship godoc
// @Summary      Unassign an apprenticeship from a candidate
// @Tags         candidates
// @Produce      json
// @Param        candidateID       path      int  true  "candidate id"
// @Param        apprenticeshipID  path      int  true  "apprenticeship id"
// @Success      200               {object}  response.ApprenticeshipListResponse
// @Router       /candidates/{candidateID}/apprenticeships/{apprenticeshipID} [delete]
func (h *CandidateHandler) HandleRemoveCandidateApprenticeship(ctx *gin.Context) {
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	apprenticeshipID, respErr := parseUintParam(ctx, "apprenticeshipID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	apprenticeships, err := h.svc.RemoveApprenticeship(ctx.Request.Context(), candidateID, apprenticeshipID)
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.ApprenticeshipListResponse{Apprenticeships: apprenticeships})
}
