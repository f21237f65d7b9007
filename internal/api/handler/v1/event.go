package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/api/handler/v1/request"
	"github.com/talentbinder/dashboard/internal/api/handler/v1/response"
	"github.com/talentbinder/dashboard/internal/api/middleware"
	"github.com/talentbinder/dashboard/internal/domain"
)

type EventService interface {
	ListEvents(ctx context.Context, search string) ([]domain.Event, error)
	Accounts(ctx context.Context) ([]domain.Recruiter, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	CreateEvent(ctx context.Context, form domain.EventForm, pendingRecruiterIDs []uint) (domain.Event, error)
	UpdateEvent(ctx context.Context, token string, id uint, form domain.EventForm) (domain.Event, error)
	DeleteEvent(ctx context.Context, token string, id uint) error
	EventRecruiters(ctx context.Context, eventID uint) ([]domain.Recruiter, error)
	AddRecruiter(ctx context.Context, eventID, accountID uint) ([]domain.Recruiter, error)
	RemoveRecruiter(ctx context.Context, eventID, accountID uint) ([]domain.Recruiter, error)
	EventRegistrations(ctx context.Context, eventID uint) (int, []domain.Registration, error)
	AddRegistration(ctx context.Context, eventID, candidateID uint) ([]domain.Registration, error)
	RemoveRegistration(ctx context.Context, eventID, candidateID uint) ([]domain.Registration, error)
}

type ReportService interface {
	ListEventReports(ctx context.Context, eventID uint) ([]domain.Report, error)
	CreateReport(ctx context.Context, eventID uint, form domain.ReportForm) (domain.Report, error)
	UpdateReport(ctx context.Context, token string, eventID, candidateID uint, form domain.ReportForm) (domain.Report, error)
	DeleteReport(ctx context.Context, eventID, candidateID uint) error
}

// LookupResolver turns reference ids into display names for the detail view.
type LookupResolver interface {
	LocationName(ctx context.Context, id *uint) string
	BranchName(ctx context.Context, id uint) string
}

type EventHandler struct {
	svc     EventService
	reports ReportService
	lookups LookupResolver
}

func NewEventHandler(svc EventService, reports ReportService, lookups LookupResolver) *EventHandler {
	return &EventHandler{
		svc:     svc,
		reports: reports,
		lookups: lookups,
	}
}

// HandleGetEvents godoc
// @Summary      List events with registration counts
// @Tags         events
// @Produce      json
// @Param        search  query     string  false  "filter on title/description"
// @Success      200     {object}  response.EventListResponse
// @Failure      502     {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetEvents -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventListResponse{Events: events})
}

// HandleGetEvent godoc
// @Summary      Get one event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetEvent -> %w", err))
		return
	}

	event.LocationName = h.lookups.LocationName(ctx.Request.Context(), event.LocationID)
	if event.BranchID != nil {
		event.BranchName = h.lookups.BranchName(ctx.Request.Context(), *event.BranchID)
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event, flushing staged recruiter assignments
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest true "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	form, err := req.ToForm()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), form, req.RecruiterIDs)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleCreateEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event (owner or admin)
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Param        request  body      request.EventRequest true "request body"
// @Success      200      {object}  domain.Event
// @Failure      403      {object}  response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	form, err := req.ToForm()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), middleware.SessionToken(ctx), eventID, form)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleUpdateEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event (owner or admin, confirm-gated)
// @Tags         events
// @Produce      json
// @Param        eventID  path      int     true  "event id"
// @Param        confirm  query     string  true  "must be true"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if !requireConfirm(ctx) {
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), middleware.SessionToken(ctx), eventID); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteEvent -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetAccounts godoc
// @Summary      List accounts eligible for recruiter assignment
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.RecruiterListResponse
// @Router       /accounts [get]
func (h *EventHandler) HandleGetAccounts(ctx *gin.Context) {
	accounts, err := h.svc.Accounts(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetAccounts -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.RecruiterListResponse{Recruiters: accounts})
}

// HandleGetEventRecruiters godoc
// @Summary      List recruiters assigned to an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  response.RecruiterListResponse
// @Router       /events/{eventID}/recruiters [get]
func (h *EventHandler) HandleGetEventRecruiters(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	recruiters, err := h.svc.EventRecruiters(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetEventRecruiters -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.RecruiterListResponse{Recruiters: recruiters})
}

// HandleAddEventRecruiter godoc
// @Summary      Assign a recruiter to an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Param        request  body      request.RosterMemberRequest true "request body"
// @Success      200      {object}  response.RecruiterListResponse
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/recruiters [post]
func (h *EventHandler) HandleAddEventRecruiter(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RosterMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	recruiters, err := h.svc.AddRecruiter(ctx.Request.Context(), eventID, req.RecruiterID)
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.RecruiterListResponse{Recruiters: recruiters})
}

// HandleRemoveEventRecruiter godoc
// @Summary      Unassign a recruiter from an event
// @Tags         events
// @Produce      json
// @Param        eventID    path      int  true  "event id"
// @Param        accountID  path      int  true  "recruiter account id"
// @Success      200        {object}  response.RecruiterListResponse
// @Router       /events/{eventID}/recruiters/{accountID} [delete]
func (h *EventHandler) HandleRemoveEventRecruiter(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	accountID, respErr := parseUintParam(ctx, "accountID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	recruiters, err := h.svc.RemoveRecruiter(ctx.Request.Context(), eventID, accountID)
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.RecruiterListResponse{Recruiters: recruiters})
}

// HandleGetEventRegistrations godoc
// @Summary      List candidate registrations for an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  response.RegistrationListResponse
// @Router       /events/{eventID}/registrations [get]
func (h *EventHandler) HandleGetEventRegistrations(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	count, registrations, err := h.svc.EventRegistrations(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetEventRegistrations -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.RegistrationListResponse{
		Count:         count,
		Registrations: registrations,
	})
}

// HandleAddEventRegistration godoc
// @Summary      Register a candidate for an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Param        request  body      request.RegistrationRequest true "request body"
// @Success      200      {object}  response.RegistrationListResponse
// @Failure      400      {object}  response.Err
// @Router       /events/{eventID}/registrations [post]
func (h *EventHandler) HandleAddEventRegistration(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registrations, err := h.svc.AddRegistration(ctx.Request.Context(), eventID, req.CandidateID)
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.RegistrationListResponse{
		Count:         len(registrations),
		Registrations: registrations,
	})
}

// HandleRemoveEventRegistration godoc
// @Summary      Unregister a candidate from an event (confirm-gated)
// @Tags         events
// @Produce      json
// @Param        eventID      path      int     true  "event id"
// @Param        candidateID  path      int     true  "candidate id"
// @Param        confirm      query     string  true  "must be true"
// @Success      200          {object}  response.RegistrationListResponse
// @Failure      400          {object}  response.Err
// @Router       /events/{eventID}/registrations/{candidateID} [delete]
func (h *EventHandler) HandleRemoveEventRegistration(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if !requireConfirm(ctx) {
		return
	}

	registrations, err := h.svc.RemoveRegistration(ctx.Request.Context(), eventID, candidateID)
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.RegistrationListResponse{
		Count:         len(registrations),
		Registrations: registrations,
	})
}

// HandleGetEventReports godoc
// @Summary      List attendance reports filed for an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  response.ReportListResponse
// @Router       /events/{eventID}/attendance [get]
func (h *EventHandler) HandleGetEventReports(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reports, err := h.reports.ListEventReports(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetEventReports -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.ReportListResponse{Reports: reports})
}

// HandleCreateEventReport godoc
// @Summary      File an attendance report for a candidate
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Param        request  body      request.ReportRequest true "request body"
// @Success      201      {object}  domain.Report
// @Failure      400      {object}  response.Err
// @Router       /events/{eventID}/attendance [post]
func (h *EventHandler) HandleCreateEventReport(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.reports.CreateReport(ctx.Request.Context(), eventID, req.ToForm())
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

// HandleUpdateEventReport godoc
// @Summary      Edit an attendance report (author or admin)
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID      path      int  true  "event id"
// @Param        candidateID  path      int  true  "candidate id"
// @Param        request      body      request.ReportRequest true "request body"
// @Success      200          {object}  domain.Report
// @Failure      403          {object}  response.Err
// @Router       /events/{eventID}/attendance/{candidateID} [put]
func (h *EventHandler) HandleUpdateEventReport(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.reports.UpdateReport(ctx.Request.Context(), middleware.SessionToken(ctx), eventID, candidateID, req.ToForm())
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleDeleteEventReport godoc
// @Summary      Delete an attendance report (confirm-gated)
// @Tags         events
// @Produce      json
// @Param        eventID      path      int     true  "event id"
// @Param        candidateID  path      int     true  "candidate id"
// @Param        confirm      query     string  true  "must be true"
// @Success      204
// @Failure      400          {object}  response.Err
// @Router       /events/{eventID}/attendance/{candidateID} [delete]
func (h *EventHandler) HandleDeleteEventReport(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	candidateID, respErr := parseUintParam(ctx, "candidateID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if !requireConfirm(ctx) {
		return
	}

	if err := h.reports.DeleteReport(ctx.Request.Context(), eventID, candidateID); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteEventReport -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
