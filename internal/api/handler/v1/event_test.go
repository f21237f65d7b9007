package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
	"github.com/talentbinder/dashboard/internal/service"
)

type stubEventService struct {
	EventService
	event      domain.Event
	deleteErr  error
	deleted    bool
	addErr     error
	recruiters []domain.Recruiter
}

func (s *stubEventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	return s.event, nil
}

func (s *stubEventService) DeleteEvent(ctx context.Context, token string, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = true
	return nil
}

func (s *stubEventService) AddRecruiter(ctx context.Context, eventID, accountID uint) ([]domain.Recruiter, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.recruiters, nil
}

type stubLookupResolver struct {
	locations map[uint]string
	branches  map[uint]string
}

func (s *stubLookupResolver) LocationName(ctx context.Context, id *uint) string {
	if id == nil {
		return "Nicht zugeordnet"
	}
	return s.locations[*id]
}

func (s *stubLookupResolver) BranchName(ctx context.Context, id uint) string {
	return s.branches[id]
}

func newEventRouter(svc *stubEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEventHandler(svc, nil, &stubLookupResolver{})
	r.DELETE("/events/:eventID", h.HandleDeleteEvent)
	r.POST("/events/:eventID/recruiters", h.HandleAddEventRecruiter)
	return r
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestHandleGetEvent_ResolvesLookupNames(t *testing.T) {
	locationID := uint(4)
	branchID := uint(2)
	svc := &stubEventService{event: domain.Event{
		ID:         5,
		Title:      "Infotag",
		LocationID: &locationID,
		BranchID:   &branchID,
	}}
	lookups := &stubLookupResolver{
		locations: map[uint]string{4: "Bern"},
		branches:  map[uint]string{2: "Informatik"},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEventHandler(svc, nil, lookups)
	r.GET("/events/:eventID", h.HandleGetEvent)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bern", body.LocationName)
	assert.Equal(t, "Informatik", body.BranchName)
}

func TestHandleDeleteEvent_RequiresConfirmation(t *testing.T) {
	svc := &stubEventService{}
	r := newEventRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/5", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bitte bestätigen Sie diese Aktion.", errBody(t, w))
	assert.False(t, svc.deleted)
}

func TestHandleDeleteEvent_Confirmed(t *testing.T) {
	svc := &stubEventService{}
	r := newEventRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/5?confirm=true", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, svc.deleted)
}

func TestHandleDeleteEvent_ForbiddenKeepsGermanMessage(t *testing.T) {
	svc := &stubEventService{deleteErr: service.ErrForbidden}
	r := newEventRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/5?confirm=true", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Sie haben keine Berechtigung für diese Aktion.", errBody(t, w))
}

func TestHandleAddEventRecruiter_ValidationErrorIs400(t *testing.T) {
	svc := &stubEventService{addErr: &service.ValidationError{
		Field:   "recruiterId",
		Message: "Dieser Recruiter ist bereits in der Liste",
	}}
	r := newEventRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/5/recruiters", strings.NewReader(`{"recruiterId":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Dieser Recruiter ist bereits in der Liste", errBody(t, w))
}

func TestHandleAddEventRecruiter_MutationInFlightIs409(t *testing.T) {
	svc := &stubEventService{addErr: service.ErrMutationInFlight}
	r := newEventRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/5/recruiters", strings.NewReader(`{"recruiterId":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleAddEventRecruiter_UpstreamStatusPassesThrough(t *testing.T) {
	svc := &stubEventService{addErr: &backend.RequestError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Event ist abgeschlossen",
	}}
	r := newEventRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/5/recruiters", strings.NewReader(`{"recruiterId":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Event ist abgeschlossen", errBody(t, w))
}
