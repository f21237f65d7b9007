package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	v1 "github.com/talentbinder/dashboard/internal/api/handler/v1"
	"github.com/talentbinder/dashboard/internal/api/middleware"
	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/config"
	"github.com/talentbinder/dashboard/internal/service"
	"github.com/talentbinder/dashboard/internal/session"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, client *backend.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authClient := backend.NewAuthClient(client)
	sessions := session.NewStore(authClient)
	guard := middleware.NewGuard(sessions)

	// The lookup service is shared: the event detail resolves location and
	// branch names out of the same snapshots the lookup endpoints serve.
	lookups := service.NewLookupService(backend.NewLookupClient(client))

	authHandler := s.initAuthHandler(authClient, sessions)
	eventHandler := s.initEventHandler(client, sessions, lookups)
	candidateHandler := s.initCandidateHandler(client)
	userHandler := s.initUserHandler(client)
	loggingHandler := s.initLoggingHandler(client)
	lookupHandler := v1.NewLookupHandler(lookups)
	s.MountHandlers(guard, authHandler, eventHandler, candidateHandler, userHandler, loggingHandler, lookupHandler)

	return s
}

func (s *Server) initAuthHandler(authClient *backend.AuthClient, sessions *session.Store) *v1.AuthHandler {
	svc := service.NewAuthService(authClient, sessions)

	return v1.NewAuthHandler(svc)
}

func (s *Server) initEventHandler(client *backend.Client, sessions *session.Store, lookups *service.LookupService) *v1.EventHandler {
	eventClient := backend.NewEventClient(client)
	recruiterClient := backend.NewRecruiterClient(client)
	reportClient := backend.NewReportClient(client)

	svc := service.NewEventService(eventClient, recruiterClient, sessions)
	reports := service.NewReportService(reportClient, sessions)

	return v1.NewEventHandler(svc, reports, lookups)
}

func (s *Server) initCandidateHandler(client *backend.Client) *v1.CandidateHandler {
	candidateClient := backend.NewCandidateClient(client)
	svc := service.NewCandidateService(candidateClient)

	return v1.NewCandidateHandler(svc)
}

func (s *Server) initUserHandler(client *backend.Client) *v1.UserHandler {
	userClient := backend.NewUserClient(client)
	svc := service.NewUserService(userClient)

	return v1.NewUserHandler(svc)
}

func (s *Server) initLoggingHandler(client *backend.Client) *v1.LoggingHandler {
	loggingClient := backend.NewLoggingClient(client)
	svc := service.NewAuditService(loggingClient)

	return v1.NewLoggingHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.SessionContext())
}

func (s *Server) MountHandlers(
	guard *middleware.Guard,
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	candidateHandler *v1.CandidateHandler,
	userHandler *v1.UserHandler,
	loggingHandler *v1.LoggingHandler,
	lookupHandler *v1.LookupHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/logout", authHandler.HandleLogout)
		auth.GET("/auth/me", authHandler.HandleMe)
		auth.GET("/auth/admin-status", authHandler.HandleAdminStatus)
		auth.GET("/auth/ldap-status", authHandler.HandleLDAPStatus)
	}

	events := s.Router.Group(basePath, guard.RequireSession())
	{
		events.GET("/events", eventHandler.HandleGetEvents)
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)
		events.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		events.GET("/events/:eventID/recruiters", eventHandler.HandleGetEventRecruiters)
		events.POST("/events/:eventID/recruiters", eventHandler.HandleAddEventRecruiter)
		events.DELETE("/events/:eventID/recruiters/:accountID", eventHandler.HandleRemoveEventRecruiter)

		events.GET("/events/:eventID/registrations", eventHandler.HandleGetEventRegistrations)
		events.POST("/events/:eventID/registrations", eventHandler.HandleAddEventRegistration)
		events.DELETE("/events/:eventID/registrations/:candidateID", eventHandler.HandleRemoveEventRegistration)

		events.GET("/events/:eventID/attendance", eventHandler.HandleGetEventReports)
		events.POST("/events/:eventID/attendance", eventHandler.HandleCreateEventReport)
		events.PUT("/events/:eventID/attendance/:candidateID", eventHandler.HandleUpdateEventReport)
		events.DELETE("/events/:eventID/attendance/:candidateID", eventHandler.HandleDeleteEventReport)

		events.GET("/accounts", eventHandler.HandleGetAccounts)

		events.GET("/lookups/apprenticeships", lookupHandler.HandleGetApprenticeships)
		events.GET("/lookups/branches", lookupHandler.HandleGetBranches)
		events.GET("/lookups/locations", lookupHandler.HandleGetLocations)
		events.GET("/lookups/event-types", lookupHandler.HandleGetEventTypes)
		events.POST("/lookups/refresh", lookupHandler.HandleRefreshLookups)
	}

	admin := s.Router.Group(basePath, guard.RequireAdmin())
	{
		admin.GET("/candidates", candidateHandler.HandleGetCandidates)
		admin.POST("/candidates", candidateHandler.HandleCreateCandidate)
		admin.PATCH("/candidates/:candidateID", candidateHandler.HandleUpdateCandidate)
		admin.DELETE("/candidates/:candidateID", candidateHandler.HandleDeleteCandidate)
		admin.GET("/candidates/:candidateID/apprenticeships", candidateHandler.HandleGetCandidateApprenticeships)
		admin.POST("/candidates/:candidateID/apprenticeships", candidateHandler.HandleAddCandidateApprenticeship)
		admin.DELETE("/candidates/:candidateID/apprenticeships/:apprenticeshipID", candidateHandler.HandleRemoveCandidateApprenticeship)

		admin.GET("/users", userHandler.HandleGetUsers)
		admin.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		admin.GET("/logging", loggingHandler.HandleGetLogs)
		admin.GET("/logging/stats", loggingHandler.HandleGetLogStats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
