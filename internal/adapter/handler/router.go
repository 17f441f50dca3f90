package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authHandler       *Auth
	schedulingHandler *Scheduling
	oauthService      *auth.OAuthService
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authHandler *Auth, schedulingHandler *Scheduling, oauthService *auth.OAuthService) *Router {
	return &Router{
		cfg:               cfg,
		authHandler:       authHandler,
		schedulingHandler: schedulingHandler,
		oauthService:      oauthService,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.oauthService))
}

// setupMeetingRoutes configures meeting scheduling routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", middleware.EchoAuth(rt.oauthService))

	meetingGroup.POST("/schedule", rt.schedulingHandler.ScheduleMeeting)
	meetingGroup.GET("", rt.schedulingHandler.ListMeetings)
	meetingGroup.GET("/:id", rt.schedulingHandler.GetMeeting)
	meetingGroup.POST("/:id/confirm", rt.schedulingHandler.ConfirmSlot)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
