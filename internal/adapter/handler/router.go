package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/common"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	runHandler      *Run
	uploadHandler   *Upload
	chatHandler     *Chat
	templateHandler *Template
	processing      func() bool
}

// NewRouter creates a new router with all handlers. processing backs the
// health endpoint's processing flag and may be nil.
func NewRouter(
	cfg *config.Config,
	runHandler *Run,
	uploadHandler *Upload,
	chatHandler *Chat,
	templateHandler *Template,
	processing func() bool,
) *Router {
	return &Router{
		cfg:             cfg,
		runHandler:      runHandler,
		uploadHandler:   uploadHandler,
		chatHandler:     chatHandler,
		templateHandler: templateHandler,
		processing:      processing,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupRunRoutes(v1)
	rt.setupChatRoutes(v1)
	rt.setupTemplateRoutes(v1)
}

func (rt *Router) setupRunRoutes(g *echo.Group) {
	if rt.uploadHandler != nil {
		g.POST("/uploads", rt.uploadHandler.UploadAudio)
	}
	if rt.runHandler != nil {
		g.POST("/runs", rt.runHandler.SubmitRun)
		g.GET("/runs/current", rt.runHandler.CurrentRun)
		g.GET("/events", rt.runHandler.ListEvents)
	}
}

func (rt *Router) setupChatRoutes(g *echo.Group) {
	if rt.chatHandler == nil {
		return
	}
	chatGroup := g.Group("/chat/sessions")
	chatGroup.POST("", rt.chatHandler.CreateSession)
	chatGroup.GET("/:id", rt.chatHandler.GetSession)
	chatGroup.DELETE("/:id", rt.chatHandler.DeleteSession)
	chatGroup.POST("/:id/messages", rt.chatHandler.Ask)
}

func (rt *Router) setupTemplateRoutes(g *echo.Group) {
	if rt.templateHandler == nil {
		return
	}
	templateGroup := g.Group("/templates")
	templateGroup.GET("", rt.templateHandler.ListTemplates)
	templateGroup.POST("/:id/convert", rt.templateHandler.Convert)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
	}
	if rt.processing != nil {
		resp.Processing = rt.processing()
	}
	return c.JSON(http.StatusOK, resp)
}
