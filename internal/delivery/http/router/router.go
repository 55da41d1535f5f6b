// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"biolink/config"
	"biolink/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// dynamicPrefixes never resolve to files under the public directory.
var dynamicPrefixes = []string{"/api/", "/health", "/metrics"}

type RouterParams struct {
	fx.In

	Config         *config.Config
	ProfileHandler *handler.ProfileHandler
	ViewHandler    *handler.ViewHandler
	HealthHandler  *handler.HealthHandler
	CardHandler    *handler.CardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	publicDir      string
	profileHandler *handler.ProfileHandler
	viewHandler    *handler.ViewHandler
	healthHandler  *handler.HealthHandler
	cardHandler    *handler.CardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		publicDir:      params.Config.Site.PublicDir,
		profileHandler: params.ProfileHandler,
		viewHandler:    params.ViewHandler,
		healthHandler:  params.HealthHandler,
		cardHandler:    params.CardHandler,
	}
}

// RegisterRoutes sets up the API, operational endpoints and the public site.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/profile", r.profileHandler.GetMainProfile)
		apiGroup.GET("/profile/:id", r.profileHandler.GetProfile)
		apiGroup.GET("/profile/:id/qr", r.profileHandler.GetProfileQR)
		apiGroup.GET("/profiles", r.profileHandler.ListProfiles)
		apiGroup.GET("/views", r.viewHandler.CountView)
	}

	// Card pages take precedence over static files; anything else falls
	// through to the public directory and finally to the 404 handler.
	e.Use(r.cardHandler.Serve)
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:    r.publicDir,
		Index:   "index.html",
		Skipper: skipDynamic,
	}))
}

func skipDynamic(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, prefix := range dynamicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
