package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	intconfig "tripboard/internal/config"
	h "tripboard/internal/http/handlers"
	"tripboard/internal/http/middleware"
)

// dashboardRoles may read the dashboard when auth is enabled.
var dashboardRoles = []string{"admin", "staff", "owner"}

// Deps are the collaborators mounted by NewRouter. A nil Metrics falls back to
// the default prometheus registry.
type Deps struct {
	Dashboard h.DashboardHandler
	Metrics   stdhttp.Handler
}

func NewRouter(cfg intconfig.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORS.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	metricsHandler := deps.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		dashboard := api.Group("/dashboard")
		if cfg.Auth.JWTSecret != "" {
			dashboard.Use(middleware.AuthRequired(cfg.Auth.JWTSecret), middleware.RequireRoles(dashboardRoles...))
		} else {
			dashboard.Use(middleware.AuthOptional())
		}
		mountDashboard(dashboard, deps.Dashboard)
	}

	h.SetRouter(r)
	return r
}

func mountDashboard(g *gin.RouterGroup, d h.DashboardHandler) {
	g.GET("/summary", d.Summary)
	g.GET("/calendar", d.Calendar)
	g.GET("/action-items", d.ActionItems)
	g.GET("/report.pdf", d.ReportPDF)
}
