package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pollmap/cbnugeumeundong/internal/controller/application"
	"github.com/pollmap/cbnugeumeundong/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type"},
	}
	if len(s.cfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	// assign through typed nil checks so the controller sees a nil
	// interface, not an interface wrapping a nil pointer
	var store application.Store
	if s.db != nil {
		store = s.db
	}
	var uploader application.Uploader
	if s.storage != nil {
		uploader = s.storage
	}
	var notifier application.Notifier
	if s.mailer != nil {
		notifier = s.mailer
	}

	ctl := application.NewController(store, uploader, notifier, s.cfg.Policy)

	r.GET("/", s.helloHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(s.cfg.RateLimitPerSecond))
	{
		api.POST("/apply", middleware.SizeLimit(s.cfg.Policy.MaxUploadBytes), ctl.Submit)
		api.POST("/apply/check", ctl.Check)
	}

	return r
}

func (s *Server) helloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "금은동 recruitment API"})
}

func (s *Server) healthHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "message": "database not configured"})
		return
	}
	c.JSON(http.StatusOK, s.db.Health())
}
