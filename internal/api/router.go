package api

import (
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"housing-backend/config"
	"housing-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.Logger(h.log))

	r.GET("/healthz", h.Healthz)

	// Resource routes are rate limited per client IP and share one GET cache.
	api := r.Group("/")
	api.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	if ttl := cfg.CacheTTL(); ttl > 0 {
		api.Use(mw.Cache(cache.New(ttl, 2*ttl), ttl))
	}
	{
		api.GET("/chambres", h.GetChambres)
		api.POST("/chambres", h.AddChambre)
		api.GET("/chambres/:id", h.GetChambre)

		api.GET("/universites", h.GetUniversites)
		api.POST("/universites", h.AddUniversite)
		api.GET("/universites/:id", h.GetUniversite)

		api.GET("/blocs", h.GetBlocs)
		api.POST("/blocs", h.AddOrUpdateBloc)
		api.GET("/blocs/:id", h.GetBloc)
	}

	return r
}
