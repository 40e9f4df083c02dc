package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charhp/internal/observability"
)

// RouterConfig collects the router's collaborators.
type RouterConfig struct {
	Handler *Handler
	Logger  *zap.Logger
	// Metrics and Gatherer are optional; when nil no request metrics are
	// recorded and /metrics is not mounted.
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with middleware and all routes mounted.
//
// Precondition: cfg.Handler and cfg.Logger must be non-nil.
func NewRouter(cfg RouterConfig) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(RequestID(), Logger(cfg.Logger), Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(Metrics(cfg.Metrics))
	}

	r.GET("/healthz", cfg.Handler.healthz)
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	chars := v1.Group("/character")
	chars.GET("", cfg.Handler.listCharacters)
	chars.GET("/:name", cfg.Handler.getCharacter)
	chars.GET("/:name/status", cfg.Handler.getStatus)
	chars.PUT("/:name/temp", cfg.Handler.putTemp)
	chars.PUT("/:name/damage", cfg.Handler.putDamage)
	chars.PUT("/:name/heal", cfg.Handler.putHeal)

	return r
}
