// Package api exposes the health engine over HTTP using gin.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cory-johannsen/charhp/internal/game/character"
	"github.com/cory-johannsen/charhp/internal/game/health"
)

// Roster lists the names of the loaded character sheets.
type Roster interface {
	Names() []string
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the character routes.
type Handler struct {
	engine *health.Engine
	roster Roster
	pinger Pinger
}

// NewHandler creates a Handler. A nil pinger makes /healthz always report ok.
//
// Precondition: engine and roster must be non-nil.
func NewHandler(engine *health.Engine, roster Roster, pinger Pinger) *Handler {
	return &Handler{engine: engine, roster: roster, pinger: pinger}
}

type damageItem struct {
	Type  string   `json:"type" binding:"required,damage_type"`
	Value *float64 `json:"value" binding:"required"`
}

func (h *Handler) listCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"characters": h.roster.Names()})
}

func (h *Handler) getCharacter(c *gin.Context) {
	sheet, err := h.engine.Sheet(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *Handler) getStatus(c *gin.Context) {
	rec, err := h.engine.GetOrCreate(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) putTemp(c *gin.Context) {
	amount, err := health.ParseAmount(c.Query("value"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	rec, err := h.engine.AddTemporaryHP(c.Request.Context(), c.Param("name"), amount)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) putDamage(c *gin.Context) {
	var body []damageItem
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", health.ErrValidation, err))
		return
	}
	requests := make([]health.DamageRequest, len(body))
	for i, item := range body {
		requests[i] = health.DamageRequest{Type: character.DamageType(item.Type), Value: *item.Value}
	}
	rec, err := h.engine.DealDamage(c.Request.Context(), c.Param("name"), requests)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) putHeal(c *gin.Context) {
	amount, err := health.ParseAmount(c.Query("value"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	rec, err := h.engine.Heal(c.Request.Context(), c.Param("name"), amount)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) healthz(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
