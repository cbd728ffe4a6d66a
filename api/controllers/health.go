package controllers

import (
	"net/http"
	"time"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/gin-gonic/gin"
)

type HealthController struct {
	started time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{started: time.Now()}
}

func (c *HealthController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/health", c.get)
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (c *HealthController) get(g *gin.Context) {
	g.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Uptime: time.Since(c.started).Seconds()})
}
