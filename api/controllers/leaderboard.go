package controllers

import (
	"net/http"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	service *snacks.Service
}

func NewLeaderboardController(service *snacks.Service) *LeaderboardController {
	return &LeaderboardController{service: service}
}

func (c *LeaderboardController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/leaderboard", c.get)
}

// @Summary Get the five snack leaderboards
// @Description Ties keep ascending snack id order.
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} models.LeaderboardResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard [get]
func (c *LeaderboardController) get(g *gin.Context) {
	board, err := c.service.Leaderboard(g.Request.Context())
	if err != nil {
		respondError(g, "LEADERBOARD", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformLeaderboard(board))
}
