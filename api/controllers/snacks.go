package controllers

import (
	"net/http"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/gin-gonic/gin"
)

type SnackController struct {
	service *snacks.Service
	limiter *transport.RateLimiter
}

func NewSnackController(service *snacks.Service, limiter *transport.RateLimiter) *SnackController {
	return &SnackController{service: service, limiter: limiter}
}

func (c *SnackController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/snacks")

	group.GET("", c.list)
	group.GET("/:id", c.get)
	group.POST("", c.limiter.Middleware(), c.create)
}

// @Summary List all snacks with their rating summaries
// @Tags Snacks
// @Produce json
// @Success 200 {array} models.SnackWithSummaryResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks [get]
func (c *SnackController) list(g *gin.Context) {
	list, err := c.service.ListSnacks(g.Request.Context())
	if err != nil {
		respondError(g, "SNACK", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformSnackList(list))
}

// @Summary Get a snack with its summary and rating entries
// @Tags Snacks
// @Produce json
// @Param id path int true "Snack ID"
// @Success 200 {object} models.SnackDetailResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks/{id} [get]
func (c *SnackController) get(g *gin.Context) {
	id, err := snackIDParam(g)
	if err != nil {
		respondError(g, "SNACK", err)
		return
	}

	detail, err := c.service.GetSnack(g.Request.Context(), id)
	if err != nil {
		respondError(g, "SNACK", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformSnackDetail(detail))
}

// @Summary Create a snack
// @Tags Snacks
// @Accept json
// @Produce json
// @Param snack body models.CreateSnackRequest true "Snack object"
// @Success 201 {object} models.SnackResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks [post]
func (c *SnackController) create(g *gin.Context) {
	var req models.CreateSnackRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "SNACK", err)
		return
	}

	created, err := c.service.CreateSnack(g.Request.Context(), req.ToNewSnack())
	if err != nil {
		respondError(g, "SNACK", err)
		return
	}
	g.JSON(http.StatusCreated, models.TransformSnackFromStorage(created))
}
