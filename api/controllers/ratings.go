package controllers

import (
	"net/http"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/gin-gonic/gin"
)

type RatingController struct {
	service *snacks.Service
	limiter *transport.RateLimiter
}

func NewRatingController(service *snacks.Service, limiter *transport.RateLimiter) *RatingController {
	return &RatingController{service: service, limiter: limiter}
}

func (c *RatingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/snacks/:id/ratings")

	group.GET("", c.get)
	group.POST("", c.limiter.Middleware(), c.submit)
}

// @Summary Get the rating summary and entries of a snack
// @Tags Ratings
// @Produce json
// @Param id path int true "Snack ID"
// @Success 200 {object} models.RatingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks/{id}/ratings [get]
func (c *RatingController) get(g *gin.Context) {
	id, err := snackIDParam(g)
	if err != nil {
		respondError(g, "RATING", err)
		return
	}

	view, err := c.service.GetRatings(g.Request.Context(), id)
	if err != nil {
		respondError(g, "RATING", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformRatingsView(view))
}

// @Summary Submit a rating for a snack
// @Description Every submission is recorded; there is no per user deduplication.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param id path int true "Snack ID"
// @Param rating body models.RatingRequest true "Scores, integers between 1 and 5"
// @Success 201 {object} models.RatingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks/{id}/ratings [post]
func (c *RatingController) submit(g *gin.Context) {
	id, err := snackIDParam(g)
	if err != nil {
		respondError(g, "RATING", err)
		return
	}

	var req models.RatingRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "RATING", err)
		return
	}
	scores, err := snacks.ParseScores(req.Taste.Float(), req.Spiciness.Float(), req.Uniqueness.Float())
	if err != nil {
		respondError(g, "RATING", err)
		return
	}

	view, err := c.service.SubmitRating(g.Request.Context(), id, scores)
	if err != nil {
		respondError(g, "RATING", err)
		return
	}
	transport.RatingsSubmitted.Inc()
	logging.Log.Debugf("RATING: snack %d now has %d ratings", id, view.Summary.Count)
	g.JSON(http.StatusCreated, models.TransformRatingsView(view))
}
