package controllers

import (
	"net/http"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/gin-gonic/gin"
)

type CommentController struct {
	service *snacks.Service
	limiter *transport.RateLimiter
}

func NewCommentController(service *snacks.Service, limiter *transport.RateLimiter) *CommentController {
	return &CommentController{service: service, limiter: limiter}
}

func (c *CommentController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/snacks/:id/comments")

	group.GET("", c.list)
	group.POST("", c.limiter.Middleware(), c.add)
}

// @Summary List comments on a snack, newest first
// @Tags Comments
// @Produce json
// @Param id path int true "Snack ID"
// @Success 200 {array} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks/{id}/comments [get]
func (c *CommentController) list(g *gin.Context) {
	id, err := snackIDParam(g)
	if err != nil {
		respondError(g, "COMMENT", err)
		return
	}

	comments, err := c.service.GetComments(g.Request.Context(), id)
	if err != nil {
		respondError(g, "COMMENT", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformComments(comments))
}

// @Summary Comment on a snack
// @Description Returns every comment of the snack, not only the new one.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Snack ID"
// @Param comment body models.CommentRequest true "Comment text and optional author"
// @Success 201 {array} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/snacks/{id}/comments [post]
func (c *CommentController) add(g *gin.Context) {
	id, err := snackIDParam(g)
	if err != nil {
		respondError(g, "COMMENT", err)
		return
	}

	var req models.CommentRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "COMMENT", err)
		return
	}

	comments, err := c.service.AddComment(g.Request.Context(), id, snacks.NewComment{Text: req.Text, Author: req.Author})
	if err != nil {
		respondError(g, "COMMENT", err)
		return
	}
	transport.CommentsAdded.Inc()
	g.JSON(http.StatusCreated, models.TransformComments(comments))
}
