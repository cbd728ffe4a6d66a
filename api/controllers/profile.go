package controllers

import (
	"net/http"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/auth"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	service *auth.Service
}

func NewProfileController(service *auth.Service) *ProfileController {
	return &ProfileController{service: service}
}

func (c *ProfileController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/profile", transport.RequireAuth(c.service))

	group.GET("", c.get)
	group.PUT("", c.update)
	group.POST("/change-password", c.changePassword)
}

// @Security BearerAuth
// @Summary Get the profile of the current user
// @Tags Profile
// @Produce json
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile [get]
func (c *ProfileController) get(g *gin.Context) {
	user := transport.CurrentUser(g)
	profile, err := c.service.RequireProfile(g.Request.Context(), user.ID)
	if err != nil {
		respondError(g, "PROFILE", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformProfileFromStorage("", profile))
}

// @Security BearerAuth
// @Summary Update username or profile picture
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile [put]
func (c *ProfileController) update(g *gin.Context) {
	var req models.UpdateProfileRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "PROFILE", err)
		return
	}

	user := transport.CurrentUser(g)
	profile, err := c.service.UpdateProfile(g.Request.Context(), user.ID, req.ToInput())
	if err != nil {
		respondError(g, "PROFILE", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformProfileFromStorage("Profile updated successfully", profile))
}

// @Security BearerAuth
// @Summary Change the password of the current user
// @Tags Profile
// @Accept json
// @Produce json
// @Param passwords body models.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile/change-password [post]
func (c *ProfileController) changePassword(g *gin.Context) {
	var req models.ChangePasswordRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "PROFILE", err)
		return
	}

	user := transport.CurrentUser(g)
	if err := c.service.ChangePassword(g.Request.Context(), user, transport.CurrentToken(g), req.ToPasswordChange()); err != nil {
		respondError(g, "PROFILE", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{
		Success: true,
		Message: "Password updated successfully. Please login again with your new password.",
	})
}
