package controllers

import (
	"net/http"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/auth"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *auth.Service
}

func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/auth")

	group.POST("/register", c.register)
	group.POST("/login", c.login)
	group.GET("/me", transport.RequireAuth(c.service), c.me)
	group.POST("/logout", transport.RequireAuth(c.service), c.logout)
}

// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.CredentialsRequest true "Email and password"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/register [post]
func (c *AuthController) register(g *gin.Context) {
	var req models.CredentialsRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "AUTH", err)
		return
	}

	result, _, err := c.service.Register(g.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(g, "AUTH", err)
		return
	}
	g.JSON(http.StatusCreated, models.TransformAuthResult("Account created successfully", result))
}

// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.CredentialsRequest true "Email and password"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) login(g *gin.Context) {
	var req models.CredentialsRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondInvalidJSON(g, "AUTH", err)
		return
	}

	result, _, err := c.service.Login(g.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(g, "AUTH", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformAuthResult("Login successful", result))
}

// @Security BearerAuth
// @Summary Get the current user and their profile
// @Tags Auth
// @Produce json
// @Success 200 {object} models.CurrentUserResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/me [get]
func (c *AuthController) me(g *gin.Context) {
	user := transport.CurrentUser(g)
	profile, err := c.service.Profile(g.Request.Context(), user.ID)
	if err != nil {
		respondError(g, "AUTH", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformCurrentUser(user, profile))
}

// @Security BearerAuth
// @Summary Log out
// @Description Sessions live on the client; this only acknowledges the request.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/logout [post]
func (c *AuthController) logout(g *gin.Context) {
	g.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "Logged out successfully"})
}
