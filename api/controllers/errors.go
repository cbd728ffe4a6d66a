package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/auth"
	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Unexpected errors are
// logged in full and only shown to the caller in development.
func respondError(g *gin.Context, area string, err error) {
	var (
		validationErr *snacks.ValidationError
		notFoundErr   *snacks.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationErr.Message, Details: validationErr.Details})
	case errors.As(err, &notFoundErr):
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundErr.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, auth.ErrWrongPassword):
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Current password is incorrect"})
	case errors.Is(err, auth.ErrUnauthorized):
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
	case errors.Is(err, auth.ErrAlreadyRegistered):
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already registered"})
	default:
		logging.Log.Errorf("%s: %v", area, err)
		message := "Something went wrong"
		if developmentMode() {
			message = err.Error()
		}
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error", Message: message})
	}
}

func developmentMode() bool {
	env := os.Getenv("APP_ENV")
	return env == "local" || env == "development"
}

func respondInvalidJSON(g *gin.Context, area string, err error) {
	logging.Log.Warnf("%s: invalid request body: %v", area, err)
	g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON", Message: "The request body contains invalid JSON"})
}

func snackIDParam(g *gin.Context) (int, error) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		return 0, &snacks.ValidationError{
			Message: "Validation failed",
			Details: []snacks.FieldError{{Field: "id", Message: "Snack ID must be a number"}},
		}
	}
	return id, nil
}
