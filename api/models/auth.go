package models

import (
	"time"

	"github.com/alex-pricope/snackify/auth"
	"github.com/alex-pricope/snackify/storage"
)

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    AuthUser         `json:"user"`
	Session *SessionResponse `json:"session"`
}

// CurrentUser is the user behind a token merged with their stored profile.
type CurrentUser struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Username          *string    `json:"username"`
	ProfilePictureURL *string    `json:"profile_picture_url"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type CurrentUserResponse struct {
	Success bool        `json:"success"`
	User    CurrentUser `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func TransformAuthResult(message string, result *auth.Result) AuthResponse {
	resp := AuthResponse{
		Success: true,
		Message: message,
		User:    AuthUser{ID: result.User.ID, Email: result.User.Email},
	}
	if result.Session != nil {
		resp.Session = &SessionResponse{
			AccessToken:  result.Session.AccessToken,
			RefreshToken: result.Session.RefreshToken,
			ExpiresAt:    result.Session.ExpiresAt,
		}
	}
	return resp
}

func TransformCurrentUser(user *auth.User, profile *storage.Profile) CurrentUserResponse {
	current := CurrentUser{ID: user.ID, Email: user.Email}
	if profile != nil {
		if profile.Email != "" {
			current.Email = profile.Email
		}
		if profile.Username != "" {
			username := profile.Username
			current.Username = &username
		}
		current.ProfilePictureURL = profile.ProfilePictureURL
		createdAt, updatedAt := profile.CreatedAt, profile.UpdatedAt
		current.CreatedAt = &createdAt
		current.UpdatedAt = &updatedAt
	}
	return CurrentUserResponse{Success: true, User: current}
}
