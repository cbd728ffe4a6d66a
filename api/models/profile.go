package models

import (
	"time"

	"github.com/alex-pricope/snackify/auth"
	"github.com/alex-pricope/snackify/storage"
)

type UpdateProfileRequest struct {
	Username          *string `json:"username,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ProfileBody struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ProfileResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Profile ProfileBody `json:"profile"`
}

func (r UpdateProfileRequest) ToInput() auth.ProfileInput {
	return auth.ProfileInput{Username: r.Username, ProfilePictureURL: r.ProfilePictureURL}
}

func (r ChangePasswordRequest) ToPasswordChange() auth.PasswordChange {
	return auth.PasswordChange{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
		ConfirmPassword: r.ConfirmPassword,
	}
}

func TransformProfileFromStorage(message string, p *storage.Profile) ProfileResponse {
	return ProfileResponse{
		Success: true,
		Message: message,
		Profile: ProfileBody{
			ID:                p.ID,
			Email:             p.Email,
			Username:          p.Username,
			ProfilePictureURL: p.ProfilePictureURL,
			CreatedAt:         p.CreatedAt,
			UpdatedAt:         p.UpdatedAt,
		},
	}
}
