package models

import "github.com/alex-pricope/snackify/snacks"

type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Details []snacks.FieldError `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}
