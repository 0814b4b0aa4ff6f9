package api

import (
	"encoding/json"
)

// Common request/response structures

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the signup and login
// endpoints. Token is the opaque bearer credential the client presents in
// the Authorization header on subsequent requests.
type TokenResponse struct {
	Token string `json:"token"`
}

// TasksResponse defines the successful response for the get-tasks endpoint.
// Tasks is the stored document, returned byte-for-byte as it was written.
type TasksResponse struct {
	Tasks json.RawMessage `json:"tasks"`
}

// PutTasksRequest defines the payload for the put-tasks endpoint. Tasks may
// be any JSON value; it replaces the stored document wholesale.
type PutTasksRequest struct {
	Tasks json.RawMessage `json:"tasks" validate:"required"`
}
