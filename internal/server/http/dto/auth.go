package dto

import "github.com/polkiloo/mentorcrm/internal/domain/model"

// LoginRequest describes the email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the signed-in operator.
type LoginResponse struct {
	Token    string         `json:"token"`
	Operator model.Operator `json:"operator"`
}

// ProfileRequest completes the profile of the signed-in operator.
type ProfileRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
