package dto

import (
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user profile.
type CreateUserRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"omitempty,min=8"`
}

// UpdateUserRequest defines the mutable fields of a user profile.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID      string    `json:"userID"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	IsOnboarded bool      `json:"isOnboarded"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GoogleIdentity is the subset of a validated Google profile the core consumes.
type GoogleIdentity struct {
	Email     string
	FirstName string
	LastName  string
}

// ToUserResponse converts a domain.UserProfile to its response DTO.
func ToUserResponse(u *domain.UserProfile) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsOnboarded: u.IsOnboarded,
		CreatedAt:   u.CreatedAt,
	}
}

// ToUserResponses converts a slice of user profiles.
func ToUserResponses(users []domain.UserProfile) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
