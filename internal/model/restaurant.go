package model

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is an owner account. It is the sole authorisation boundary:
// every mutable entity carries a restaurant foreign key checked per request.
type Restaurant struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Address      string    `json:"address" db:"address"`
	Phone        string    `json:"phone" db:"phone"`
	Cuisine      string    `json:"cuisine" db:"cuisine"`
	LogoURL      string    `json:"logoUrl" db:"logo_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Customer is a purchaser reference joined into order listings.
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RegisterRequest is the payload for creating an owner account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Cuisine  string `json:"cuisine"`
}

// LoginRequest is the payload for authenticating an owner.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the session token and the owning account.
type AuthResponse struct {
	Token      string      `json:"token"`
	Restaurant *Restaurant `json:"restaurant"`
}

// UpdateProfileRequest is the payload for editing the restaurant profile.
type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Cuisine     string `json:"cuisine"`
	LogoURL     string `json:"logoUrl"`
}
