package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback on a restaurant. The restaurant reply lives in
// its own Response column; the original comment is never mutated.
type Review struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	RestaurantID uuid.UUID  `json:"-" db:"restaurant_id"`
	CustomerID   uuid.UUID  `json:"-" db:"customer_id"`
	Rating       int        `json:"rating" db:"rating"`
	Comment      string     `json:"comment" db:"comment"`
	Response     *string    `json:"response,omitempty" db:"response"`
	RespondedAt  *time.Time `json:"respondedAt,omitempty" db:"responded_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`

	// Joined customer display name.
	CustomerName string `json:"client" db:"customer_name"`
}

// RespondRequest is the payload for publishing a reply to a review.
type RespondRequest struct {
	Response string `json:"response" validate:"required"`
}
