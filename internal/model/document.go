package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata row for an uploaded legal document. The bytes
// live in the document store (S3 or local), keyed by StorageKey.
type Document struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RestaurantID uuid.UUID `json:"-" db:"restaurant_id"`
	Kind         string    `json:"kind" db:"kind"`
	FileName     string    `json:"fileName" db:"file_name"`
	StorageKey   string    `json:"-" db:"storage_key"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// MenuSettings configures the public menu page for one restaurant.
type MenuSettings struct {
	RestaurantID uuid.UUID `json:"-" db:"restaurant_id"`
	PublicSlug   string    `json:"publicSlug" db:"public_slug"`
	Theme        string    `json:"theme" db:"theme"`
	ShowPrices   bool      `json:"showPrices" db:"show_prices"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// MenuSettingsRequest is the payload for updating menu settings.
type MenuSettingsRequest struct {
	PublicSlug string `json:"publicSlug" validate:"required,min=3,max=100"`
	Theme      string `json:"theme"`
	ShowPrices *bool  `json:"showPrices"`
}
