package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promotion is a discount code owned by one restaurant.
type Promotion struct {
	ID              uuid.UUID `json:"id" db:"id"`
	RestaurantID    uuid.UUID `json:"-" db:"restaurant_id"`
	Code            string    `json:"code" db:"code"`
	Description     string    `json:"description" db:"description"`
	DiscountPercent int       `json:"discountPercent" db:"discount_percent"`
	StartsAt        time.Time `json:"startsAt" db:"starts_at"`
	EndsAt          time.Time `json:"endsAt" db:"ends_at"`
	Active          bool      `json:"active" db:"active"`
}

// PromotionRequest is the payload for creating or updating a promotion.
type PromotionRequest struct {
	Code            string    `json:"code" validate:"required"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discountPercent" validate:"required,min=1,max=100"`
	StartsAt        time.Time `json:"startsAt" validate:"required"`
	EndsAt          time.Time `json:"endsAt" validate:"required"`
	Active          *bool     `json:"active"`
}

// CampaignStatus is the lifecycle of a marketing campaign.
type CampaignStatus string

const (
	CampaignDraft    CampaignStatus = "draft"
	CampaignRunning  CampaignStatus = "running"
	CampaignFinished CampaignStatus = "finished"
)

// Campaign is a marketing campaign owned by one restaurant.
type Campaign struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	RestaurantID uuid.UUID       `json:"-" db:"restaurant_id"`
	Title        string          `json:"title" db:"title"`
	Description  string          `json:"description" db:"description"`
	Budget       decimal.Decimal `json:"budget" db:"budget"`
	StartsAt     time.Time       `json:"startsAt" db:"starts_at"`
	EndsAt       time.Time       `json:"endsAt" db:"ends_at"`
	Status       CampaignStatus  `json:"status" db:"status"`
}

// CampaignRequest is the payload for creating or updating a campaign.
type CampaignRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	StartsAt    time.Time       `json:"startsAt" validate:"required"`
	EndsAt      time.Time       `json:"endsAt" validate:"required"`
	Status      CampaignStatus  `json:"status" validate:"omitempty,oneof=draft running finished"`
}
