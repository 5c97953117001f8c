package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups dishes on the menu.
type Category struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RestaurantID uuid.UUID `json:"-" db:"restaurant_id"`
	Name         string    `json:"name" db:"name"`
	Position     int       `json:"position" db:"position"`
}

// Dish is a menu entry owned by one restaurant.
type Dish struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	RestaurantID uuid.UUID       `json:"-" db:"restaurant_id"`
	CategoryID   *uuid.UUID      `json:"categoryId,omitempty" db:"category_id"`
	Name         string          `json:"name" db:"name"`
	Description  string          `json:"description" db:"description"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Ingredients  []string        `json:"ingredients" db:"ingredients"`
	Available    bool            `json:"available" db:"available"`
	ImageURL     string          `json:"imageUrl" db:"image_url"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// IngredientList accepts either a JSON array of strings or a single
// comma-separated string, and normalises to an ordered list on ingress.
// Downstream code never branches on payload shape.
type IngredientList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = normaliseIngredients(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = normaliseIngredients(strings.Split(single, ","))
	return nil
}

func normaliseIngredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// DishRequest is the payload for creating or updating a dish. Price accepts
// a JSON number or string and is normalised to a fixed-point decimal.
type DishRequest struct {
	CategoryID  *uuid.UUID      `json:"categoryId"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Ingredients IngredientList  `json:"ingredients"`
	Available   *bool           `json:"available"`
	ImageURL    string          `json:"imageUrl"`
}

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Position int    `json:"position"`
}
