package service

import (
	"time"

	"resto-board/internal/model"
)

// validateWindow rejects date ranges that end before they start.
func validateWindow(start, end time.Time) error {
	if !end.After(start) {
		return model.NewDomainError(model.ErrCodeValidation, "end date must be after start date")
	}
	return nil
}
