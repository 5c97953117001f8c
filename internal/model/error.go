package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidation        = "VALIDATION_FAILED"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeIllegalTransition = "ILLEGAL_TRANSITION"
	ErrCodeStatusConflict    = "STATUS_CONFLICT"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeEmailTaken        = "EMAIL_TAKEN"
	ErrCodeBadCredentials    = "BAD_CREDENTIALS"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that handlers map to an HTTP status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Unrecognised order status value")
	ErrIllegalTransition  = NewDomainError(ErrCodeIllegalTransition, "Requested status is not a legal successor of the current status")
	ErrStatusConflict     = NewDomainError(ErrCodeStatusConflict, "Order status changed concurrently, re-read and retry")
	ErrOrderNotFound      = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrDishNotFound       = NewDomainError(ErrCodeNotFound, "Dish not found")
	ErrCategoryNotFound   = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrPromotionNotFound  = NewDomainError(ErrCodeNotFound, "Promotion not found")
	ErrCampaignNotFound   = NewDomainError(ErrCodeNotFound, "Campaign not found")
	ErrReviewNotFound     = NewDomainError(ErrCodeNotFound, "Review not found")
	ErrRestaurantNotFound = NewDomainError(ErrCodeNotFound, "Restaurant not found")
	ErrMenuNotConfigured  = NewDomainError(ErrCodeNotFound, "Menu settings not configured")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrBadCredentials     = NewDomainError(ErrCodeBadCredentials, "Invalid email or password")
)
