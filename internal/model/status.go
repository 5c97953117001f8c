package model

import "fmt"

// OrderStatus is the lifecycle stage of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the legal-transition table. DELIVERED and CANCELLED are
// terminal and never reversible. PREPARING may skip READY for restaurants
// that hand orders straight to the courier.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusDelivered},
	StatusReady:     {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseOrderStatus converts a raw string into an OrderStatus.
// Unrecognised values are rejected with ErrInvalidStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderTransitions[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus is the settlement state of a payment. It is independent of
// the order status; the two are never synchronised automatically.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodProvider     PaymentMethod = "provider"
)

// ParsePaymentMethod converts a raw string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodCash, MethodCard, MethodPayPal, MethodBankTransfer, MethodProvider:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}
