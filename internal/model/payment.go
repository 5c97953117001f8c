package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is associated with one order by convention. Its status is a state
// machine of its own, independent of the order status.
type Payment struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	RestaurantID uuid.UUID       `json:"-" db:"restaurant_id"`
	OrderID      uuid.UUID       `json:"orderId" db:"order_id"`
	Method       PaymentMethod   `json:"method" db:"method"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Status       PaymentStatus   `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

// commissionRates is the flat platform commission keyed by payment method.
var commissionRates = map[PaymentMethod]decimal.Decimal{
	MethodCash:         decimal.Zero,
	MethodCard:         decimal.NewFromFloat(0.029),
	MethodPayPal:       decimal.NewFromFloat(0.034),
	MethodBankTransfer: decimal.NewFromFloat(0.01),
	MethodProvider:     decimal.NewFromFloat(0.025),
}

// CommissionRate returns the flat commission rate for a payment method.
// Unknown methods fall back to the provider rate.
func CommissionRate(method PaymentMethod) decimal.Decimal {
	if rate, ok := commissionRates[method]; ok {
		return rate
	}
	return commissionRates[MethodProvider]
}

// PaymentView is a payment projected with its computed commission and net
// amount, rounded to two decimal places.
type PaymentView struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"orderId"`
	Method     PaymentMethod   `json:"method"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Net        decimal.Decimal `json:"net"`
	Status     PaymentStatus   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// View computes the commission projection for a payment.
func (p *Payment) View() PaymentView {
	commission := p.Amount.Mul(CommissionRate(p.Method)).Round(2)
	return PaymentView{
		ID:         p.ID,
		OrderID:    p.OrderID,
		Method:     p.Method,
		Amount:     p.Amount,
		Commission: commission,
		Net:        p.Amount.Sub(commission),
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}
