package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCommissionRate(t *testing.T) {
	assert.True(t, CommissionRate(MethodCash).IsZero())
	assert.True(t, CommissionRate(MethodCard).Equal(decimal.NewFromFloat(0.029)))
	assert.True(t, CommissionRate(MethodPayPal).Equal(decimal.NewFromFloat(0.034)))
	assert.True(t, CommissionRate(MethodBankTransfer).Equal(decimal.NewFromFloat(0.01)))

	// Unknown methods fall back to the provider rate.
	assert.True(t, CommissionRate(PaymentMethod("mystery")).Equal(decimal.NewFromFloat(0.025)))
}

func TestPaymentView(t *testing.T) {
	p := Payment{
		Method: MethodCard,
		Amount: decimal.RequireFromString("100.00"),
		Status: PaymentCompleted,
	}

	view := p.View()

	assert.True(t, view.Commission.Equal(decimal.RequireFromString("2.90")), "commission was %s", view.Commission)
	assert.True(t, view.Net.Equal(decimal.RequireFromString("97.10")), "net was %s", view.Net)
	assert.True(t, view.Amount.Equal(p.Amount))
}

func TestPaymentViewCash(t *testing.T) {
	p := Payment{
		Method: MethodCash,
		Amount: decimal.RequireFromString("42.37"),
	}

	view := p.View()

	assert.True(t, view.Commission.IsZero())
	assert.True(t, view.Net.Equal(p.Amount))
}
