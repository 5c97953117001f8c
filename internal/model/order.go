package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents one customer purchase owned by a single restaurant.
// Orders arrive pre-populated from the external ordering flow; this service
// only reads them and transitions their status.
type Order struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	OrderNumber  string          `json:"orderNumber" db:"order_number"`
	RestaurantID uuid.UUID       `json:"-" db:"restaurant_id"`
	CustomerID   uuid.UUID       `json:"-" db:"customer_id"`
	Status       OrderStatus     `json:"status" db:"status"`
	Total        decimal.Decimal `json:"totalAmount" db:"total"`
	DeliveryTime *time.Time      `json:"deliveryTime,omitempty" db:"delivery_time"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`

	// Joined customer display fields.
	CustomerName    string `json:"-" db:"customer_name"`
	CustomerPhone   string `json:"-" db:"customer_phone"`
	CustomerAddress string `json:"-" db:"customer_address"`

	Items []OrderItem `json:"-"`
}

// OrderItem is an immutable snapshot of a dish attached to one order.
type OrderItem struct {
	ID        uuid.UUID       `json:"-" db:"id"`
	OrderID   uuid.UUID       `json:"-" db:"order_id"`
	DishName  string          `json:"name" db:"dish_name"`
	UnitPrice decimal.Decimal `json:"price" db:"unit_price"`
	Quantity  int             `json:"quantity" db:"quantity"`
}

// OrderView is the wire shape consumed by the dashboard order list.
type OrderView struct {
	ID           uuid.UUID       `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
	DeliveryTime *time.Time      `json:"deliveryTime,omitempty"`
	Client       string          `json:"client"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Items        []OrderItem     `json:"items"`
}

// View reshapes an order with its joined fields into the wire shape.
func (o *Order) View() *OrderView {
	items := o.Items
	if items == nil {
		items = []OrderItem{}
	}
	return &OrderView{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		Status:       o.Status,
		TotalAmount:  o.Total,
		CreatedAt:    o.CreatedAt,
		DeliveryTime: o.DeliveryTime,
		Client:       o.CustomerName,
		Phone:        o.CustomerPhone,
		Address:      o.CustomerAddress,
		Items:        items,
	}
}

// OrderSummary is the compact shape used by the recent-orders dashboard tile.
// FirstDish is the name of the first line item.
type OrderSummary struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	FirstDish   string          `json:"dish"`
	Client      string          `json:"client"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransitionRequest is the payload of the status-transition endpoint.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}
