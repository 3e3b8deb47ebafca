package models

import "time"

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// statusTransitions lists the allowed next statuses per current status.
// delivered and cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

func IsValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsCancellable reports whether the ordering user may still cancel.
func IsCancellable(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

func IsValidPaymentMethod(method string) bool {
	return method == PaymentCash || method == PaymentCard || method == PaymentUPI
}

type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type Order struct {
	ID                   int             `json:"id"`
	UserID               int             `json:"user_id"`
	RestaurantID         int             `json:"restaurant_id"`
	RestaurantName       string          `json:"restaurant_name,omitempty"`
	Items                []OrderItem     `json:"items,omitempty"`
	Subtotal             float64         `json:"subtotal"`
	DeliveryFee          float64         `json:"delivery_fee"`
	TaxAmount            float64         `json:"tax_amount"`
	TotalAmount          float64         `json:"total_amount"`
	DeliveryAddress      DeliveryAddress `json:"delivery_address"`
	PaymentMethod        string          `json:"payment_method"`
	DeliveryInstructions string          `json:"delivery_instructions,omitempty"`
	Status               string          `json:"status"`
	IdempotencyKey       string          `json:"-"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// OrderItem snapshots name and unit price at order time, so later menu
// edits do not rewrite order history.
type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
