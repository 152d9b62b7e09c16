package domain

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCOD   = "cod"
	PaymentBkash = "bkash"
)

// Payment and fulfilment states. Orders start as pending/received.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"

	OrderReceived   = "received"
	OrderDispatched = "dispatched"
	OrderDelivered  = "delivered"
)

// Order is a placed order. Line items are attached 1:N and are immutable
// once written.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customerId"`
	AccountID     string      `json:"accountId"`
	TotalAmount   int64       `json:"totalAmount"`
	ShippingFee   int64       `json:"shippingFee"`
	Discount      int64       `json:"discount"`
	PaymentMethod string      `json:"paymentMethod"`
	TrxID         *string     `json:"trxId,omitempty"`
	PaymentStatus string      `json:"paymentStatus"`
	OrderStatus   string      `json:"orderStatus"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderItem captures quantity and unit price at purchase time. ProductID is
// always the base catalog id; the sold size lives in Variant.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	ProductID string    `json:"productId"`
	Variant   Variant   `json:"variant"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unitPrice"`
	CreatedAt time.Time `json:"createdAt"`
}
