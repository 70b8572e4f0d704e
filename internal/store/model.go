package store

import "time"

// Order statuses are an open set; the store only ever assigns StatusPending
// itself, everything else comes from the admin panel.
const StatusPending = "Pending"

const defaultPaymentMethod = "COD"

// CatalogItem is an admin-managed record (product or banner). The store does
// not enforce a shape: whatever fields the admin panel sends are kept as-is.
type CatalogItem map[string]any

type Customer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

type Address struct {
	HouseNo  string `json:"houseNo"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

// Order is the persisted order record. ID is the only guaranteed-unique key;
// OrderID is the human-facing identifier printed on receipts.
type Order struct {
	ID            int64            `json:"id"`
	OrderID       string           `json:"orderId"`
	Customer      Customer         `json:"customer"`
	Address       Address          `json:"address"`
	Items         []map[string]any `json:"items"`
	TotalAmount   float64          `json:"totalAmount"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes"`
	Status        string           `json:"status"`
	OrderDate     time.Time        `json:"orderDate"`
}

// CreateOrderInput carries a raw order submission. Customer, Address and
// Items must be present; everything else is optional and defaulted.
type CreateOrderInput struct {
	Customer      *Customer        `json:"customer"`
	Address       *Address         `json:"address"`
	Items         []map[string]any `json:"items"`
	TotalAmount   float64          `json:"totalAmount"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes"`
}

// counterDoc is the on-disk shape of the order-id counter document.
type counterDoc struct {
	NextOrderID int64 `json:"nextOrderId"`
}
