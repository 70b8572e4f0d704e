package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateOrderInput(t *testing.T) {
	customer := &Customer{FullName: "A", Phone: "1"}
	address := &Address{City: "Pune"}
	items := []map[string]any{{"sku": "x"}}

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr bool
	}{
		{"complete", CreateOrderInput{Customer: customer, Address: address, Items: items}, false},
		{"empty_items_still_present", CreateOrderInput{Customer: customer, Address: address, Items: []map[string]any{}}, false},
		{"nil_customer", CreateOrderInput{Address: address, Items: items}, true},
		{"nil_address", CreateOrderInput{Customer: customer, Items: items}, true},
		{"nil_items", CreateOrderInput{Customer: customer, Address: address}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOrderInput(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	in := CreateOrderInput{
		Customer:    &Customer{FullName: "A", Phone: "1"},
		Address:     &Address{City: "Pune", Pincode: "411001"},
		Items:       []map[string]any{{"sku": "x", "qty": 2}},
		TotalAmount: 40,
	}

	o := newOrder(in, 1001, now)

	assert.Equal(t, int64(1001), o.ID)
	assert.Equal(t, "ORD-20260314-1001", o.OrderID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "COD", o.PaymentMethod, "payment method defaults when absent")
	assert.Equal(t, "", o.Notes)
	assert.Equal(t, now, o.OrderDate)
	assert.Equal(t, *in.Customer, o.Customer)
	assert.Equal(t, *in.Address, o.Address)
	assert.Equal(t, in.Items, o.Items)
	assert.Equal(t, 40.0, o.TotalAmount)
}

func TestNewOrder_KeepsSubmittedPaymentMethod(t *testing.T) {
	in := CreateOrderInput{
		Customer:      &Customer{FullName: "A"},
		Address:       &Address{},
		Items:         []map[string]any{},
		PaymentMethod: "UPI",
		Notes:         "call on arrival",
	}

	o := newOrder(in, 1002, time.Now())

	assert.Equal(t, "UPI", o.PaymentMethod)
	assert.Equal(t, "call on arrival", o.Notes)
}
