package store

import (
	"fmt"
	"strings"
	"time"
)

// validateOrderInput checks that the required top-level fields are present.
// Field contents are deliberately not inspected: the admin panel owns the
// item shape, and totals are taken as submitted.
func validateOrderInput(in CreateOrderInput) error {
	var missing []string
	if in.Customer == nil {
		missing = append(missing, "customer")
	}
	if in.Address == nil {
		missing = append(missing, "address")
	}
	if in.Items == nil {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields %s: %w", strings.Join(missing, ", "), ErrValidation)
	}
	return nil
}

// newOrder builds a fully-formed order from a validated submission and an
// already-allocated id. The id is folded into the human-facing OrderID so
// two orders placed in the same instant can never share it.
func newOrder(in CreateOrderInput, id int64, now time.Time) Order {
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	return Order{
		ID:            id,
		OrderID:       fmt.Sprintf("ORD-%s-%d", now.Format("20060102"), id),
		Customer:      *in.Customer,
		Address:       *in.Address,
		Items:         in.Items,
		TotalAmount:   in.TotalAmount,
		PaymentMethod: paymentMethod,
		Notes:         in.Notes,
		Status:        StatusPending,
		OrderDate:     now,
	}
}
