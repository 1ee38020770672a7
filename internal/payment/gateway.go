// Package payment defines the contract with the external checkout provider.
package payment

import "context"

// Confirmation carries the provider's payment confirmation details
type Confirmation struct {
	PaymentID string
}

// Options describes a single charge request.
// OnSuccess is invoked exactly once when the payment is confirmed and never
// otherwise; everything else about the provider (transport, currency
// conversion, retries) is outside this contract.
type Options struct {
	Amount      float64
	Name        string
	Description string
	OnSuccess   func(Confirmation)
}

// Gateway is the minimal interface a payment provider must implement
type Gateway interface {
	// Charge submits the payment described by opts.
	//
	// "ctx" is the context for the request.
	// "opts" describes the amount, display fields, and the success callback.
	//
	// A non-nil error means the payment was not confirmed and OnSuccess was not invoked.
	Charge(ctx context.Context, opts Options) error
}
