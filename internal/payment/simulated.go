package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// simulatedGateway approves every well-formed charge without contacting a
// real provider. It stands in for the hosted checkout widget.
type simulatedGateway struct {
	logger *zap.Logger
}

// NewSimulatedGateway creates a gateway that confirms all valid payments
func NewSimulatedGateway(logger *zap.Logger) *simulatedGateway {
	return &simulatedGateway{
		logger: logger,
	}
}

// Charge validates the request, confirms the payment, and fires OnSuccess once
func (g *simulatedGateway) Charge(ctx context.Context, opts Options) error {
	if opts.Amount <= 0 {
		return fmt.Errorf("invalid charge amount: %.2f", opts.Amount)
	}

	confirmation := Confirmation{
		PaymentID: "pay_" + uuid.New().String(),
	}

	g.logger.Info("payment confirmed",
		zap.String("payment_id", confirmation.PaymentID),
		zap.Float64("amount", opts.Amount),
		zap.String("name", opts.Name),
		zap.String("description", opts.Description),
	)

	if opts.OnSuccess != nil {
		opts.OnSuccess(confirmation)
	}

	return nil
}
