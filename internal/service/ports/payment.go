package ports

import (
	"context"

	"tickethub/internal/domain"
)

// PaymentGateway creates orders on the external payment processor. It is a
// pure boundary: no business logic, no verification.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*domain.PaymentOrder, error)
}
