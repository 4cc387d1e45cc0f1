package payment

import (
	"context"
	"errors"
	"fmt"

	"counselhub/models"
)

// Gateway is the opaque external payment collaborator. Orders are created
// against the counsellor's gateway account, then captured (or cancelled)
// by reference.
type Gateway interface {
	CreateOrder(ctx context.Context, account string, amount float64, currency string) (*models.GatewayOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error)
	CancelOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error)
	// GetOrder fetches order detail, retrying transient failures.
	GetOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error)
}

// GatewayError wraps an external payment failure. Transient errors are
// retryable; the rest are terminal and map the payment to FAILED.
type GatewayError struct {
	Code      string
	Message   string
	Transient bool
	Err       error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %s", e.Code, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a retryable gateway failure.
func IsTransient(err error) bool {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Transient
	}
	return false
}
