package payment

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"counselhub/models"
)

const (
	orderFetchAttempts = 3
	orderFetchBackoff  = 1 * time.Second
)

// StripeGateway implements Gateway over manual-capture PaymentIntents:
// an order is an uncaptured intent, capture settles it.
type StripeGateway struct {
	Logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, account string, amount float64, currency string) (*models.GatewayOrder, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(amount)),
		Currency:           stripe.String(strings.ToLower(currency)),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if account != "" {
		params.SetStripeAccount(account)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, wrapStripeError("createOrder", err)
	}
	return orderFromIntent(intent), nil
}

func (g *StripeGateway) CaptureOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error) {
	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")

	intent, err := paymentintent.Capture(orderID, params)
	if err != nil {
		return nil, wrapStripeError("captureOrder", err)
	}
	return orderFromIntent(intent), nil
}

func (g *StripeGateway) CancelOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error) {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	intent, err := paymentintent.Cancel(orderID, params)
	if err != nil {
		return nil, wrapStripeError("cancelOrder", err)
	}
	return orderFromIntent(intent), nil
}

// GetOrder fetches order detail, retrying only transient failures up to
// three attempts with a fixed one-second backoff.
func (g *StripeGateway) GetOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error) {
	var lastErr error
	for attempt := 1; attempt <= orderFetchAttempts; attempt++ {
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx
		params.AddExpand("latest_charge")

		intent, err := paymentintent.Get(orderID, params)
		if err == nil {
			return orderFromIntent(intent), nil
		}
		lastErr = wrapStripeError("getOrder", err)
		if !IsTransient(lastErr) {
			return nil, lastErr
		}
		g.Logger.Warn("transient gateway failure fetching order",
			zap.String("orderId", orderID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < orderFetchAttempts {
			select {
			case <-time.After(orderFetchBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func orderFromIntent(intent *stripe.PaymentIntent) *models.GatewayOrder {
	order := &models.GatewayOrder{
		OrderID:   intent.ID,
		Status:    orderStatus(intent.Status),
		Amount:    float64(intent.Amount) / 100,
		Currency:  strings.ToUpper(string(intent.Currency)),
		CreatedAt: time.Unix(intent.Created, 0),
		UpdatedAt: time.Now(),
	}
	if intent.LatestCharge != nil && intent.LatestCharge.BillingDetails != nil {
		order.PayerEmail = intent.LatestCharge.BillingDetails.Email
		order.PayerID = intent.LatestCharge.BillingDetails.Name
	}
	return order
}

// orderStatus folds Stripe intent statuses into the canonical order
// states. Everything short of settled or cancelled is still capturable.
func orderStatus(s stripe.PaymentIntentStatus) string {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return models.GatewayOrderCompleted
	case stripe.PaymentIntentStatusCanceled:
		return models.GatewayOrderCancelled
	default:
		return models.GatewayOrderCreated
	}
}

func wrapStripeError(op string, err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return &GatewayError{
			Code:      string(sErr.Code),
			Message:   sErr.Msg,
			Transient: sErr.HTTPStatusCode >= 500 || sErr.Code == stripe.ErrorCodeLockTimeout,
			Err:       err,
		}
	}
	return &GatewayError{Code: op, Message: err.Error(), Transient: true, Err: err}
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
