package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"counselhub/models"
)

func (l *DefaultBookingPaymentLedger) CreateForSlot(ctx context.Context, slot *models.ScheduleSlot, meeting *models.MeetingBooking, resolved *models.ResolvedRate, clientID, paymentOption string) (*models.BookingPayment, error) {
	payment := models.BookingPayment{
		ClientID:      clientID,
		CounsellorID:  meeting.CounsellorID,
		MeetingID:     meeting.ID,
		RoomID:        slot.RoomID,
		Currency:      resolved.Currency,
		Amount:        resolved.Amount,
		Paid:          0,
		Status:        models.BookingPaymentPending,
		PaymentOption: paymentOption,
	}
	created, err := l.Payments.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to open booking payment: %w", err)
	}
	l.Logger.Info("booking payment opened",
		zap.String("paymentId", created.ID),
		zap.String("meetingBookingId", meeting.ID),
		zap.Float64("amount", created.Amount),
		zap.String("currency", created.Currency))
	return created, nil
}

func (l *DefaultBookingPaymentLedger) BeginCheckout(ctx context.Context, paymentID, gatewayAccount string) (*models.BookingPayment, error) {
	p, err := l.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != models.BookingPaymentPending {
		return nil, ErrInvalidState
	}

	order, err := l.Gateway.CreateOrder(ctx, gatewayAccount, p.Amount, p.Currency)
	if err != nil {
		// The payment stays PENDING; checkout initiation is retryable.
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	p.GatewayOrder = order
	p.Status = models.BookingPaymentProcessing
	if err := l.Payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record gateway order: %w", err)
	}
	l.Logger.Info("checkout initiated",
		zap.String("paymentId", p.ID),
		zap.String("orderId", order.OrderID))
	return p, nil
}

func (l *DefaultBookingPaymentLedger) Capture(ctx context.Context, paymentID string) (*models.BookingPayment, error) {
	p, err := l.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status == models.BookingPaymentPaid {
		// Already settled. Re-run finalization in case the earlier
		// attempt settled the payment but died before booking the slot.
		l.finalize(ctx, p)
		return p, nil
	}
	if p.Status != models.BookingPaymentProcessing || p.GatewayOrder == nil {
		return nil, ErrInvalidState
	}

	// Refresh the order first: if it already settled on the gateway side
	// (webhook race, retried capture call), recording the settlement is
	// all that remains.
	order, err := l.Gateway.GetOrder(ctx, p.GatewayOrder.OrderID)
	if err != nil {
		// The payment stays PROCESSING; a failed read is retryable.
		return nil, fmt.Errorf("failed to fetch gateway order: %w", err)
	}
	if order.Status != models.GatewayOrderCompleted {
		order, err = l.Gateway.CaptureOrder(ctx, p.GatewayOrder.OrderID)
		if err != nil {
			l.Logger.Error("gateway capture failed",
				zap.String("paymentId", p.ID),
				zap.String("orderId", p.GatewayOrder.OrderID),
				zap.Error(err))
			if _, ferr := l.Fail(ctx, p.ID); ferr != nil {
				l.Logger.Error("failed to record payment failure", zap.String("paymentId", p.ID), zap.Error(ferr))
			}
			return nil, fmt.Errorf("failed to capture gateway order: %w", err)
		}
	} else {
		l.Logger.Info("gateway order already settled",
			zap.String("paymentId", p.ID),
			zap.String("orderId", order.OrderID))
	}

	now := time.Now()
	p.GatewayOrder = order
	p.Installments = append(p.Installments, models.Installment{
		ID:             uuid.New().String(),
		Amount:         p.Amount,
		Currency:       p.Currency,
		GatewayOrderID: order.OrderID,
		PaidAt:         now,
	})
	p.Paid += p.Amount
	p.Amount = 0
	p.Status = models.BookingPaymentPaid
	if err := l.Payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}
	l.Logger.Info("booking payment settled",
		zap.String("paymentId", p.ID),
		zap.Float64("paid", p.Paid),
		zap.String("currency", p.Currency))

	l.finalize(ctx, p)
	return p, nil
}

func (l *DefaultBookingPaymentLedger) MarkProcessing(ctx context.Context, paymentID string) (*models.BookingPayment, error) {
	p, err := l.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	switch p.Status {
	case models.BookingPaymentProcessing:
		return p, nil
	case models.BookingPaymentPending:
	default:
		return nil, ErrInvalidState
	}
	p.Status = models.BookingPaymentProcessing
	if err := l.Payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update booking payment: %w", err)
	}
	return p, nil
}

func (l *DefaultBookingPaymentLedger) Cancel(ctx context.Context, paymentID string) (*models.BookingPayment, error) {
	p, err := l.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status == models.BookingPaymentPaid {
		return nil, ErrInvalidState
	}
	if p.Status == models.BookingPaymentCancelled {
		return p, nil
	}

	if p.GatewayOrder != nil && p.Status == models.BookingPaymentProcessing {
		if _, err := l.Gateway.CancelOrder(ctx, p.GatewayOrder.OrderID); err != nil {
			// The local record still cancels; the order lapses on the
			// gateway side.
			l.Logger.Warn("failed to cancel gateway order",
				zap.String("paymentId", p.ID),
				zap.String("orderId", p.GatewayOrder.OrderID),
				zap.Error(err))
		}
	}

	p.Status = models.BookingPaymentCancelled
	if err := l.Payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update booking payment: %w", err)
	}
	l.Logger.Info("booking payment cancelled", zap.String("paymentId", p.ID))
	return p, nil
}

func (l *DefaultBookingPaymentLedger) Fail(ctx context.Context, paymentID string) (*models.BookingPayment, error) {
	p, err := l.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status == models.BookingPaymentPaid {
		return nil, ErrInvalidState
	}
	if p.Status == models.BookingPaymentFailed {
		return p, nil
	}

	p.Status = models.BookingPaymentFailed
	if err := l.Payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update booking payment: %w", err)
	}
	if err := l.Meetings.UpdateStatus(ctx, p.MeetingID, models.MeetingBookingFailed); err != nil {
		l.Logger.Error("failed to fail meeting booking",
			zap.String("meetingBookingId", p.MeetingID), zap.Error(err))
	}
	l.Logger.Info("booking payment failed", zap.String("paymentId", p.ID))
	return p, nil
}

func (l *DefaultBookingPaymentLedger) Get(ctx context.Context, paymentID string) (*models.BookingPayment, error) {
	p, err := l.Payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking payment: %w", err)
	}
	return p, nil
}

// finalize books the slot behind a settled payment. Finalization is
// idempotent, so failures here are logged and healed on the next capture
// call rather than rolled back.
func (l *DefaultBookingPaymentLedger) finalize(ctx context.Context, p *models.BookingPayment) {
	slot, err := l.Slots.GetByPaymentID(ctx, p.ID)
	if err != nil {
		l.Logger.Error("failed to locate slot for settled payment",
			zap.String("paymentId", p.ID), zap.Error(err))
		return
	}
	if slot.Booked {
		return
	}
	if err := l.Finalizer.FinalizeBooking(ctx, slot.ID); err != nil {
		l.Logger.Error("failed to finalize booking after settlement",
			zap.String("paymentId", p.ID),
			zap.String("slotId", slot.ID),
			zap.Error(err))
	}
}
