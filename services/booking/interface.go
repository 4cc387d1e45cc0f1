package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingPaymentRepo "counselhub/database/repository/bookingpayment"
	clientRepo "counselhub/database/repository/client"
	counsellorRepo "counselhub/database/repository/counsellor"
	meetingRepo "counselhub/database/repository/meeting"
	slotRepo "counselhub/database/repository/slot"
	"counselhub/models"
	"counselhub/services/payment"
	"counselhub/services/rate"
)

// Finalizer completes a booking once its payment is settled (or needs no
// gateway). Implemented by the schedule orchestrator; held by the ledger
// as an interface so settlement can trigger finalization without the
// ledger owning slot semantics.
type Finalizer interface {
	FinalizeBooking(ctx context.Context, slotID string) error
}

// TaskEnqueuer hands confirmed-booking notifications to the async worker.
type TaskEnqueuer interface {
	EnqueueBookingConfirmed(ctx context.Context, payload models.NotificationPayload) error
}

// BookingPaymentLedger owns every mutation of a BookingPayment. Statuses
// move PENDING -> PROCESSING -> PAID, or terminate in CANCELLED / FAILED.
type BookingPaymentLedger interface {
	// CreateForSlot opens a PENDING payment for a held slot.
	CreateForSlot(ctx context.Context, slot *models.ScheduleSlot, meeting *models.MeetingBooking, resolved *models.ResolvedRate, clientID, paymentOption string) (*models.BookingPayment, error)
	// BeginCheckout creates a gateway order against the counsellor's
	// account and moves the payment to PROCESSING.
	BeginCheckout(ctx context.Context, paymentID, gatewayAccount string) (*models.BookingPayment, error)
	// Capture settles the gateway order, drains the outstanding amount
	// into Paid and finalizes the booking. Capturing an already PAID
	// payment is a no-op.
	Capture(ctx context.Context, paymentID string) (*models.BookingPayment, error)
	// MarkProcessing moves a PENDING payment to PROCESSING without a
	// gateway order, for payment options settled outside the system.
	MarkProcessing(ctx context.Context, paymentID string) (*models.BookingPayment, error)
	// Cancel terminates the payment in CANCELLED. The meeting booking is
	// left untouched; the hold sweep reclaims the slot.
	Cancel(ctx context.Context, paymentID string) (*models.BookingPayment, error)
	// Fail terminates both the payment and its meeting booking in FAILED.
	Fail(ctx context.Context, paymentID string) (*models.BookingPayment, error)
	Get(ctx context.Context, paymentID string) (*models.BookingPayment, error)
}

// CheckoutOutcome is the result of confirming a detailed booking: either
// the client must complete external checkout, or the booking confirmed
// directly.
type CheckoutOutcome struct {
	CheckoutRequired bool                   `json:"checkoutRequired"`
	Payment          *models.BookingPayment `json:"payment"`
}

// ScheduleOrchestrator drives a slot through the booking flow: open ->
// held -> details captured -> checkout or direct confirm -> booked.
type ScheduleOrchestrator interface {
	// Proceed claims an open slot, creating a PENDING meeting booking and
	// an advisory hold. bookingType selects the delivery type: an empty
	// value inherits the slot's, ONLINE is allowed for any slot, and
	// ON_PREMISE requires the slot to offer it.
	Proceed(ctx context.Context, slotID, bookingType, timezone string) (*models.MeetingBooking, error)
	// CaptureDetails records the client, resolves the rate and opens the
	// payment for a held booking.
	CaptureDetails(ctx context.Context, meetingBookingID string, details models.AppointmentDetails) (*models.BookingPayment, error)
	// ConfirmOrInitiateCheckout routes the booking: gateway payment
	// options get a checkout order, the rest finalize immediately.
	ConfirmOrInitiateCheckout(ctx context.Context, meetingBookingID string) (*CheckoutOutcome, error)
	// SweepExpiredHolds releases lapsed holds and fails their bookings,
	// returning the number of slots reclaimed.
	SweepExpiredHolds(ctx context.Context) (int, error)

	Finalizer
}

// DefaultBookingPaymentLedger implements BookingPaymentLedger over the
// payment repository and the external gateway.
type DefaultBookingPaymentLedger struct {
	Payments  bookingPaymentRepo.BookingPaymentRepository
	Meetings  meetingRepo.MeetingBookingRepository
	Slots     slotRepo.SlotRepository
	Gateway   payment.Gateway
	Finalizer Finalizer
	Logger    *zap.Logger
}

// DefaultScheduleOrchestrator implements ScheduleOrchestrator. Hold is an
// optional Redis mirror of active hold windows; nil disables it.
type DefaultScheduleOrchestrator struct {
	Slots       slotRepo.SlotRepository
	Meetings    meetingRepo.MeetingBookingRepository
	Clients     clientRepo.ClientRepository
	Counsellors counsellorRepo.CounsellorRepository
	Rates       rate.RateResolver
	Ledger      BookingPaymentLedger
	Tasks       TaskEnqueuer
	Hold        *redis.Client
	HoldWindow  time.Duration
	Logger      *zap.Logger
}
