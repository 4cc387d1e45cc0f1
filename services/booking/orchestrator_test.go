package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/services/rate"
)

// testFlow wires the orchestrator and ledger over in-memory fakes, the
// same shape main assembles in production.
type testFlow struct {
	slots       *fakeSlotRepo
	meetings    *fakeMeetingRepo
	payments    *fakePaymentRepo
	clients     *fakeClientRepo
	counsellors *fakeCounsellorRepo
	gateway     *fakeGateway
	resolver    *fakeResolver
	tasks       *fakeEnqueuer
	ledger      *DefaultBookingPaymentLedger
	orch        *DefaultScheduleOrchestrator
}

func newTestFlow() *testFlow {
	f := &testFlow{
		slots:    newFakeSlotRepo(),
		meetings: newFakeMeetingRepo(),
		payments: newFakePaymentRepo(),
		clients:  newFakeClientRepo(),
		counsellors: newFakeCounsellorRepo(models.Counsellor{
			ID:    "c1",
			Name:  "Dr. Perera",
			Email: "perera@example.com",
			PaymentOptions: []models.PaymentOption{
				{Kind: "card", GatewayAccount: "acct_1"},
				{Kind: "cash"},
			},
		}),
		gateway:  newFakeGateway(),
		resolver: &fakeResolver{amount: 120, currency: "USD"},
		tasks:    &fakeEnqueuer{},
	}
	f.ledger = &DefaultBookingPaymentLedger{
		Payments: f.payments,
		Meetings: f.meetings,
		Slots:    f.slots,
		Gateway:  f.gateway,
		Logger:   zap.NewNop(),
	}
	f.orch = &DefaultScheduleOrchestrator{
		Slots:       f.slots,
		Meetings:    f.meetings,
		Clients:     f.clients,
		Counsellors: f.counsellors,
		Rates:       f.resolver,
		Ledger:      f.ledger,
		Tasks:       f.tasks,
		HoldWindow:  30 * time.Minute,
		Logger:      zap.NewNop(),
	}
	f.ledger.Finalizer = f.orch
	return f
}

func (f *testFlow) openSlot(t *testing.T, meetingType, roomID string) *models.ScheduleSlot {
	t.Helper()
	start := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	slot, err := f.slots.Create(context.Background(), models.ScheduleSlot{
		CounsellorID: "c1",
		RoomID:       roomID,
		MeetingID:    "meet-1",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		MeetingType:  meetingType,
	})
	require.NoError(t, err)
	return slot
}

func testDetails(paymentOption string) models.AppointmentDetails {
	return models.AppointmentDetails{
		Email:         "amara@example.com",
		FirstName:     "Amara",
		LastName:      "Silva",
		Country:       "LK",
		Nationality:   "LK",
		ServiceID:     "s1",
		PaymentOption: paymentOption,
	}
}

func TestProceedHoldsSlot(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")

	meeting, err := f.orch.Proceed(context.Background(), slot.ID, "", "Asia/Colombo")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingBookingPending, meeting.Status)
	assert.Equal(t, "c1", meeting.CounsellorID)
	assert.Equal(t, "Asia/Colombo", meeting.Timezone)

	held, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.Equal(t, meeting.ID, held.MeetingBookingID)
	require.NotNil(t, held.ExpiresIn)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *held.ExpiresIn, time.Minute)
	assert.False(t, held.Booked)
}

func TestProceedRejectsActiveHold(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")

	_, err := f.orch.Proceed(context.Background(), slot.ID, "", "")
	require.NoError(t, err)

	_, err = f.orch.Proceed(context.Background(), slot.ID, "", "")
	assert.ErrorIs(t, err, ErrSlotHeld)
}

func TestProceedRejectsBookedSlot(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	require.NoError(t, f.slots.MarkBooked(context.Background(), slot.ID))

	_, err := f.orch.Proceed(context.Background(), slot.ID, "", "")
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestProceedUnknownSlot(t *testing.T) {
	f := newTestFlow()
	_, err := f.orch.Proceed(context.Background(), "missing", "", "")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestProceedAllowsLapsedHold(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")

	first, err := f.orch.Proceed(context.Background(), slot.ID, "", "")
	require.NoError(t, err)

	// Lapse the hold manually.
	expired := time.Now().Add(-time.Minute)
	f.slots.slots[slot.ID].ExpiresIn = &expired

	second, err := f.orch.Proceed(context.Background(), slot.ID, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	held, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.Equal(t, second.ID, held.MeetingBookingID)
}

func TestProceedRoomOnlyForOnPremise(t *testing.T) {
	f := newTestFlow()

	online := f.openSlot(t, models.MeetingTypeOnline, "room-9")
	meeting, err := f.orch.Proceed(context.Background(), online.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, meeting.RoomID)

	onPremise := f.openSlot(t, models.MeetingTypeOnPremise, "room-9")
	meeting, err = f.orch.Proceed(context.Background(), onPremise.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "room-9", meeting.RoomID)
}

func TestProceedOnlineAttendanceOfRoomSlot(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnPremise, "room-9")

	meeting, err := f.orch.Proceed(context.Background(), slot.ID, models.MeetingTypeOnline, "")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingTypeOnline, meeting.BookingType)
	assert.Empty(t, meeting.RoomID)
}

func TestProceedRejectsUnofferedMeetingType(t *testing.T) {
	f := newTestFlow()
	online := f.openSlot(t, models.MeetingTypeOnline, "")

	_, err := f.orch.Proceed(context.Background(), online.ID, models.MeetingTypeOnPremise, "")
	assert.ErrorIs(t, err, ErrInvalidMeetingType)

	_, err = f.orch.Proceed(context.Background(), online.ID, "CARRIER_PIGEON", "")
	assert.ErrorIs(t, err, ErrInvalidMeetingType)

	// Neither rejection holds the slot.
	open, _ := f.slots.GetByID(context.Background(), online.ID)
	assert.Empty(t, open.MeetingBookingID)
}

func TestCaptureDetailsOpensPendingPayment(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, err := f.orch.Proceed(context.Background(), slot.ID, "", "Asia/Colombo")
	require.NoError(t, err)

	payment, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaymentPending, payment.Status)
	assert.Equal(t, 120.0, payment.Amount)
	assert.Equal(t, "USD", payment.Currency)
	assert.Zero(t, payment.Paid)

	held, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.Equal(t, payment.ID, held.BookingPaymentID)
	assert.NotEmpty(t, held.ClientID)

	linked, _ := f.meetings.GetByID(context.Background(), meeting.ID)
	assert.Equal(t, payment.ID, linked.BookingPaymentID)
	assert.Equal(t, held.ClientID, linked.ClientID)
	assert.Equal(t, "s1", linked.ServiceID)

	client, err := f.clients.GetByID(context.Background(), held.ClientID)
	require.NoError(t, err)
	assert.Equal(t, "amara@example.com", client.Email)
	assert.False(t, client.Existing)
}

func TestCaptureDetailsReturnsExistingPayment(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")

	first, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	require.NoError(t, err)
	second, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.payments.payments, 1)
}

func TestCaptureDetailsPropagatesRateFailure(t *testing.T) {
	f := newTestFlow()
	f.resolver.err = rate.ErrNoRateDefined
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")

	_, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	assert.ErrorIs(t, err, rate.ErrNoRateDefined)
	assert.Empty(t, f.payments.payments)
}

func TestConfirmRequiresDetails(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")

	_, err := f.orch.ConfirmOrInitiateCheckout(context.Background(), meeting.ID)
	assert.ErrorIs(t, err, ErrFlowIncomplete)
}

func TestConfirmDirectWhenNoGatewayCredentials(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")
	_, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("cash"))
	require.NoError(t, err)

	outcome, err := f.orch.ConfirmOrInitiateCheckout(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.False(t, outcome.CheckoutRequired)
	assert.Equal(t, models.BookingPaymentProcessing, outcome.Payment.Status)
	assert.Zero(t, f.gateway.createCalls, "no gateway order for offline settlement")

	booked, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.True(t, booked.Booked)
	assert.Nil(t, booked.ExpiresIn)

	confirmed, _ := f.meetings.GetByID(context.Background(), meeting.ID)
	assert.Equal(t, models.MeetingBookingProcessing, confirmed.Status)

	client, _ := f.clients.GetByID(context.Background(), booked.ClientID)
	assert.True(t, client.Existing)

	require.Len(t, f.tasks.payloads, 1)
	assert.Equal(t, meeting.ID, f.tasks.payloads[0].MeetingBookingID)
}

func TestConfirmChecksOutThroughGateway(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")
	_, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	require.NoError(t, err)

	outcome, err := f.orch.ConfirmOrInitiateCheckout(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.True(t, outcome.CheckoutRequired)
	assert.Equal(t, models.BookingPaymentProcessing, outcome.Payment.Status)
	require.NotNil(t, outcome.Payment.GatewayOrder)
	assert.Equal(t, 1, f.gateway.createCalls)

	// Not booked until the payment settles.
	held, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.False(t, held.Booked)
	assert.Empty(t, f.tasks.payloads)
}

func TestFinalizeBookingIdempotent(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")
	_, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("cash"))
	require.NoError(t, err)
	_, err = f.orch.ConfirmOrInitiateCheckout(context.Background(), meeting.ID)
	require.NoError(t, err)

	require.NoError(t, f.orch.FinalizeBooking(context.Background(), slot.ID))
	require.NoError(t, f.orch.FinalizeBooking(context.Background(), slot.ID))

	assert.Len(t, f.payments.payments, 1)
	assert.Len(t, f.meetings.meetings, 1)
	assert.Len(t, f.tasks.payloads, 1, "finalizing a booked slot re-sends nothing")
}

func TestSweepExpiredHoldsReclaimsSlot(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")
	payment, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	f.slots.slots[slot.ID].ExpiresIn = &expired

	released, err := f.orch.SweepExpiredHolds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	reclaimed, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.Empty(t, reclaimed.MeetingBookingID)
	assert.Empty(t, reclaimed.BookingPaymentID)
	assert.Nil(t, reclaimed.ExpiresIn)
	assert.False(t, reclaimed.Booked)

	failedPayment, _ := f.ledger.Get(context.Background(), payment.ID)
	assert.Equal(t, models.BookingPaymentFailed, failedPayment.Status)
	failedMeeting, _ := f.meetings.GetByID(context.Background(), meeting.ID)
	assert.Equal(t, models.MeetingBookingFailed, failedMeeting.Status)
}

func TestSweepFinalizesSettledPaymentInsteadOfReleasing(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	meeting, _ := f.orch.Proceed(context.Background(), slot.ID, "", "")
	pending, err := f.orch.CaptureDetails(context.Background(), meeting.ID, testDetails("card"))
	require.NoError(t, err)

	// Settlement recorded but the process died before booking the slot.
	settled := f.payments.payments[pending.ID]
	settled.Status = models.BookingPaymentPaid
	f.payments.payments[pending.ID] = settled
	expired := time.Now().Add(-time.Minute)
	f.slots.slots[slot.ID].ExpiresIn = &expired

	released, err := f.orch.SweepExpiredHolds(context.Background())
	require.NoError(t, err)
	assert.Zero(t, released)

	booked, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.True(t, booked.Booked)
	assert.Equal(t, pending.ID, booked.BookingPaymentID)

	confirmed, _ := f.meetings.GetByID(context.Background(), meeting.ID)
	assert.Equal(t, models.MeetingBookingProcessing, confirmed.Status)
	require.Len(t, f.tasks.payloads, 1)
}

func TestSweepIgnoresActiveHolds(t *testing.T) {
	f := newTestFlow()
	slot := f.openSlot(t, models.MeetingTypeOnline, "")
	_, err := f.orch.Proceed(context.Background(), slot.ID, "", "")
	require.NoError(t, err)

	released, err := f.orch.SweepExpiredHolds(context.Background())
	require.NoError(t, err)
	assert.Zero(t, released)

	held, _ := f.slots.GetByID(context.Background(), slot.ID)
	assert.NotEmpty(t, held.MeetingBookingID)
}
