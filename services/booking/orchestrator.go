package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/services/notification"
	"counselhub/utils"
)

func (o *DefaultScheduleOrchestrator) Proceed(ctx context.Context, slotID, bookingType, timezone string) (*models.MeetingBooking, error) {
	slot, err := o.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot.Booked {
		return nil, ErrSlotAlreadyBooked
	}
	now := time.Now()
	if slot.HoldActive(now) {
		return nil, ErrSlotHeld
	}

	// The client may attend an on-premise slot online, but cannot demand
	// premises a slot does not offer.
	switch bookingType {
	case "":
		bookingType = slot.MeetingType
	case models.MeetingTypeOnline:
	case models.MeetingTypeOnPremise:
		if slot.MeetingType != models.MeetingTypeOnPremise {
			return nil, ErrInvalidMeetingType
		}
	default:
		return nil, ErrInvalidMeetingType
	}

	meeting := models.MeetingBooking{
		CounsellorID: slot.CounsellorID,
		MeetingID:    slot.MeetingID,
		TimeFrom:     slot.StartTime,
		TimeTo:       slot.EndTime,
		Status:       models.MeetingBookingPending,
		BookingType:  bookingType,
		Timezone:     timezone,
	}
	// Rooms only apply to on-premise attendance of slots that offer one.
	if bookingType == models.MeetingTypeOnPremise && slot.RoomID != "" {
		meeting.RoomID = slot.RoomID
	}
	created, err := o.Meetings.Create(ctx, meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting booking: %w", err)
	}

	window := o.holdWindow()
	expiry := now.Add(window)
	if err := o.Slots.AttachHold(ctx, slot.ID, created.ID, expiry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// The slot was booked between our read and the hold attach.
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("failed to hold slot: %w", err)
	}
	if o.Hold != nil {
		if err := o.Hold.Set(ctx, utils.SlotHoldPrefix+slot.ID, created.ID, window).Err(); err != nil {
			o.Logger.Warn("failed to mirror slot hold in cache",
				zap.String("slotId", slot.ID), zap.Error(err))
		}
	}

	o.Logger.Info("slot held",
		zap.String("slotId", slot.ID),
		zap.String("meetingBookingId", created.ID),
		zap.Time("expiresIn", expiry))
	return created, nil
}

func (o *DefaultScheduleOrchestrator) CaptureDetails(ctx context.Context, meetingBookingID string, details models.AppointmentDetails) (*models.BookingPayment, error) {
	meeting, err := o.getMeeting(ctx, meetingBookingID)
	if err != nil {
		return nil, err
	}
	if meeting.BookingPaymentID != "" {
		// Details were already captured; hand back the open payment.
		return o.Ledger.Get(ctx, meeting.BookingPaymentID)
	}
	if meeting.Status != models.MeetingBookingPending {
		return nil, ErrInvalidState
	}

	slot, err := o.Slots.GetByMeetingBookingID(ctx, meeting.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to fetch held slot: %w", err)
	}

	client, err := o.Clients.UpsertByEmail(ctx, models.Client{
		Email:       details.Email,
		FirstName:   details.FirstName,
		LastName:    details.LastName,
		Phone:       details.Phone,
		Country:     details.Country,
		Nationality: details.Nationality,
		Timezone:    meeting.Timezone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert client: %w", err)
	}

	hours := int(math.Round(meeting.TimeTo.Sub(meeting.TimeFrom).Hours()))
	if hours < 1 {
		hours = 1
	}
	resolved, err := o.Rates.Resolve(ctx, meeting.CounsellorID, details.ServiceID, hours, details.Country, details.Nationality)
	if err != nil {
		return nil, err
	}

	payment, err := o.Ledger.CreateForSlot(ctx, slot, meeting, resolved, client.ID, details.PaymentOption)
	if err != nil {
		return nil, err
	}

	if err := o.Slots.AttachClientAndPayment(ctx, slot.ID, client.ID, payment.ID); err != nil {
		return nil, fmt.Errorf("failed to link slot to payment: %w", err)
	}
	if err := o.Meetings.SetClientID(ctx, meeting.ID, client.ID); err != nil {
		return nil, fmt.Errorf("failed to link client to booking: %w", err)
	}
	if err := o.Meetings.SetBookingPaymentID(ctx, meeting.ID, payment.ID); err != nil {
		return nil, fmt.Errorf("failed to link payment to booking: %w", err)
	}
	if details.ServiceID != "" {
		if err := o.Meetings.SetServiceID(ctx, meeting.ID, details.ServiceID); err != nil {
			return nil, fmt.Errorf("failed to record service on booking: %w", err)
		}
	}

	o.Logger.Info("appointment details captured",
		zap.String("meetingBookingId", meeting.ID),
		zap.String("clientId", client.ID),
		zap.String("paymentId", payment.ID))
	return payment, nil
}

func (o *DefaultScheduleOrchestrator) ConfirmOrInitiateCheckout(ctx context.Context, meetingBookingID string) (*CheckoutOutcome, error) {
	meeting, err := o.getMeeting(ctx, meetingBookingID)
	if err != nil {
		return nil, err
	}
	if meeting.BookingPaymentID == "" {
		return nil, ErrFlowIncomplete
	}

	paymentRec, err := o.Ledger.Get(ctx, meeting.BookingPaymentID)
	if err != nil {
		return nil, err
	}
	if paymentRec.Status == models.BookingPaymentPaid {
		return &CheckoutOutcome{CheckoutRequired: false, Payment: paymentRec}, nil
	}

	counsellor, err := o.Counsellors.GetByID(ctx, meeting.CounsellorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch counsellor: %w", err)
	}

	if opt := counsellor.GatewayOption(paymentRec.PaymentOption); opt != nil {
		p, err := o.Ledger.BeginCheckout(ctx, paymentRec.ID, opt.GatewayAccount)
		if err != nil {
			return nil, err
		}
		return &CheckoutOutcome{CheckoutRequired: true, Payment: p}, nil
	}

	// No gateway credentials for this option. The counsellor settles
	// offline, so the booking confirms immediately.
	slot, err := o.Slots.GetByMeetingBookingID(ctx, meeting.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to fetch held slot: %w", err)
	}
	if err := o.FinalizeBooking(ctx, slot.ID); err != nil {
		return nil, err
	}
	paymentRec, err = o.Ledger.Get(ctx, paymentRec.ID)
	if err != nil {
		return nil, err
	}
	return &CheckoutOutcome{CheckoutRequired: false, Payment: paymentRec}, nil
}

// FinalizeBooking marks the held slot booked and fires the confirmation
// notification. Calling it on an already booked slot is a no-op, so
// settlement retries and direct confirms converge on one outcome.
func (o *DefaultScheduleOrchestrator) FinalizeBooking(ctx context.Context, slotID string) error {
	slot, err := o.getSlot(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.Booked {
		return nil
	}
	if slot.MeetingBookingID == "" || slot.BookingPaymentID == "" {
		return ErrFlowIncomplete
	}

	if err := o.Meetings.UpdateStatus(ctx, slot.MeetingBookingID, models.MeetingBookingProcessing); err != nil {
		return fmt.Errorf("failed to advance meeting booking: %w", err)
	}

	paymentRec, err := o.Ledger.Get(ctx, slot.BookingPaymentID)
	if err != nil {
		return err
	}
	if paymentRec.Status != models.BookingPaymentPaid {
		if _, err := o.Ledger.MarkProcessing(ctx, paymentRec.ID); err != nil {
			return err
		}
	}

	if slot.ClientID != "" {
		if err := o.Clients.MarkExisting(ctx, slot.ClientID); err != nil {
			o.Logger.Warn("failed to mark client existing",
				zap.String("clientId", slot.ClientID), zap.Error(err))
		}
	}

	if err := o.Slots.MarkBooked(ctx, slot.ID); err != nil {
		return fmt.Errorf("failed to mark slot booked: %w", err)
	}
	if o.Hold != nil {
		if err := o.Hold.Del(ctx, utils.SlotHoldPrefix+slot.ID).Err(); err != nil {
			o.Logger.Warn("failed to drop cached slot hold",
				zap.String("slotId", slot.ID), zap.Error(err))
		}
	}

	o.Logger.Info("booking finalized",
		zap.String("slotId", slot.ID),
		zap.String("meetingBookingId", slot.MeetingBookingID))

	// Fire and forget. A lost notification never unwinds a booking.
	o.enqueueConfirmation(ctx, slot)
	return nil
}

func (o *DefaultScheduleOrchestrator) SweepExpiredHolds(ctx context.Context) (int, error) {
	expired, err := o.Slots.ListExpiredHolds(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired holds: %w", err)
	}

	released := 0
	for _, slot := range expired {
		if slot.BookingPaymentID != "" {
			if _, err := o.Ledger.Fail(ctx, slot.BookingPaymentID); err != nil {
				if errors.Is(err, ErrInvalidState) {
					// The payment settled while the hold lapsed.
					// Releasing would sever the payment link, so finish
					// the booking instead.
					if ferr := o.FinalizeBooking(ctx, slot.ID); ferr != nil {
						o.Logger.Error("failed to finalize settled booking on lapsed hold",
							zap.String("slotId", slot.ID),
							zap.String("paymentId", slot.BookingPaymentID),
							zap.Error(ferr))
					}
					continue
				}
				o.Logger.Error("failed to fail payment on lapsed hold",
					zap.String("slotId", slot.ID),
					zap.String("paymentId", slot.BookingPaymentID),
					zap.Error(err))
			}
		} else if slot.MeetingBookingID != "" {
			if err := o.Meetings.UpdateStatus(ctx, slot.MeetingBookingID, models.MeetingBookingFailed); err != nil {
				o.Logger.Error("failed to fail booking on lapsed hold",
					zap.String("meetingBookingId", slot.MeetingBookingID),
					zap.Error(err))
			}
		}
		if err := o.Slots.ReleaseHold(ctx, slot.ID); err != nil {
			o.Logger.Error("failed to release lapsed hold",
				zap.String("slotId", slot.ID), zap.Error(err))
			continue
		}
		if o.Hold != nil {
			o.Hold.Del(ctx, utils.SlotHoldPrefix+slot.ID)
		}
		released++
	}
	if released > 0 {
		o.Logger.Info("released lapsed slot holds", zap.Int("count", released))
	}
	return released, nil
}

func (o *DefaultScheduleOrchestrator) enqueueConfirmation(ctx context.Context, slot *models.ScheduleSlot) {
	if o.Tasks == nil {
		return
	}
	meeting, err := o.getMeeting(ctx, slot.MeetingBookingID)
	if err != nil {
		o.Logger.Warn("skipping confirmation notification",
			zap.String("meetingBookingId", slot.MeetingBookingID), zap.Error(err))
		return
	}

	recipients := make([]string, 0, 2)
	attendees := make([]string, 0, 2)
	if meeting.ClientID != "" {
		recipients = append(recipients, meeting.ClientID)
		if client, err := o.Clients.GetByID(ctx, meeting.ClientID); err == nil {
			attendees = append(attendees, client.Email)
		}
	}
	recipients = append(recipients, meeting.CounsellorID)
	if counsellor, err := o.Counsellors.GetByID(ctx, meeting.CounsellorID); err == nil {
		attendees = append(attendees, counsellor.Email)
	}

	payload := models.NotificationPayload{
		TemplateID: "booking_confirmed",
		Channel:    notification.ChannelPush,
		Recipients: recipients,
		Subject:    "Your counselling session is confirmed",
		Data: map[string]string{
			"meetingBookingId": meeting.ID,
			"startTime":        meeting.TimeFrom.Format(time.RFC3339),
		},
		Event: &models.EventSpec{
			Title:     "Counselling session",
			Start:     meeting.TimeFrom,
			End:       meeting.TimeTo,
			Timezone:  meeting.Timezone,
			Attendees: attendees,
		},
		MeetingBookingID: meeting.ID,
	}
	if err := o.Tasks.EnqueueBookingConfirmed(ctx, payload); err != nil {
		o.Logger.Warn("failed to enqueue confirmation notification",
			zap.String("meetingBookingId", meeting.ID), zap.Error(err))
	}
}

func (o *DefaultScheduleOrchestrator) holdWindow() time.Duration {
	if o.HoldWindow > 0 {
		return o.HoldWindow
	}
	return utils.DefaultSlotHold
}

func (o *DefaultScheduleOrchestrator) getSlot(ctx context.Context, slotID string) (*models.ScheduleSlot, error) {
	slot, err := o.Slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to fetch slot: %w", err)
	}
	return slot, nil
}

func (o *DefaultScheduleOrchestrator) getMeeting(ctx context.Context, id string) (*models.MeetingBooking, error) {
	meeting, err := o.Meetings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch meeting booking: %w", err)
	}
	return meeting, nil
}
