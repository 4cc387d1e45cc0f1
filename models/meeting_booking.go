package models

import "time"

// MeetingBookingStatus tracks a client's claim on a slot through the
// payment lifecycle. Confirmation is implicit via the payment reaching PAID.
type MeetingBookingStatus string

const (
	MeetingBookingPending    MeetingBookingStatus = "PENDING"
	MeetingBookingProcessing MeetingBookingStatus = "PROCESSING"
	MeetingBookingFailed     MeetingBookingStatus = "FAILED"
)

// MeetingBooking is the record representing a client's claim on a slot,
// pending payment. Exactly one exists per held ScheduleSlot.
type MeetingBooking struct {
	ID               string               `bson:"id" json:"id"`
	CounsellorID     string               `bson:"counsellorId" json:"counsellorId"`
	MeetingID        string               `bson:"meetingId" json:"meetingId"`
	RoomID           string               `bson:"roomId,omitempty" json:"roomId,omitempty"`
	ClientID         string               `bson:"clientId,omitempty" json:"clientId,omitempty"`
	TimeFrom         time.Time            `bson:"timeFrom" json:"timeFrom"`
	TimeTo           time.Time            `bson:"timeTo" json:"timeTo"`
	Status           MeetingBookingStatus `bson:"status" json:"status"`
	BookingType      string               `bson:"bookingType" json:"bookingType"`
	Timezone         string               `bson:"timezone" json:"timezone"`
	ServiceID        string               `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	BookingPaymentID string               `bson:"bookingPaymentId,omitempty" json:"bookingPaymentId,omitempty"`
	CalendarEventID  string               `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}
