package models

import "time"

// MeetingType distinguishes how a meeting is delivered.
const (
	MeetingTypeOnPremise = "ON_PREMISE"
	MeetingTypeOnline    = "ONLINE"
)

// ScheduleSlot represents one open, unbooked time offer published by an
// administrative process. A slot is "held" once a booking flow attaches a
// MeetingBooking and an expiry window; the hold is advisory, enforced by
// the orchestrator's own expiry check rather than a lock.
type ScheduleSlot struct {
	ID               string     `bson:"id" json:"id"`
	CounsellorID     string     `bson:"counsellorId" json:"counsellorId"`
	RoomID           string     `bson:"roomId,omitempty" json:"roomId,omitempty"`
	MeetingID        string     `bson:"meetingId" json:"meetingId"`
	StartTime        time.Time  `bson:"startTime" json:"startTime"`
	EndTime          time.Time  `bson:"endTime" json:"endTime"`
	MeetingType      string     `bson:"meetingType" json:"meetingType"`
	Booked           bool       `bson:"booked" json:"booked"`
	ExpiresIn        *time.Time `bson:"expiresIn,omitempty" json:"expiresIn,omitempty"`
	ClientID         string     `bson:"clientId,omitempty" json:"clientId,omitempty"`
	MeetingBookingID string     `bson:"meetingBookingId,omitempty" json:"meetingBookingId,omitempty"`
	BookingPaymentID string     `bson:"bookingPaymentId,omitempty" json:"bookingPaymentId,omitempty"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
}

// SlotFilter narrows slot listings.
type SlotFilter struct {
	CounsellorID string
	RoomID       string
	Date         string // "2006-01-02", matched against StartTime's day
	MeetingType  string
	BookedOnly   *bool
	Page         int
	PageSize     int
}

// HoldActive reports whether the slot currently carries an unexpired hold.
func (s *ScheduleSlot) HoldActive(now time.Time) bool {
	return s.MeetingBookingID != "" && s.ExpiresIn != nil && now.Before(*s.ExpiresIn)
}
