package models

import "time"

// EventSpec describes a calendar event attached to a notification.
type EventSpec struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Timezone    string    `json:"timezone,omitempty"`
	Attendees   []string  `json:"attendees,omitempty"`
}

// NotificationPayload is the task payload consumed by the async
// notification worker after a booking is confirmed.
type NotificationPayload struct {
	TemplateID string            `json:"templateId"`
	Channel    string            `json:"channel"` // "push" or "email"
	Recipients []string          `json:"recipients"`
	Subject    string            `json:"subject,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
	Event      *EventSpec        `json:"event,omitempty"`

	// Booking context, used to persist the calendar event id back
	// onto the meeting booking.
	MeetingBookingID string `json:"meetingBookingId,omitempty"`
}
