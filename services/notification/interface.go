package notification

import (
	"context"

	"counselhub/models"
)

// Dispatcher sends templated notifications to clients and counsellors.
// Delivery failures never propagate to booking flows; callers log and
// move on.
type Dispatcher interface {
	Send(ctx context.Context, templateID, channel string, recipients []string, subject string, data map[string]string) error
	// SendWithCalendarEvent creates a calendar event for the booking before
	// dispatching, returning the event id so callers can persist it. Event
	// creation failures do not block the notification itself.
	SendWithCalendarEvent(ctx context.Context, templateID, channel string, recipients []string, subject string, data map[string]string, event models.EventSpec) (string, error)
}
