package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/services/calendar"
)

// ChannelPush delivers via FCM; recipients are per-user topic names that
// client apps subscribe to on login.
const ChannelPush = "push"

// FCMDispatcher is the production Dispatcher, pushing through Firebase
// Cloud Messaging and attaching calendar events via the calendar service.
type FCMDispatcher struct {
	Client   *messaging.Client
	Calendar calendar.Service
	Logger   *zap.Logger
}

func NewFCMDispatcher(client *messaging.Client, cal calendar.Service, logger *zap.Logger) *FCMDispatcher {
	return &FCMDispatcher{Client: client, Calendar: cal, Logger: logger}
}

func (d *FCMDispatcher) Send(ctx context.Context, templateID, channel string, recipients []string, subject string, data map[string]string) error {
	if channel != ChannelPush {
		return fmt.Errorf("unsupported notification channel %q", channel)
	}
	if data == nil {
		data = map[string]string{}
	}
	data["template"] = templateID

	for _, topic := range recipients {
		msg := &messaging.Message{
			Topic: topic,
			Notification: &messaging.Notification{
				Title: subject,
				Body:  data["body"],
			},
			Data: data,
		}
		if _, err := d.Client.Send(ctx, msg); err != nil {
			return fmt.Errorf("failed to send FCM message: %w", err)
		}
	}
	return nil
}

func (d *FCMDispatcher) SendWithCalendarEvent(ctx context.Context, templateID, channel string, recipients []string, subject string, data map[string]string, event models.EventSpec) (string, error) {
	eventID, err := d.Calendar.CreateEvent(ctx, event)
	if err != nil {
		// The notification still goes out; the calendar attachment is
		// best-effort.
		d.Logger.Warn("failed to create calendar event for notification",
			zap.String("template", templateID), zap.Error(err))
	} else {
		if data == nil {
			data = map[string]string{}
		}
		data["calendarEventId"] = eventID
	}
	return eventID, d.Send(ctx, templateID, channel, recipients, subject, data)
}
