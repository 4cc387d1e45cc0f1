package calendar

import (
	"context"
	"fmt"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"counselhub/config"
	"counselhub/models"
)

// Service creates calendar events for confirmed bookings.
type Service interface {
	CreateEvent(ctx context.Context, spec models.EventSpec) (string, error)
}

// GoogleCalendarService implements Service on the organizer's Google
// calendar via a service account.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendarService builds the calendar client from the configured
// service-account credentials.
func NewGoogleCalendarService(ctx context.Context) (*GoogleCalendarService, error) {
	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(config.AppConfig.GoogleCredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar service: %w", err)
	}
	calendarID := config.AppConfig.CalendarOrganizer
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleCalendarService{svc: svc, calendarID: calendarID}, nil
}

func (s *GoogleCalendarService) CreateEvent(ctx context.Context, spec models.EventSpec) (string, error) {
	event := &gcal.Event{
		Summary:     spec.Title,
		Description: spec.Description,
		Start: &gcal.EventDateTime{
			DateTime: spec.Start.Format("2006-01-02T15:04:05-07:00"),
			TimeZone: spec.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: spec.End.Format("2006-01-02T15:04:05-07:00"),
			TimeZone: spec.Timezone,
		},
	}
	for _, attendee := range spec.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{Email: attendee})
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}
