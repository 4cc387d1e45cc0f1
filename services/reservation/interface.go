package reservation

import (
	"context"

	reservationRepo "counselhub/database/repository/reservation"
	"counselhub/models"

	"go.uber.org/zap"
)

// ReservationService expands recurrence requests onto resource calendars
// and manages the resulting intervals.
type ReservationService interface {
	CreateReservation(ctx context.Context, req models.ReservationRequest) ([]models.ReservationInterval, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationInterval, int64, error)
	DeleteReservation(ctx context.Context, id string) error
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Store   reservationRepo.ReservationRepository
	Checker *ConflictChecker
	Logger  *zap.Logger
}
