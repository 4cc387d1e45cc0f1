package reservation

import (
	"context"
	"fmt"
	"time"

	"counselhub/models"

	"go.uber.org/zap"
)

// CreateReservation expands the request, validates every occurrence
// against the stored calendar, and only then inserts the whole batch. The
// first conflicting occurrence aborts the request; no partial recurrence
// is ever persisted.
//
// Conflict check and insert are separate store calls, so a narrow race
// window exists between them. The store's own write serialization is the
// only guard; see DESIGN.md.
func (s *DefaultReservationService) CreateReservation(ctx context.Context, req models.ReservationRequest) ([]models.ReservationInterval, error) {
	occurrences, err := Expand(req)
	if err != nil {
		return nil, err
	}

	counsellorID, locationID := "", ""
	switch req.ResourceType {
	case models.ResourceCounsellor:
		counsellorID = req.ResourceID
	case models.ResourceLocation:
		locationID = req.ResourceID
	default:
		return nil, fmt.Errorf("unknown resource type %q", req.ResourceType)
	}

	// Pre-validate every occurrence before performing any insert.
	for _, occ := range occurrences {
		conflicting, err := s.Checker.Conflicts(ctx, occ.From, occ.To, counsellorID, locationID)
		if err != nil {
			return nil, err
		}
		if conflicting {
			s.Logger.Info("reservation rejected on conflict",
				zap.String("resourceId", req.ResourceID),
				zap.Time("from", occ.From),
				zap.Time("to", occ.To))
			return nil, ErrConflict
		}
	}

	now := time.Now()
	intervals := make([]models.ReservationInterval, len(occurrences))
	for i, occ := range occurrences {
		intervals[i] = models.ReservationInterval{
			ResourceType: req.ResourceType,
			ResourceID:   req.ResourceID,
			From:         occ.From,
			To:           occ.To,
			OwnedBy:      req.OwnedBy,
			CreatedBy:    req.CreatedBy,
			CreatedAt:    now,
		}
	}

	ids, err := s.Store.CreateMany(ctx, intervals)
	if err != nil {
		return nil, fmt.Errorf("failed to persist reservation intervals: %w", err)
	}
	for i := range intervals {
		intervals[i].ID = ids[i]
	}

	s.Logger.Info("reservation created",
		zap.String("kind", string(req.Kind)),
		zap.String("resourceId", req.ResourceID),
		zap.Int("occurrences", len(intervals)))
	return intervals, nil
}

func (s *DefaultReservationService) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationInterval, int64, error) {
	return s.Store.List(ctx, filter)
}

func (s *DefaultReservationService) DeleteReservation(ctx context.Context, id string) error {
	if err := s.Store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}
	return nil
}
