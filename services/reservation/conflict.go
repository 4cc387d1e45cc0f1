package reservation

import (
	"context"
	"fmt"
	"time"

	reservationRepo "counselhub/database/repository/reservation"
)

// Overlaps is the half-open interval overlap test. A shared boundary
// (candidate starting exactly where an existing interval ends) is not a
// conflict. The single inequality pair subsumes full containment in either
// direction.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && aTo.After(bFrom)
}

// ConflictChecker decides whether a candidate interval collides with any
// stored interval on either resource calendar.
type ConflictChecker struct {
	Store reservationRepo.ReservationRepository
}

// Conflicts reports whether [from, to) overlaps an existing reservation
// for the counsellor or the location. Either resource matching rejects.
func (c *ConflictChecker) Conflicts(ctx context.Context, from, to time.Time, counsellorID, locationID string) (bool, error) {
	existing, err := c.Store.ListOverlapping(ctx, counsellorID, locationID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to check reservation conflicts: %w", err)
	}
	return len(existing) > 0, nil
}
