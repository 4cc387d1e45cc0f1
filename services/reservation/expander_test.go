package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counselhub/models"
)

func mkTime(day, hour int) time.Time {
	// March 2026: the 2nd is a Monday.
	return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestExpandSingleDayNormalizesEndDate(t *testing.T) {
	intervals, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceSingleDay,
		ResourceType: models.ResourceCounsellor,
		ResourceID:   "c1",
		From:         mkTime(2, 10),
		To:           mkTime(4, 12),
	})
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, mkTime(2, 10), intervals[0].From)
	assert.Equal(t, mkTime(2, 12), intervals[0].To)
}

func TestExpandWeeklyOneWeekApartEmitsTwo(t *testing.T) {
	intervals, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceMonday,
		ResourceType: models.ResourceCounsellor,
		ResourceID:   "c1",
		From:         mkTime(2, 10),
		To:           mkTime(9, 12),
	})
	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.Equal(t, mkTime(2, 10), intervals[0].From)
	assert.Equal(t, mkTime(2, 12), intervals[0].To)
	assert.Equal(t, mkTime(9, 10), intervals[1].From)
	assert.Equal(t, mkTime(9, 12), intervals[1].To)
}

func TestExpandWeeklyWeekdayMismatch(t *testing.T) {
	_, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceMonday,
		ResourceType: models.ResourceCounsellor,
		ResourceID:   "c1",
		From:         mkTime(2, 10),
		To:           mkTime(10, 12), // a Tuesday
	})
	assert.ErrorIs(t, err, ErrWeekdayMismatch)
}

func TestExpandRejectsInvertedClockTimes(t *testing.T) {
	// The raw bounds are ordered, but every occurrence pins its end to
	// its start date, so an end clock time before the start clock time
	// would invert each emitted interval.
	cases := []struct {
		name string
		req  models.ReservationRequest
	}{
		{
			name: "weekly",
			req: models.ReservationRequest{
				Kind:         models.RecurrenceMonday,
				ResourceType: models.ResourceCounsellor,
				ResourceID:   "c1",
				From:         mkTime(2, 14),
				To:           mkTime(9, 12),
			},
		},
		{
			name: "single day",
			req: models.ReservationRequest{
				Kind:         models.RecurrenceSingleDay,
				ResourceType: models.ResourceCounsellor,
				ResourceID:   "c1",
				From:         mkTime(2, 14),
				To:           mkTime(4, 12),
			},
		},
		{
			name: "every day zero length",
			req: models.ReservationRequest{
				Kind:         models.RecurrenceEveryDay,
				ResourceType: models.ResourceCounsellor,
				ResourceID:   "c1",
				From:         mkTime(2, 8),
				To:           mkTime(4, 8),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intervals, err := Expand(tc.req)
			assert.ErrorIs(t, err, ErrInvalidBounds)
			assert.Empty(t, intervals)
		})
	}
}

func TestExpandRejectsInvertedBounds(t *testing.T) {
	_, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceSingleDay,
		ResourceType: models.ResourceCounsellor,
		ResourceID:   "c1",
		From:         mkTime(2, 12),
		To:           mkTime(2, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestExpandRejectsUnknownKind(t *testing.T) {
	_, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceKind("FORTNIGHTLY"),
		ResourceType: models.ResourceCounsellor,
		ResourceID:   "c1",
		From:         mkTime(2, 10),
		To:           mkTime(2, 12),
	})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestExpandEveryDayWalksInclusive(t *testing.T) {
	intervals, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceEveryDay,
		ResourceType: models.ResourceLocation,
		ResourceID:   "room-1",
		From:         mkTime(2, 8),
		To:           mkTime(4, 10),
	})
	require.NoError(t, err)
	require.Len(t, intervals, 3)
	for i, iv := range intervals {
		assert.Equal(t, mkTime(2+i, 8), iv.From)
		assert.Equal(t, mkTime(2+i, 10), iv.To)
	}
}

func TestExpandDateRangeSkipsDaysOutsideWindow(t *testing.T) {
	// Wed Mar 4 through Fri Mar 13, weekdays Wed..Fri only.
	intervals, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceDateRange,
		ResourceType: models.ResourceLocation,
		ResourceID:   "room-1",
		From:         mkTime(4, 9),
		To:           mkTime(13, 17),
		RangeFrom:    time.Wednesday,
		RangeTo:      time.Friday,
	})
	require.NoError(t, err)
	require.Len(t, intervals, 6)
	wantDays := []int{4, 5, 6, 11, 12, 13}
	for i, iv := range intervals {
		assert.Equal(t, mkTime(wantDays[i], 9), iv.From)
		assert.Equal(t, mkTime(wantDays[i], 17), iv.To)
	}
}

func TestExpandDateRangeWrapsWeekBoundary(t *testing.T) {
	// Fri Mar 6 through Mon Mar 9, window FRI..MON wraps over the weekend.
	intervals, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceDateRange,
		ResourceType: models.ResourceLocation,
		ResourceID:   "room-1",
		From:         mkTime(6, 6),
		To:           mkTime(9, 20),
		RangeFrom:    time.Friday,
		RangeTo:      time.Monday,
	})
	require.NoError(t, err)
	require.Len(t, intervals, 4)
}

func TestExpandDateRangeWeekdayMismatch(t *testing.T) {
	_, err := Expand(models.ReservationRequest{
		Kind:         models.RecurrenceDateRange,
		ResourceType: models.ResourceLocation,
		ResourceID:   "room-1",
		From:         mkTime(4, 9),
		To:           mkTime(13, 17),
		RangeFrom:    time.Thursday,
		RangeTo:      time.Friday,
	})
	assert.ErrorIs(t, err, ErrWeekdayMismatch)
}

func TestExpandOccurrencesNeverOverlap(t *testing.T) {
	reqs := []models.ReservationRequest{
		{Kind: models.RecurrenceMonday, From: mkTime(2, 10), To: mkTime(30, 12)},
		{Kind: models.RecurrenceEveryDay, From: mkTime(2, 8), To: mkTime(20, 18)},
		{Kind: models.RecurrenceDateRange, From: mkTime(4, 9), To: mkTime(27, 17),
			RangeFrom: time.Wednesday, RangeTo: time.Friday},
	}
	for _, req := range reqs {
		req.ResourceType = models.ResourceCounsellor
		req.ResourceID = "c1"
		intervals, err := Expand(req)
		require.NoError(t, err)
		require.NotEmpty(t, intervals)
		for i := 1; i < len(intervals); i++ {
			assert.True(t, intervals[i-1].From.Before(intervals[i].From), "ordered")
			assert.False(t, Overlaps(
				intervals[i-1].From, intervals[i-1].To,
				intervals[i].From, intervals[i].To,
			), "occurrences %d and %d overlap", i-1, i)
		}
		for _, iv := range intervals {
			assert.False(t, iv.From.Before(req.From))
			assert.False(t, iv.To.After(req.To))
		}
	}
}
