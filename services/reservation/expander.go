package reservation

import (
	"math"
	"time"

	"counselhub/models"
)

// Interval is one expanded [From, To) occurrence.
type Interval struct {
	From time.Time
	To   time.Time
}

var weeklyKinds = map[models.RecurrenceKind]time.Weekday{
	models.RecurrenceMonday:    time.Monday,
	models.RecurrenceTuesday:   time.Tuesday,
	models.RecurrenceWednesday: time.Wednesday,
	models.RecurrenceThursday:  time.Thursday,
	models.RecurrenceFriday:    time.Friday,
	models.RecurrenceSaturday:  time.Saturday,
	models.RecurrenceSunday:    time.Sunday,
}

// Expand turns one reservation request into the ordered sequence of
// concrete [from, to) intervals it represents. It performs bounds and
// weekday validation only; conflict checking happens before insertion.
func Expand(req models.ReservationRequest) ([]Interval, error) {
	if !req.From.Before(req.To) {
		return nil, ErrInvalidBounds
	}

	var intervals []Interval
	switch {
	case req.Kind == models.RecurrenceSingleDay:
		intervals = expandSingleDay(req.From, req.To)
	case req.Kind == models.RecurrenceEveryDay:
		intervals = expandDaily(req.From, req.To, nil)
	case req.Kind == models.RecurrenceDateRange:
		if req.From.Weekday() != req.RangeFrom || req.To.Weekday() != req.RangeTo {
			return nil, ErrWeekdayMismatch
		}
		inRange := weekdayWindow(req.RangeFrom, req.RangeTo)
		intervals = expandDaily(req.From, req.To, inRange)
	default:
		dow, ok := weeklyKinds[req.Kind]
		if !ok {
			return nil, ErrUnknownKind
		}
		if req.From.Weekday() != dow || req.To.Weekday() != dow {
			return nil, ErrWeekdayMismatch
		}
		intervals = expandWeekly(req.From, req.To)
	}

	// Recurring kinds pin each occurrence's end to its start date, so a
	// request whose end clock time does not come after its start clock
	// time would emit empty or inverted occurrences even though the raw
	// bounds pass the outer check.
	for _, iv := range intervals {
		if !iv.From.Before(iv.To) {
			return nil, ErrInvalidBounds
		}
	}
	return intervals, nil
}

// expandSingleDay emits exactly one interval, normalizing the end's
// calendar date to the start's date while preserving its time of day.
func expandSingleDay(from, to time.Time) []Interval {
	return []Interval{{From: from, To: onDate(from, to)}}
}

// expandWeekly emits one interval per 7-day step, inclusive of the first
// occurrence, for ceil(|to-from| / 7 days) steps.
func expandWeekly(from, to time.Time) []Interval {
	weeks := int(math.Ceil(float64(to.Sub(from)) / float64(7*24*time.Hour)))
	if weeks < 1 {
		weeks = 1
	}
	intervals := make([]Interval, 0, weeks)
	for i := 0; i < weeks; i++ {
		start := from.AddDate(0, 0, 7*i)
		intervals = append(intervals, Interval{From: start, To: onDate(start, to)})
	}
	return intervals
}

// expandDaily walks day-by-day from from's date through to's date
// inclusive, emitting an interval for each day accepted by the filter.
func expandDaily(from, to time.Time, accept func(time.Weekday) bool) []Interval {
	var intervals []Interval
	lastDay := dateOnly(to)
	for cur := from; !dateOnly(cur).After(lastDay); cur = cur.AddDate(0, 0, 1) {
		if accept != nil && !accept(cur.Weekday()) {
			continue
		}
		intervals = append(intervals, Interval{From: cur, To: onDate(cur, to)})
	}
	return intervals
}

// weekdayWindow builds the circular weekday predicate [from, to]; the
// window may wrap across the week boundary (e.g. FRI..MON).
func weekdayWindow(from, to time.Weekday) func(time.Weekday) bool {
	return func(d time.Weekday) bool {
		if from <= to {
			return d >= from && d <= to
		}
		return d >= from || d <= to
	}
}

// dateOnly strips t to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// onDate places t's time of day onto base's calendar date.
func onDate(base, t time.Time) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), base.Location())
}
