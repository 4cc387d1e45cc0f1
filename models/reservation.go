package models

import "time"

// ResourceType identifies which calendar a reservation interval blocks.
type ResourceType string

const (
	ResourceCounsellor ResourceType = "COUNSELLOR"
	ResourceLocation   ResourceType = "LOCATION"
)

// RecurrenceKind is the pattern used to expand one reservation request
// into concrete intervals.
type RecurrenceKind string

const (
	RecurrenceSingleDay RecurrenceKind = "SINGLE_DAY"
	RecurrenceMonday    RecurrenceKind = "WEEKLY_MONDAY"
	RecurrenceTuesday   RecurrenceKind = "WEEKLY_TUESDAY"
	RecurrenceWednesday RecurrenceKind = "WEEKLY_WEDNESDAY"
	RecurrenceThursday  RecurrenceKind = "WEEKLY_THURSDAY"
	RecurrenceFriday    RecurrenceKind = "WEEKLY_FRIDAY"
	RecurrenceSaturday  RecurrenceKind = "WEEKLY_SATURDAY"
	RecurrenceSunday    RecurrenceKind = "WEEKLY_SUNDAY"
	RecurrenceDateRange RecurrenceKind = "DATE_RANGE"
	RecurrenceEveryDay  RecurrenceKind = "EVERY_DAY"
)

// ReservationInterval is one concrete [from, to) block on a resource's
// calendar. Intervals for the same resource never overlap; they are
// created in bulk by recurrence expansion and only ever deleted whole.
type ReservationInterval struct {
	ID           string       `bson:"id" json:"id"`
	ResourceType ResourceType `bson:"resourceType" json:"resourceType"`
	ResourceID   string       `bson:"resourceId" json:"resourceId"`
	From         time.Time    `bson:"from" json:"from"`
	To           time.Time    `bson:"to" json:"to"`
	OwnedBy      string       `bson:"ownedBy,omitempty" json:"ownedBy,omitempty"`
	CreatedBy    string       `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
}

// ReservationRequest describes one recurrence to expand onto a resource's
// calendar. RangeFrom/RangeTo are only read for DATE_RANGE kinds.
type ReservationRequest struct {
	Kind         RecurrenceKind `json:"kind" binding:"required"`
	ResourceType ResourceType   `json:"resourceType" binding:"required"`
	ResourceID   string         `json:"resourceId" binding:"required"`
	From         time.Time      `json:"from" binding:"required"`
	To           time.Time      `json:"to" binding:"required"`
	RangeFrom    time.Weekday   `json:"rangeFrom"`
	RangeTo      time.Weekday   `json:"rangeTo"`
	OwnedBy      string         `json:"ownedBy"`
	CreatedBy    string         `json:"createdBy"`
}

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	ResourceType ResourceType
	ResourceID   string
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int
}
