package models

import "time"

// Client is the person booking a meeting, keyed by email. Repeated
// bookings merge onto the same record (last writer wins on shared fields).
type Client struct {
	ID          string    `bson:"id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	FirstName   string    `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Country     string    `bson:"country,omitempty" json:"country,omitempty"`
	Nationality string    `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Timezone    string    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Existing    bool      `bson:"existing" json:"existing"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentDetails is the client-supplied payload captured mid-flow.
type AppointmentDetails struct {
	Email         string `json:"email" binding:"required,email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Country       string `json:"country" binding:"required"`
	Nationality   string `json:"nationality" binding:"required"`
	ServiceID     string `json:"serviceId"`
	PaymentOption string `json:"paymentOption"`
}
