package models

import "time"

// PaymentOption is one way a counsellor accepts payment. Options carrying
// a gateway account go through external checkout; the rest (cash, bank
// transfer) confirm directly.
type PaymentOption struct {
	Kind           string `bson:"kind" json:"kind"` // e.g. "card", "cash", "bank"
	GatewayAccount string `bson:"gatewayAccount,omitempty" json:"gatewayAccount,omitempty"`
}

// Counsellor is a bookable practitioner.
type Counsellor struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Email          string          `bson:"email" json:"email"`
	Timezone       string          `bson:"timezone,omitempty" json:"timezone,omitempty"`
	PaymentOptions []PaymentOption `bson:"paymentOptions,omitempty" json:"paymentOptions,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}

// GatewayOption returns the payment option matching kind, if the
// counsellor has one with gateway credentials attached.
func (c *Counsellor) GatewayOption(kind string) *PaymentOption {
	for i := range c.PaymentOptions {
		if c.PaymentOptions[i].Kind == kind && c.PaymentOptions[i].GatewayAccount != "" {
			return &c.PaymentOptions[i]
		}
	}
	return nil
}
