package models

import "time"

// BookingPaymentStatus is the payment lifecycle state.
type BookingPaymentStatus string

const (
	BookingPaymentPending    BookingPaymentStatus = "PENDING"
	BookingPaymentProcessing BookingPaymentStatus = "PROCESSING"
	BookingPaymentPaid       BookingPaymentStatus = "PAID"
	BookingPaymentCancelled  BookingPaymentStatus = "CANCELLED"
	BookingPaymentFailed     BookingPaymentStatus = "FAILED"
)

// Canonical gateway order statuses, normalized from gateway-specific
// values by the gateway adapter.
const (
	GatewayOrderCreated   = "CREATED"
	GatewayOrderCompleted = "COMPLETED"
	GatewayOrderCancelled = "CANCELLED"
)

// GatewayOrder mirrors the external payment order attached to a payment.
type GatewayOrder struct {
	OrderID    string    `bson:"orderId" json:"orderId"`
	Status     string    `bson:"status" json:"status"`
	PayerID    string    `bson:"payerId,omitempty" json:"payerId,omitempty"`
	PayerEmail string    `bson:"payerEmail,omitempty" json:"payerEmail,omitempty"`
	Amount     float64   `bson:"amount" json:"amount"`
	Currency   string    `bson:"currency" json:"currency"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Installment records a settled portion of the payment.
type Installment struct {
	ID             string    `bson:"id" json:"id"`
	Amount         float64   `bson:"amount" json:"amount"`
	Currency       string    `bson:"currency" json:"currency"`
	GatewayOrderID string    `bson:"gatewayOrderId,omitempty" json:"gatewayOrderId,omitempty"`
	PaidAt         time.Time `bson:"paidAt" json:"paidAt"`
}

// BookingPayment is the financial record tracking amount owed and paid for
// one meeting booking. On settlement the outstanding amount is drained into
// Paid: status PAID always carries Amount == 0.
type BookingPayment struct {
	ID            string               `bson:"id" json:"id"`
	ClientID      string               `bson:"clientId" json:"clientId"`
	CounsellorID  string               `bson:"counsellorId" json:"counsellorId"`
	MeetingID     string               `bson:"meetingId" json:"meetingId"`
	RoomID        string               `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Currency      string               `bson:"currency" json:"currency"`
	Amount        float64              `bson:"amount" json:"amount"`
	Paid          float64              `bson:"paid" json:"paid"`
	Status        BookingPaymentStatus `bson:"status" json:"status"`
	PaymentOption string               `bson:"paymentOption,omitempty" json:"paymentOption,omitempty"`
	GatewayOrder  *GatewayOrder        `bson:"gatewayOrder,omitempty" json:"gatewayOrder,omitempty"`
	Installments  []Installment        `bson:"installments,omitempty" json:"installments,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}
