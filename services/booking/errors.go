package booking

import "fmt"

// Error is a typed booking-flow error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSlotNotFound means the referenced schedule slot does not exist.
	ErrSlotNotFound = &Error{Code: "slotNotFound", Message: "schedule slot not found"}
	// ErrSlotAlreadyBooked rejects new flows on a slot already booked.
	ErrSlotAlreadyBooked = &Error{Code: "slotAlreadyBooked", Message: "schedule slot is already booked"}
	// ErrSlotHeld rejects new flows while another client's hold is active.
	ErrSlotHeld = &Error{Code: "slotHeld", Message: "schedule slot is held by another booking in progress"}
	// ErrBookingNotFound means the referenced meeting booking does not exist.
	ErrBookingNotFound = &Error{Code: "bookingNotFound", Message: "meeting booking not found"}
	// ErrPaymentNotFound means the referenced booking payment does not exist.
	ErrPaymentNotFound = &Error{Code: "paymentNotFound", Message: "booking payment not found"}
	// ErrFlowIncomplete rejects operations that need appointment details
	// captured first.
	ErrFlowIncomplete = &Error{Code: "flowIncomplete", Message: "appointment details have not been captured for this booking"}
	// ErrInvalidMeetingType rejects a delivery type the slot does not
	// offer, or one that is not a known type at all.
	ErrInvalidMeetingType = &Error{Code: "invalidMeetingType", Message: "requested meeting type is not available for this slot"}
	// ErrInvalidState rejects a payment transition not allowed from the
	// current status.
	ErrInvalidState = &Error{Code: "invalidStateTransition", Message: "operation not allowed in the payment's current status"}
)
