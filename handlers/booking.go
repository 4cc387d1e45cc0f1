package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"counselhub/models"
	"counselhub/services/booking"
)

// BookingHandler drives the client-facing booking flow and the payment
// state machine behind it.
type BookingHandler struct {
	Orchestrator booking.ScheduleOrchestrator
	Ledger       booking.BookingPaymentLedger
}

type proceedInput struct {
	MeetingType string `json:"meetingType"`
	Timezone    string `json:"timezone"`
}

// ProceedHandler claims an open slot: the client gets a PENDING meeting
// booking and an advisory hold on the slot.
func (h *BookingHandler) ProceedHandler(c *gin.Context) {
	// Body is optional; an empty one inherits the slot's meeting type
	// and leaves the timezone unset.
	var input proceedInput
	_ = c.ShouldBindJSON(&input)

	meeting, err := h.Orchestrator.Proceed(c.Request.Context(), c.Param("id"), input.MeetingType, input.Timezone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

// CaptureDetailsHandler records the client's appointment details and opens
// the booking payment.
func (h *BookingHandler) CaptureDetailsHandler(c *gin.Context) {
	var details models.AppointmentDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	payment, err := h.Orchestrator.CaptureDetails(c.Request.Context(), c.Param("bookingID"), details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// ConfirmHandler routes the booking: external checkout for gateway payment
// options, immediate confirmation otherwise.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	outcome, err := h.Orchestrator.ConfirmOrInitiateCheckout(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// CapturePaymentHandler settles the gateway order and finalizes the
// booking. Safe to call repeatedly; a settled payment is left untouched.
func (h *BookingHandler) CapturePaymentHandler(c *gin.Context) {
	payment, err := h.Ledger.Capture(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CancelPaymentHandler terminates the payment in CANCELLED; the held slot
// is reclaimed by the hold sweep.
func (h *BookingHandler) CancelPaymentHandler(c *gin.Context) {
	payment, err := h.Ledger.Cancel(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// FailPaymentHandler terminates the payment and its meeting booking in
// FAILED.
func (h *BookingHandler) FailPaymentHandler(c *gin.Context) {
	payment, err := h.Ledger.Fail(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPaymentHandler fetches a payment by id.
func (h *BookingHandler) GetPaymentHandler(c *gin.Context) {
	payment, err := h.Ledger.Get(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
