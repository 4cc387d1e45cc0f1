package routes

import (
	"github.com/gin-gonic/gin"

	"counselhub/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking flow. The
// entry point lives under /api/slots (see RegisterSlotRoutes); everything
// after the hold is keyed by booking or payment id.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/api/bookings")
	{
		bookings.PUT("/:bookingID/details", hb.Bookings.CaptureDetailsHandler) // Phase 2: capture details
		bookings.POST("/:bookingID/confirm", hb.Bookings.ConfirmHandler)       // Phase 3: confirm or checkout
		bookings.POST("/:bookingID/attachments/:bucket", hb.Storage.UploadAttachmentHandler)
	}

	payments := r.Group("/api/payments")
	{
		payments.POST("/:paymentID/capture", hb.Bookings.CapturePaymentHandler)
		payments.POST("/:paymentID/cancel", hb.Bookings.CancelPaymentHandler)
		payments.POST("/:paymentID/fail", hb.Bookings.FailPaymentHandler)
		payments.GET("/:paymentID", hb.Bookings.GetPaymentHandler)
	}

	r.DELETE("/api/attachments/:publicID", hb.Storage.DeleteAttachmentHandler)
}
