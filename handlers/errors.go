package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	rateRepo "counselhub/database/repository/rate"
	"counselhub/services/booking"
	"counselhub/services/payment"
	"counselhub/services/rate"
	"counselhub/services/reservation"
)

// respondError maps domain errors onto HTTP statuses: validation 400,
// conflicts and disallowed transitions 409, missing records 404,
// unresolvable rates 422, gateway failures 502.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrInvalidBounds),
		errors.Is(err, reservation.ErrWeekdayMismatch),
		errors.Is(err, reservation.ErrUnknownKind),
		errors.Is(err, booking.ErrInvalidMeetingType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, reservation.ErrConflict),
		errors.Is(err, booking.ErrSlotAlreadyBooked),
		errors.Is(err, booking.ErrSlotHeld),
		errors.Is(err, booking.ErrInvalidState),
		errors.Is(err, booking.ErrFlowIncomplete),
		errors.Is(err, rateRepo.ErrDuplicateRate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, booking.ErrSlotNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrPaymentNotFound),
		errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, rate.ErrNoRateDefined):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	default:
		var ge *payment.GatewayError
		if errors.As(err, &ge) {
			c.JSON(http.StatusBadGateway, gin.H{"error": ge.Message, "transient": ge.Transient})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
