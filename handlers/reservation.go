package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"counselhub/models"
	"counselhub/services/reservation"
)

// ReservationHandler exposes the recurrence engine to administrators.
type ReservationHandler struct {
	Service reservation.ReservationService
}

// CreateReservationHandler expands a recurrence request onto a resource's
// calendar. The whole request succeeds or fails as one unit.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if adminID, ok := c.Get("adminID"); ok && req.CreatedBy == "" {
		req.CreatedBy, _ = adminID.(string)
	}

	intervals, err := h.Service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"count":        len(intervals),
		"reservations": intervals,
	})
}

// ListReservationsHandler lists stored intervals with optional filters.
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	filter := models.ReservationFilter{
		ResourceType: models.ResourceType(c.Query("resourceType")),
		ResourceID:   c.Query("resourceId"),
		Page:         parseIntQuery(c, "page", 1),
		PageSize:     parseIntQuery(c, "pageSize", 50),
	}
	if from, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		filter.To = &to
	}

	intervals, total, err := h.Service.ListReservations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":        total,
		"reservations": intervals,
	})
}

// DeleteReservationHandler removes one interval by id.
func (h *ReservationHandler) DeleteReservationHandler(c *gin.Context) {
	if err := h.Service.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
