package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	slotRepo "counselhub/database/repository/slot"
	"counselhub/models"
)

// SlotHandler exposes slot publishing and discovery.
type SlotHandler struct {
	Repo slotRepo.SlotRepository
}

type publishSlotInput struct {
	CounsellorID string    `json:"counsellorId" binding:"required"`
	RoomID       string    `json:"roomId"`
	MeetingID    string    `json:"meetingId" binding:"required"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	MeetingType  string    `json:"meetingType" binding:"required"`
}

// PublishSlotHandler creates an open slot (admin only).
func (h *SlotHandler) PublishSlotHandler(c *gin.Context) {
	var input publishSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.MeetingType != models.MeetingTypeOnPremise && input.MeetingType != models.MeetingTypeOnline {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meetingType must be ON_PREMISE or ONLINE"})
		return
	}
	if !input.StartTime.Before(input.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime must be before endTime"})
		return
	}

	slot, err := h.Repo.Create(c.Request.Context(), models.ScheduleSlot{
		CounsellorID: input.CounsellorID,
		RoomID:       input.RoomID,
		MeetingID:    input.MeetingID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		MeetingType:  input.MeetingType,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListSlotsHandler lists slots with optional filters.
func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	filter := models.SlotFilter{
		CounsellorID: c.Query("counsellorId"),
		RoomID:       c.Query("roomId"),
		Date:         c.Query("date"),
		MeetingType:  c.Query("meetingType"),
		Page:         parseIntQuery(c, "page", 1),
		PageSize:     parseIntQuery(c, "pageSize", 50),
	}
	if booked := c.Query("booked"); booked != "" {
		b := booked == "true"
		filter.BookedOnly = &b
	}

	slots, total, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"slots": slots,
	})
}

// GetSlotHandler fetches one slot by id.
func (h *SlotHandler) GetSlotHandler(c *gin.Context) {
	slot, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteSlotHandler removes an unbooked slot (admin only).
func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	slot, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if slot.Booked {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete a booked slot"})
		return
	}
	if err := h.Repo.DeleteByID(c.Request.Context(), slot.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
}
