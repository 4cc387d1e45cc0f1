package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	rateRepo "counselhub/database/repository/rate"
	"counselhub/models"
)

// RateHandler exposes administrative rate management.
type RateHandler struct {
	Repo rateRepo.RateRepository
}

// CreateRateHandler creates a rate record, rejecting exact duplicates and
// second defaults for the same counsellor, service and hour window.
func (h *RateHandler) CreateRateHandler(c *gin.Context) {
	var record models.RateRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if record.CounsellorID == "" || record.Rate <= 0 || record.Currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "counsellorId, rate and currency are required"})
		return
	}
	if record.HourFrom < 0 || record.HourTo <= record.HourFrom {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hour window must satisfy 0 <= hourFrom < hourTo"})
		return
	}

	created, err := h.Repo.Create(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRatesHandler lists a counsellor's rate records.
func (h *RateHandler) ListRatesHandler(c *gin.Context) {
	records, err := h.Repo.ListByCounsellor(c.Request.Context(), c.Param("counsellorID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": records})
}

// DeleteRateHandler removes one rate record by id.
func (h *RateHandler) DeleteRateHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rate deleted"})
}
