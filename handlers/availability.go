package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"onibook/services/schedule"
	"onibook/utils"
)

// AvailabilityHandler serves the availability surface: public reads plus the
// admin-gated mutations.
type AvailabilityHandler struct {
	Svc schedule.Service
}

// NewAvailabilityHandler creates a new AvailabilityHandler instance.
func NewAvailabilityHandler(svc schedule.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// ListHandler returns all availability records, date ascending.
func (h *AvailabilityHandler) ListHandler(c *gin.Context) {
	records, err := h.Svc.ListAvailability(c.Request.Context())
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetByDateHandler returns the record for one date, or an empty-slots shape.
func (h *AvailabilityHandler) GetByDateHandler(c *gin.Context) {
	record, err := h.Svc.AvailabilityForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpsertHandler replaces the slot set for a date.
func (h *AvailabilityHandler) UpsertHandler(c *gin.Context) {
	var body struct {
		Slots []string `json:"slots"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	date := c.Param("date")
	if err := h.Svc.SetAvailability(c.Request.Context(), date, body.Slots); err != nil {
		respondScheduleError(c, err)
		return
	}

	utils.GetLogger().Info("availability updated",
		zap.String("date", date),
		zap.Int("slots", len(body.Slots)),
	)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveSlotHandler removes one offered slot from a date.
func (h *AvailabilityHandler) RemoveSlotHandler(c *gin.Context) {
	if err := h.Svc.RemoveAvailabilitySlot(c.Request.Context(), c.Param("date"), c.Param("time")); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
