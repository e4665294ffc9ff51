package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"onibook/services/schedule"
	"onibook/utils"
)

// respondScheduleError translates the scheduling error taxonomy into HTTP
// responses. Everything unrecognized is a 500 so storage bugs never
// masquerade as caller mistakes.
func respondScheduleError(c *gin.Context, err error) {
	var (
		validationErr schedule.ValidationError
		dateErr       schedule.InvalidDateError
		notFoundErr   schedule.NotFoundError
		takenErr      schedule.SlotTakenError
		storageErr    schedule.StorageUnavailableError
	)

	switch {
	case errors.As(err, &takenErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot already booked", "code": "SLOT_TAKEN"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &dateErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": dateErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &storageErr):
		utils.GetLogger().Error("storage unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable"})
	default:
		utils.GetLogger().Error("unhandled scheduling error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
