package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle assembles every endpoint handler plus the session cache the
// auth middleware consults. Routes are registered against this bundle.
type HandlerBundle struct {
	Sessions *redis.Client

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Availability endpoints.
	ListAvailabilityHandler   gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	UpsertAvailabilityHandler gin.HandlerFunc
	RemoveSlotHandler         gin.HandlerFunc

	// Booking endpoints.
	AvailableSlotsHandler gin.HandlerFunc
	BookHandler           gin.HandlerFunc
	MyBookingsHandler     gin.HandlerFunc
	AdminListHandler      gin.HandlerFunc
	AdminCancelHandler    gin.HandlerFunc

	// Comment endpoints.
	ListCommentsHandler  gin.HandlerFunc
	CreateCommentHandler gin.HandlerFunc
}
