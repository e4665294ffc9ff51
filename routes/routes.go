package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"onibook/config"
	"onibook/handlers"
	"onibook/middleware"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterAvailabilityRoutes registers the availability surface. Reads are
// public; mutations require the admin role.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.ListAvailabilityHandler)
		api.GET("/:date", hb.GetAvailabilityHandler)

		admin := api.Group("")
		admin.Use(middleware.Auth(hb.Sessions), middleware.AdminOnly())
		admin.PUT("/:date", hb.UpsertAvailabilityHandler)
		admin.DELETE("/:date/:time", hb.RemoveSlotHandler)
	}
}

// RegisterBookingRoutes registers slot lookup, booking creation and the
// admin booking views.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/available", hb.AvailableSlotsHandler)

		authed := api.Group("")
		authed.Use(middleware.Auth(hb.Sessions))
		authed.POST("/book", hb.BookHandler)
		authed.GET("/mine", hb.MyBookingsHandler)

		admin := api.Group("/admin")
		admin.Use(middleware.Auth(hb.Sessions), middleware.AdminOnly())
		admin.GET("", hb.AdminListHandler)
		admin.DELETE("/:id", hb.AdminCancelHandler)
	}
}

// RegisterCommentRoutes registers the public review ledger.
func RegisterCommentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/comments")
	{
		api.GET("", hb.ListCommentsHandler)
		api.POST("", hb.CreateCommentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Booking server is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Locally stored attachments are served straight off disk.
	if config.AppConfig.StorageBackend == "local" {
		r.Static("/uploads", config.AppConfig.UploadDir)
	}

	RegisterAuthRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCommentRoutes(r, hb)
	RegisterHealthRoute(r)
}
