package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"onibook/config"
	"onibook/cron"
	"onibook/models"
	"onibook/services/schedule"
	"onibook/services/storage"
	"onibook/utils"
)

// BookingHandler serves slot lookups, booking creation and the admin booking
// views.
type BookingHandler struct {
	Svc        schedule.Service
	StorageSvc storage.StorageService
	Queue      *asynq.Client
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc schedule.Service, storageSvc storage.StorageService, queue *asynq.Client) *BookingHandler {
	return &BookingHandler{Svc: svc, StorageSvc: storageSvc, Queue: queue}
}

// AvailableSlotsHandler returns the bookable times for a date.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}
	slots, err := h.Svc.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// BookHandler creates a booking from a multipart form. The optional file is
// uploaded before the conditional insert; if the insert then loses the slot
// race, the upload is handed to the sweep queue instead of being leaked.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	draft := models.BookingDraft{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Service: c.PostForm("service"),
		Date:    c.PostForm("date"),
		Time:    c.PostForm("time"),
		Note:    c.PostForm("note"),
		Link:    c.PostForm("link"),
	}

	if fileHeader, err := c.FormFile("file"); err == nil && h.StorageSvc != nil {
		ref, uploadErr := h.storeAttachment(c, fileHeader)
		if uploadErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store attachment", "message": uploadErr.Error()})
			return
		}
		draft.AttachmentRef = ref
	}

	booking, err := h.Svc.Book(c.Request.Context(), draft)
	if err != nil {
		h.sweepOrphan(draft.AttachmentRef)
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "booking": booking})
}

// storeAttachment saves the multipart file to a temp path and hands it to
// the storage backend, returning the permanent reference.
func (h *BookingHandler) storeAttachment(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", err
	}
	defer os.Remove(tempFilePath)

	return h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, config.AppConfig.CloudinaryFolder)
}

// sweepOrphan queues deletion of an attachment whose booking never happened.
func (h *BookingHandler) sweepOrphan(ref string) {
	if ref == "" {
		return
	}
	logger := utils.GetLogger()
	if h.Queue != nil {
		if err := cron.EnqueueAttachmentSweep(h.Queue, ref); err != nil {
			logger.Warn("failed to enqueue orphan sweep", zap.String("ref", ref), zap.Error(err))
		}
		return
	}
	// No queue configured: best-effort inline delete.
	if h.StorageSvc != nil {
		if err := h.StorageSvc.DeleteFile(context.Background(), ref); err != nil {
			logger.Warn("failed to delete orphaned attachment", zap.String("ref", ref), zap.Error(err))
		}
	}
}

// MyBookingsHandler returns the authenticated caller's bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	emailValue, exists := c.Get("email")
	email, _ := emailValue.(string)
	if !exists || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	bookings, err := h.Svc.BookingsByEmail(c.Request.Context(), email)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AdminListHandler returns confirmed bookings in the requested scope.
func (h *BookingHandler) AdminListHandler(c *gin.Context) {
	scope := schedule.BookingScope(c.DefaultQuery("scope", string(schedule.ScopeUpcoming)))
	bookings, err := h.Svc.Bookings(c.Request.Context(), scope)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AdminCancelHandler soft-cancels a booking by id.
func (h *BookingHandler) AdminCancelHandler(c *gin.Context) {
	if err := h.Svc.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
