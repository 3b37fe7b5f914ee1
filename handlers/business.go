package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	businessRepo "instrufix/database/repository/business"
	"instrufix/models"
	"instrufix/services/listing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler serves the listing submission and lookup endpoints.
type BusinessHandler struct {
	Service listing.ListingService
}

// NewBusinessHandler creates a new BusinessHandler instance.
func NewBusinessHandler(svc listing.ListingService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// failure writes the standard envelope with success=false.
func failure(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{Success: false, Message: message})
}

// decodeSubmission pulls the draft JSON out of the multipart "data" field and
// saves the repeated "image" parts to temp files for upload.
func decodeSubmission(c *gin.Context) (*models.Business, []string, func(), error) {
	data := c.PostForm("data")
	if data == "" {
		return nil, nil, nil, errors.New("missing data field")
	}

	var business models.Business
	if err := json.Unmarshal([]byte(data), &business); err != nil {
		return nil, nil, nil, errors.New("invalid business data: " + err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil, errors.New("invalid multipart form: " + err.Error())
	}

	var paths []string
	cleanup := func() {
		for _, p := range paths {
			os.Remove(p)
		}
	}
	for _, fileHeader := range form.File["image"] {
		tempPath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
			cleanup()
			return nil, nil, nil, errors.New("failed to save image: " + err.Error())
		}
		paths = append(paths, tempPath)
	}

	return &business, paths, cleanup, nil
}

// CreateBusinessHandler handles POST /business/create?type=<mode>.
func (h *BusinessHandler) CreateBusinessHandler(c *gin.Context) {
	logger := getLogger(c)

	mode := c.DefaultQuery("type", listing.ModeDashboard)
	if mode != listing.ModeDashboard && mode != listing.ModePublic {
		failure(c, http.StatusBadRequest, "invalid submission type")
		return
	}

	ownerID := c.GetString("userID")
	if mode == listing.ModeDashboard && ownerID == "" {
		failure(c, http.StatusUnauthorized, "authentication required")
		return
	}

	business, imagePaths, cleanup, err := decodeSubmission(c)
	if err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	created, err := h.Service.Create(c, business, imagePaths, mode, ownerID)
	if err != nil {
		if errors.Is(err, listing.ErrMissingName) {
			failure(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to create business", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Business creation failed")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Message: "Business submitted for verification",
		Data:    created,
	})
}

// UpdateBusinessHandler handles PATCH /business/update/:id.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	business, imagePaths, cleanup, err := decodeSubmission(c)
	if err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	updated, err := h.Service.Update(c, id, business, imagePaths, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, listing.ErrNotFound):
			failure(c, http.StatusNotFound, err.Error())
		case errors.Is(err, listing.ErrNotOwner):
			failure(c, http.StatusForbidden, err.Error())
		default:
			logger.Error("Failed to update business", zap.String("id", id), zap.Error(err))
			failure(c, http.StatusInternalServerError, "Business update failed")
		}
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Business updated successfully",
		Data:    updated,
	})
}

// GetBusinessHandler handles GET /business/:id.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	id := c.Param("id")

	business, err := h.Service.GetByID(c, id)
	if err != nil {
		failure(c, http.StatusNotFound, "Business not found")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: business})
}

// TrackBusinessHandler handles GET /business/track/:trackingId, letting a
// public submitter check the status of their submission.
func (h *BusinessHandler) TrackBusinessHandler(c *gin.Context) {
	trackingID := c.Param("trackingId")

	business, err := h.Service.GetByTrackingID(c, trackingID)
	if err != nil {
		failure(c, http.StatusNotFound, "Submission not found")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: business})
}

// ListBusinessesHandler handles GET /business.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	logger := getLogger(c)

	criteria := businessRepo.SearchCriteria{
		Status:           c.Query("status"),
		InstrumentGroup:  c.Query("group"),
		InstrumentFamily: c.Query("family"),
	}

	businesses, err := h.Service.List(c, criteria)
	if err != nil {
		logger.Error("Failed to list businesses", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to get businesses")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": businesses})
}
