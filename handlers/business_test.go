package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	businessRepo "instrufix/database/repository/business"
	"instrufix/models"
	"instrufix/services/listing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListingService struct {
	createErr  error
	updateErr  error
	lastMode   string
	lastOwner  string
	lastImages []string
	lastDraft  *models.Business
	record     *models.Business
}

func (s *stubListingService) Create(ctx context.Context, business *models.Business, imagePaths []string, mode, ownerID string) (*models.Business, error) {
	s.lastDraft = business
	s.lastImages = imagePaths
	s.lastMode = mode
	s.lastOwner = ownerID
	if s.createErr != nil {
		return nil, s.createErr
	}
	business.ID = "biz-1"
	return business, nil
}

func (s *stubListingService) Update(ctx context.Context, id string, business *models.Business, imagePaths []string, ownerID string) (*models.Business, error) {
	s.lastDraft = business
	s.lastOwner = ownerID
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return business, nil
}

func (s *stubListingService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	if s.record == nil {
		return nil, listing.ErrNotFound
	}
	return s.record, nil
}

func (s *stubListingService) GetByTrackingID(ctx context.Context, trackingID string) (*models.Business, error) {
	if s.record == nil || s.record.TrackingID != trackingID {
		return nil, listing.ErrNotFound
	}
	return s.record, nil
}

func (s *stubListingService) List(ctx context.Context, criteria businessRepo.SearchCriteria) ([]models.Business, error) {
	if s.record == nil {
		return []models.Business{}, nil
	}
	return []models.Business{*s.record}, nil
}

func newTestRouter(svc listing.ListingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set("userID", userID)
			c.Next()
		})
	}
	h := NewBusinessHandler(svc)
	api := r.Group("/api/business")
	api.GET("", h.ListBusinessesHandler)
	api.GET("/:id", h.GetBusinessHandler)
	api.GET("/track/:trackingId", h.TrackBusinessHandler)
	api.POST("/create", h.CreateBusinessHandler)
	api.PATCH("/update/:id", h.UpdateBusinessHandler)
	return r
}

func multipartDraft(t *testing.T, draft models.Business, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, name := range imageNames {
		part, err := writer.CreateFormFile("image", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpegbytes"))
		require.NoError(t, err)
	}
	data, err := json.Marshal(draft)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("data", string(data)))
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateBusinessDashboard(t *testing.T) {
	svc := &stubListingService{}
	router := newTestRouter(svc, "user-1")

	body, contentType := multipartDraft(t, models.Business{
		BusinessInfo: models.BusinessInfo{Name: "Test Shop"},
	}, "front.jpg")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create?type=dashboard", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Business submitted for verification", resp.Message)

	assert.Equal(t, listing.ModeDashboard, svc.lastMode)
	assert.Equal(t, "user-1", svc.lastOwner)
	assert.Equal(t, "Test Shop", svc.lastDraft.BusinessInfo.Name)
	assert.Len(t, svc.lastImages, 1, "uploaded image lands in a temp path for storage")
}

func TestCreateBusinessDefaultsToDashboard(t *testing.T) {
	svc := &stubListingService{}
	router := newTestRouter(svc, "user-1")

	body, contentType := multipartDraft(t, models.Business{BusinessInfo: models.BusinessInfo{Name: "X"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, listing.ModeDashboard, svc.lastMode)
}

func TestCreateBusinessDashboardRequiresAuth(t *testing.T) {
	svc := &stubListingService{}
	router := newTestRouter(svc, "")

	body, contentType := multipartDraft(t, models.Business{BusinessInfo: models.BusinessInfo{Name: "X"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create?type=dashboard", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, decodeResponse(t, w).Success)
	assert.Nil(t, svc.lastDraft, "the service is never reached")
}

func TestCreateBusinessPublicSkipsAuth(t *testing.T) {
	svc := &stubListingService{}
	router := newTestRouter(svc, "")

	body, contentType := multipartDraft(t, models.Business{BusinessInfo: models.BusinessInfo{Name: "Walk-in Shop"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create?type=public", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, listing.ModePublic, svc.lastMode)
	assert.Empty(t, svc.lastOwner)
}

func TestCreateBusinessInvalidType(t *testing.T) {
	router := newTestRouter(&stubListingService{}, "user-1")

	body, contentType := multipartDraft(t, models.Business{BusinessInfo: models.BusinessInfo{Name: "X"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create?type=admin", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBusinessMissingData(t *testing.T) {
	router := newTestRouter(&stubListingService{}, "user-1")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w).Message, "missing data field")
}

func TestCreateBusinessMissingName(t *testing.T) {
	svc := &stubListingService{createErr: listing.ErrMissingName}
	router := newTestRouter(svc, "user-1")

	body, contentType := multipartDraft(t, models.Business{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business/create", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, listing.ErrMissingName.Error(), decodeResponse(t, w).Message)
}

func TestUpdateBusinessStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", listing.ErrNotFound, http.StatusNotFound},
		{"not owner", listing.ErrNotOwner, http.StatusForbidden},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubListingService{updateErr: tc.err}
			router := newTestRouter(svc, "user-1")

			body, contentType := multipartDraft(t, models.Business{BusinessInfo: models.BusinessInfo{Name: "X"}})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/business/update/biz-1", body)
			req.Header.Set("Content-Type", contentType)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.False(t, decodeResponse(t, w).Success)
		})
	}
}

func TestTrackBusiness(t *testing.T) {
	svc := &stubListingService{record: &models.Business{ID: "biz-1", TrackingID: "trk-1", Status: models.StatusPending}}
	router := newTestRouter(svc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/business/track/trk-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Data)
	assert.Equal(t, models.StatusPending, resp.Data.Status)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/business/track/other", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBusinessNotFound(t *testing.T) {
	router := newTestRouter(&stubListingService{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/business/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
