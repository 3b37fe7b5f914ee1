package composer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"instrufix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedSession() models.Session {
	return models.Session{
		Status:   models.SessionAuthenticated,
		UserID:   "user-1",
		UserType: models.UserTypeBusiness,
		Token:    "tok",
	}
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "front.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegbytes"), 0o600))
	return path
}

func okEnvelope(b *models.Business) []byte {
	out, _ := json.Marshal(models.APIResponse{Success: true, Message: "ok", Data: b})
	return out
}

func TestSubmitPublicCreate(t *testing.T) {
	var gotReq *http.Request
	var gotDraft models.Business
	var gotImages int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		require.NoError(t, r.ParseMultipartForm(32<<20))
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &gotDraft))
		gotImages = len(r.MultipartForm.File["image"])
		w.Write(okEnvelope(&models.Business{ID: "biz-1", TrackingID: "trk-1"}))
	}))
	defer srv.Close()

	comp := New(testCatalog())
	comp.SetName("Public Shop")
	comp.ChooseInstrument("Guitar")
	comp.SelectGroup("Guitar")
	addService(t, comp, "Setup", "50")
	comp.AddPendingImage(writeTempImage(t), "blob:1")

	sub := NewSubmitter(comp, NewClient(srv.URL, 5*time.Second), ModePublic, models.Session{Status: models.SessionUnauthenticated})

	created, err := sub.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "trk-1", created.TrackingID)

	assert.Equal(t, http.MethodPost, gotReq.Method)
	assert.Equal(t, "/business/create", gotReq.URL.Path)
	assert.Equal(t, "public", gotReq.URL.Query().Get("type"))
	assert.Equal(t, 1, gotImages)

	assert.Equal(t, "Public Shop", gotDraft.BusinessInfo.Name)
	assert.Equal(t, models.StatusPending, gotDraft.Status)
	assert.False(t, gotDraft.IsVerified)
	assert.False(t, gotDraft.OfferMusicLessons)
	assert.Len(t, gotDraft.BusinessHours, 7)
	assert.Empty(t, gotDraft.BusinessInfo.Image, "create never inlines remote URLs")

	// Public success opens the two-step dialog chain.
	assert.Equal(t, ModalTrackSubmission, sub.Modal())
	sub.AcknowledgeSubmitted()
	assert.Equal(t, ModalTrackingInfo, sub.Modal())
	sub.DismissModal()
	assert.Equal(t, ModalNone, sub.Modal())
}

func TestSubmitDashboardCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dashboard", r.URL.Query().Get("type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write(okEnvelope(&models.Business{ID: "biz-1"}))
	}))
	defer srv.Close()

	comp := New(testCatalog())
	comp.SetName("Dash Shop")
	client := NewClient(srv.URL, 5*time.Second)
	client.SetAuthToken("tok")
	sub := NewSubmitter(comp, client, ModeDashboard, authedSession())

	_, err := sub.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ModalConfirmation, sub.Modal())

	sub.AcknowledgeSubmitted()
	assert.Equal(t, ModalNone, sub.Modal(), "only the public chain has a second dialog")
}

func TestSubmitUnauthenticatedPromptsLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may be sent before the session gate")
	}))
	defer srv.Close()

	comp := New(testCatalog())
	comp.SetName("Draft Shop")
	comp.ChooseInstrument("Guitar")
	comp.SelectGroup("Guitar")
	addService(t, comp, "Setup", "50")

	sub := NewSubmitter(comp, NewClient(srv.URL, 5*time.Second), ModeDashboard, models.Session{Status: models.SessionUnauthenticated})

	_, err := sub.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, ModalLoginPrompt, sub.Modal())

	// Draft survives the bounce so login can resume it.
	assert.Equal(t, "Draft Shop", comp.Info().Name)
	assert.Len(t, comp.Services(), 1)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.APIResponse{Success: false, Message: "Business name is required"})
	}))
	defer srv.Close()

	comp := New(testCatalog())
	comp.ChooseInstrument("Guitar")
	comp.SelectGroup("Guitar")
	addService(t, comp, "Setup", "50")

	sub := NewSubmitter(comp, NewClient(srv.URL, 5*time.Second), ModePublic, models.Session{})

	_, err := sub.Submit(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Business name is required", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	assert.Equal(t, ModalNone, sub.Modal())
	assert.Len(t, comp.Services(), 1, "failed submit leaves the draft intact")
}

func TestSubmitFailureFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.APIResponse{Success: false})
	}))
	defer srv.Close()

	sub := NewSubmitter(New(testCatalog()), NewClient(srv.URL, 5*time.Second), ModePublic, models.Session{})

	_, err := sub.Submit(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, submitFallbackMessage, apiErr.Message)
}

func TestSubmitUpdateRefetchesAndReloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPatch && r.URL.Path == "/business/update/biz-1":
			require.NoError(t, r.ParseMultipartForm(32<<20))
			var draft models.Business
			require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &draft))
			assert.Equal(t, []string{"https://cdn.example.com/kept.jpg"}, draft.BusinessInfo.Image,
				"updates inline the surviving remote URLs")
			w.Write(okEnvelope(&models.Business{ID: "biz-1"}))
		case r.Method == http.MethodGet && r.URL.Path == "/business/biz-1":
			w.Write(okEnvelope(&models.Business{
				ID:            "biz-1",
				BusinessInfo:  models.BusinessInfo{Name: "Renamed Shop"},
				BusinessHours: models.DefaultBusinessHours(),
			}))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	comp := New(testCatalog())
	comp.SetName("Old Name")
	comp.AddRemoteImage("https://cdn.example.com/kept.jpg")

	sub := NewSubmitter(comp, NewClient(srv.URL, 5*time.Second), ModeUpdate, authedSession())
	sub.BusinessID = "biz-1"

	updated, err := sub.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, ModalNone, sub.Modal(), "the edit page shows no dialog")
	assert.Equal(t, "Renamed Shop", comp.Info().Name, "draft reloads from the refetched record")
}

func TestSubmitUpdateRequiresBusinessID(t *testing.T) {
	sub := NewSubmitter(New(testCatalog()), NewClient("http://unused", time.Second), ModeUpdate, authedSession())

	_, err := sub.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMissingBusinessID)
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	sub := NewSubmitter(New(testCatalog()), NewClient("http://unused", time.Second), ModePublic, models.Session{})
	sub.inFlight.Store(true)

	_, err := sub.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)
}
