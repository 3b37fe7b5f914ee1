package composer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"instrufix/models"
)

// APIError carries the server's failure message so the caller can surface it
// verbatim in a toast.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the listing REST API. All submission traffic is a single
// multipart request: the draft JSON under field "data" and image files as
// repeated "image" parts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// NewClient creates a listing API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetAuthToken attaches a bearer token to subsequent requests.
func (cl *Client) SetAuthToken(token string) {
	cl.authToken = token
}

// CreateBusiness submits a new listing. The mode rides as the "type" query
// parameter so the backend can distinguish dashboard from public submissions.
func (cl *Client) CreateBusiness(ctx context.Context, draft models.Business, imageFiles []string, mode Mode) (*models.Business, error) {
	url := fmt.Sprintf("%s/business/create?type=%s", cl.baseURL, mode)
	return cl.submitMultipart(ctx, http.MethodPost, url, draft, imageFiles)
}

// UpdateBusiness patches an existing listing with the same multipart shape.
func (cl *Client) UpdateBusiness(ctx context.Context, id string, draft models.Business, imageFiles []string) (*models.Business, error) {
	url := fmt.Sprintf("%s/business/update/%s", cl.baseURL, id)
	return cl.submitMultipart(ctx, http.MethodPatch, url, draft, imageFiles)
}

// GetBusiness fetches an existing listing for pre-population.
func (cl *Client) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/business/%s", cl.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	cl.setAuth(req)

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business %s: %w", id, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}

// GetInstrumentFamilies fetches the reference catalog.
func (cl *Client) GetInstrumentFamilies(ctx context.Context) ([]models.InstrumentFamily, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cl.baseURL+"/instrument-family", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instrument catalog: %w", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    []models.InstrumentFamily `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode instrument catalog: %w", err)
	}
	if !envelope.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
	return envelope.Data, nil
}

func (cl *Client) submitMultipart(ctx context.Context, method, url string, draft models.Business, imageFiles []string) (*models.Business, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, file := range imageFiles {
		if err := attachFile(writer, file); err != nil {
			return nil, err
		}
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := writer.WriteField("data", string(data)); err != nil {
		return nil, fmt.Errorf("failed to write data field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	cl.setAuth(req)

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submission request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}

func (cl *Client) setAuth(req *http.Request) {
	if cl.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+cl.authToken)
	}
}

func attachFile(writer *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to copy image %s: %w", path, err)
	}
	return nil
}

func decodeEnvelope(resp *http.Response) (*models.Business, error) {
	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
	return envelope.Data, nil
}
