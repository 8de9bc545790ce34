package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sigerhq/fieldreport/internal/client/models"
)

// HTTPClient talks JSON (and multipart for uploads) to the SIGER API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient returns a client for the given base URL
// (e.g. "http://localhost:3000"). The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) Close() error { return nil }

type projectsResponse struct {
	Success bool             `json:"success"`
	Data    []models.Project `json:"data"`
	Message string           `json:"message"`
}

type listResponse struct {
	Success    bool                         `json:"success"`
	Data       []models.DailyProgressRecord `json:"data"`
	Pagination *models.Pagination           `json:"pagination"`
	Message    string                       `json:"message"`
}

type upsertResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Path     string `json:"path"`
		FileName string `json:"fileName"`
	} `json:"data"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *HTTPClient) FetchProjects(ctx context.Context) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/full-projects", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var body projectsResponse
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: %s", ErrServer, orDefault(body.Message, "failed to fetch projects"))
	}
	return body.Data, nil
}

func (c *HTTPClient) ListDailyProgress(ctx context.Context, params models.ListParams) ([]models.DailyProgressRecord, *models.Pagination, error) {
	q := url.Values{}
	setIfNonZero := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	setIfNonZero("sortBy", params.SortBy)
	setIfNonZero("sortOrder", params.SortOrder)
	setIfNonZero("search", params.Search)
	setIfNonZero("projectId", params.ProjectID)
	setIfNonZero("activityId", params.ActivityID)
	setIfNonZero("subActivityId", params.SubActivityID)
	setIfNonZero("userId", params.UserID)
	setIfNonZero("tanggalProgres", params.ReportDate)
	setIfNonZero("startDate", params.StartDate)
	setIfNonZero("endDate", params.EndDate)

	u := c.baseURL + "/api/daily-sub-activities/list?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var body listResponse
	if err := c.do(req, &body); err != nil {
		return nil, nil, err
	}
	if !body.Success {
		return nil, nil, fmt.Errorf("%w: %s", ErrServer, orDefault(body.Message, "failed to list daily progress"))
	}
	return body.Data, body.Pagination, nil
}

func (c *HTTPClient) UpsertDailyProgress(ctx context.Context, payload models.UpsertPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/api/daily-sub-activities-update", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body upsertResponse
	if err := c.do(req, &body); err != nil {
		return err
	}
	if !body.Success {
		return fmt.Errorf("%w: %s", ErrServer, orDefault(body.Message, "failed to upsert daily progress"))
	}
	return nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, fileName, mimeType string, content io.Reader) (*models.FileRef, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("reading file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var body uploadResponse
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: %s", ErrServer, orDefault(body.Message, "upload failed"))
	}
	return &models.FileRef{File: body.Data.FileName, Path: body.Data.Path}, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, bucket, fileName string) error {
	payload := map[string]string{"bucket": bucket, "fileName": fileName}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/delete-image", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body deleteResponse
	if err := c.do(req, &body); err != nil {
		return err
	}
	if !body.Success {
		return fmt.Errorf("%w: %s", ErrServer, orDefault(body.Message, "delete failed"))
	}
	return nil
}

// do executes the request and decodes a JSON envelope into out. Transport
// failures map to ErrUnavailable, 404 to ErrNotFound, and other non-2xx
// statuses to ErrServer with the response body attached.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, req.URL.Path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d, body: %s", ErrServer, resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w, body: %s", err, string(raw))
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
