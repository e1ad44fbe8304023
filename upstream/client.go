package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"event-composer-backend/assemble"
	"event-composer-backend/model"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

// API is what the wizard needs from the events backend.
type API interface {
	Features(ctx context.Context) (*model.FeatureFlags, error)
	Publish(ctx context.Context, s *assemble.Submission) (*model.PublishReceipt, error)
}

// ErrTokenExpired is returned before any bytes go over the wire when the
// bearer token has already lapsed.
var ErrTokenExpired = errors.New("upstream: bearer token expired")

// APIError carries the backend's own failure message so it can be surfaced
// to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: status %d: %s", e.StatusCode, e.Message)
}

type Credentials struct {
	BearerToken string
	TenantID    string
}

// CredentialsSource supplies the bearer token and tenant id; the workflow
// consumes credentials, it never manages them.
type CredentialsSource interface {
	Credentials(ctx context.Context) (*Credentials, error)
}

type StaticCredentials Credentials

func (s StaticCredentials) Credentials(ctx context.Context) (*Credentials, error) {
	return &Credentials{BearerToken: s.BearerToken, TenantID: s.TenantID}, nil
}

func NewClient(baseURL string, source CredentialsSource, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		source:     source,
		httpClient: http.Client{Timeout: timeout},
	}
}

type Client struct {
	baseURL    string
	source     CredentialsSource
	httpClient http.Client
}

type featuresResponse struct {
	Data struct {
		Features struct {
			AllowTransfers struct {
				Enabled bool `json:"enabled"`
			} `json:"allowTransfers"`
			CreditSystem struct {
				Enabled bool `json:"enabled"`
			} `json:"creditSystem"`
		} `json:"features"`
	} `json:"data"`
}

func (c *Client) Features(ctx context.Context) (*model.FeatureFlags, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/tenants/my/features", nil)
	if err != nil {
		return nil, fmt.Errorf("features: error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("features: error fetching feature flags: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("features: unexpected status %d", res.StatusCode)
	}

	var fr featuresResponse
	if err := json.NewDecoder(res.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("features: error unmarshalling response body: %w", err)
	}

	return &model.FeatureFlags{
		AllowTransfers: fr.Data.Features.AllowTransfers.Enabled,
		CreditSystem:   fr.Data.Features.CreditSystem.Enabled,
	}, nil
}

type publishResponse struct {
	Data struct {
		ID      interface{} `json:"id"`
		EventID interface{} `json:"eventId"`
	} `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) Publish(ctx context.Context, s *assemble.Submission) (*model.PublishReceipt, error) {
	creds, err := c.source.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish: error reading credentials: %w", err)
	}
	if tokenExpired(creds.BearerToken) {
		return nil, ErrTokenExpired
	}

	var body bytes.Buffer
	contentType, err := s.Encode(&body)
	if err != nil {
		return nil, fmt.Errorf("publish: error encoding submission: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/events", &body)
	if err != nil {
		return nil, fmt.Errorf("publish: error creating request: %w", err)
	}
	req = req.WithContext(ctx)
	c.setHeaders(req, creds)
	req.Header.Set("Content-Type", contentType)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("publish: error submitting event: %w", err)
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("publish: error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var eb errorBody
		json.Unmarshal(data, &eb)
		return nil, &APIError{StatusCode: res.StatusCode, Message: eb.Message}
	}

	var pr publishResponse
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, fmt.Errorf("publish: error unmarshalling response body: %w", err)
	}

	id := stringify(pr.Data.ID)
	if id == "" {
		id = stringify(pr.Data.EventID)
	}

	return &model.PublishReceipt{EventID: id}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body *bytes.Buffer) (*http.Request, error) {
	creds, err := c.source.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("newRequest: error reading credentials: %w", err)
	}

	var req *http.Request
	if body == nil {
		req, err = http.NewRequest(method, c.baseURL+path, nil)
	} else {
		req, err = http.NewRequest(method, c.baseURL+path, body)
	}
	if err != nil {
		return nil, err
	}

	req = req.WithContext(ctx)
	c.setHeaders(req, creds)
	return req, nil
}

func (c *Client) setHeaders(req *http.Request, creds *Credentials) {
	req.Header.Set("Authorization", "Bearer "+creds.BearerToken)
	req.Header.Set("X-Tenant-Id", creds.TenantID)
}

func stringify(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}
