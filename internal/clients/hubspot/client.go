package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperr "github.com/incorpora/onboarding-api/internal/errors"
)

const defaultBaseURL = "https://api.hubapi.com"

// Config holds configuration for the HubSpot client
type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a HubSpot client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}
	if cfg.Token == "" {
		return nil, apperr.InvalidArgument("hubspot token is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      cfg.Token,
	}, nil
}

// objectResponse is the portion of a CRM object response we care about
type objectResponse struct {
	ID string `json:"id"`
}

// errorResponse is HubSpot's error envelope
type errorResponse struct {
	Message string `json:"message"`
}

func (c *client) CreateContact(ctx context.Context, props *ContactProperties) (string, error) {
	var created objectResponse
	err := c.doJSON(ctx, http.MethodPost, "/crm/v3/objects/contacts", envelope(props), &created)
	if err != nil {
		return "", apperr.Integration(err, "failed to create contact in HubSpot")
	}
	return created.ID, nil
}

func (c *client) CreateCompany(ctx context.Context, props *CompanyProperties) (string, error) {
	var created objectResponse
	err := c.doJSON(ctx, http.MethodPost, "/crm/v3/objects/companies", envelope(props), &created)
	if err != nil {
		return "", apperr.Integration(err, "failed to create company in HubSpot")
	}
	return created.ID, nil
}

func (c *client) AssociateContactCompany(ctx context.Context, contactID, companyID string) error {
	if contactID == "" || companyID == "" {
		return apperr.InvalidArgument("contact and company IDs are required")
	}

	path := fmt.Sprintf("/crm/v3/objects/contacts/%s/associations/companies/%s/contact_to_company",
		contactID, companyID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, nil); err != nil {
		return apperr.Integration(err, "failed to associate contact with company in HubSpot")
	}
	return nil
}

// envelope wraps object properties the way the CRM objects API expects
func envelope(props any) map[string]any {
	return map[string]any{"properties": props}
}

func (c *client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to serialize request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("hubspot returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("hubspot returned %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
