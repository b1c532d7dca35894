// Package rest is the outbound HTTP client for the marketplace API:
// the education-structure read endpoint and the tutor filter endpoint.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	"github.com/ImComy/Modaresy-sub002/internal/domain/taxonomy"
	"github.com/ImComy/Modaresy-sub002/internal/logger"
)

const defaultTimeout = 30 * time.Second

// Client talks to the marketplace REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Config holds the client settings.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient creates a marketplace API client. A nil Logger falls back
// to the per-request context logger.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: hc,
		logger:     cfg.Logger,
	}
}

func (c *Client) log(ctx context.Context) *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.FromContext(ctx)
}

// TutorDoc is one raw teacher document as returned by the API.
type TutorDoc struct {
	ID              string              `json:"_id"`
	Name            string              `json:"name"`
	Governate       string              `json:"governate"`
	District        string              `json:"district"`
	Rating          *float64            `json:"rating"`
	SubjectProfiles []SubjectProfileDoc `json:"subject_profiles"`
}

// SubjectProfileDoc is one raw subject profile. Older records carry a
// combined "type" string instead of explicit education_system/sector.
type SubjectProfileDoc struct {
	Subject         string   `json:"subject"`
	Grade           string   `json:"grade"`
	Language        string   `json:"language"`
	EducationSystem string   `json:"education_system"`
	Sector          string   `json:"sector"`
	Type            string   `json:"type"`
	PrivatePrice    *float64 `json:"private_price"`
	GroupPrice      *float64 `json:"group_price"`
	Rating          *float64 `json:"rating"`
}

// FilterResponse is the tutor filter endpoint payload.
type FilterResponse struct {
	Tutors []TutorDoc `json:"tutors"`
}

// FilterTutors calls GET /tutors/filter with the given query parameters.
func (c *Client) FilterTutors(ctx context.Context, params url.Values) (*FilterResponse, error) {
	u := c.baseURL + "/tutors/filter"
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	var resp FilterResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}
	return &resp, nil
}

// FetchTaxonomy calls GET /education-structure and decodes the nested
// taxonomy document.
func (c *Client) FetchTaxonomy(ctx context.Context) (*taxonomy.Tree, error) {
	var tree taxonomy.Tree
	if err := c.getJSON(ctx, c.baseURL+"/education-structure", &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTaxonomyUnavailable, err)
	}
	return &tree, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			c.log(ctx).Debug("close body failed", zap.Error(e))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
