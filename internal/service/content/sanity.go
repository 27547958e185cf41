package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/model/content"
)

// SanityClient reads content through the Sanity HTTP query API.
type SanityClient struct {
	baseURL string
	dataset string
	token   string
	client  *http.Client
}

// NewSanityClient builds a client for the configured project. Token-bearing
// requests always bypass the CDN.
func NewSanityClient(cfg config.ContentConfig, client *http.Client) *SanityClient {
	host := "api.sanity.io"
	if cfg.UseCDN && cfg.Token == "" {
		host = "apicdn.sanity.io"
	}
	if client == nil {
		client = &http.Client{}
	}
	return &SanityClient{
		baseURL: fmt.Sprintf("https://%s.%s/v%s", cfg.ProjectID, host, strings.TrimPrefix(cfg.APIVersion, "v")),
		dataset: cfg.Dataset,
		token:   cfg.Token,
		client:  client,
	}
}

// WithBaseURL points the client at another API root, e.g. a test server.
func (c *SanityClient) WithBaseURL(baseURL string) *SanityClient {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Fetch runs the query's GROQ text and returns the "result" member.
func (c *SanityClient) Fetch(ctx context.Context, q content.Query) (content.Result, error) {
	if q.GROQ == "" {
		section, ok := content.Lookup(q.Section)
		if !ok {
			return content.Result{}, fmt.Errorf("%w: %q", content.ErrUnknownSection, q.Section)
		}
		q.GROQ = section.Query
	}

	values := url.Values{}
	values.Set("query", q.GROQ)
	for name, v := range q.Params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return content.Result{}, fmt.Errorf("encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, url.PathEscape(c.dataset), values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return content.Result{}, fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return content.Result{}, fmt.Errorf("query content source: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return content.Result{}, fmt.Errorf("read content response: %w", err)
	}

	var payload struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return content.Result{}, fmt.Errorf("content api error: %s body=%s", resp.Status, shorten(string(body)))
	}

	if resp.StatusCode >= 300 {
		reason := resp.Status
		if payload.Error != nil && payload.Error.Description != "" {
			reason = payload.Error.Description
		}
		return content.Result{}, fmt.Errorf("content api error: %s", reason)
	}

	return content.Result{Data: payload.Result}, nil
}

func shorten(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
