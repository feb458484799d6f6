// Package client provides an HTTP client for the property assistant API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/evcraddock/property-assistant/internal/assistant"
	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/formatter"
)

// Client is an HTTP client for the assistant API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Result is an answer as returned over the wire. Related items stay raw
// until the caller knows their kind from Type.
type Result struct {
	Text         string               `json:"text"`
	Type         assistant.ResultType `json:"type"`
	RelatedItems []json.RawMessage    `json:"relatedItems,omitempty"`
}

// Units decodes the related items of a unit result.
func (r Result) Units() ([]catalog.Unit, error) {
	if r.Type != assistant.TypeUnit {
		return nil, nil
	}
	units := make([]catalog.Unit, 0, len(r.RelatedItems))
	for _, raw := range r.RelatedItems {
		var u catalog.Unit
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("decoding unit: %w", err)
		}
		units = append(units, u)
	}
	return units, nil
}

// Answer is the response from POST /api/query.
type Answer struct {
	Result Result         `json:"result"`
	Card   formatter.Card `json:"card"`
}

// Query asks a question, optionally scoped to a project.
func (c *Client) Query(query, projectID string) (*Answer, error) {
	body := map[string]string{"query": query, "project_id": projectID}
	var a Answer
	if err := c.post("/api/query", body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Projects returns every project in the catalog.
func (c *Client) Projects() ([]catalog.Project, error) {
	var projects []catalog.Project
	if err := c.get("/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project returns one project.
func (c *Client) Project(id string) (*catalog.Project, error) {
	var p catalog.Project
	if err := c.get("/api/projects/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Units returns a project's units.
func (c *Client) Units(projectID string) ([]catalog.Unit, error) {
	var units []catalog.Unit
	if err := c.get("/api/projects/"+url.PathEscape(projectID)+"/units", &units); err != nil {
		return nil, err
	}
	return units, nil
}

// FAQs returns a project's frequently asked questions.
func (c *Client) FAQs(projectID string) ([]catalog.FAQ, error) {
	var faqs []catalog.FAQ
	if err := c.get("/api/projects/"+url.PathEscape(projectID)+"/faqs", &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// Filters returns the quick filters.
func (c *Client) Filters() ([]assistant.QuickFilter, error) {
	var filters []assistant.QuickFilter
	if err := c.get("/api/filters", &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

type historyResponse struct {
	History []string `json:"history"`
}

// History returns recent queries, newest first.
func (c *Client) History() ([]string, error) {
	var resp historyResponse
	if err := c.get("/api/history", &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// ClearHistory empties the search history.
func (c *Client) ClearHistory() error {
	return c.doDelete("/api/history")
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "err", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
