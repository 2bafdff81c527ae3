package gmail

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://www.googleapis.com"

// Client fetches single messages from the Gmail REST API. It holds no
// state beyond the authorized HTTP client: one call, one request, no
// retries.
type Client struct {
	hc *http.Client
	// BaseURL overrides the API host, for tests.
	BaseURL string
}

// NewClient creates a Client authorized with the given bearer token.
// The token is used as-is; obtaining and refreshing it is the caller's
// concern.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("empty access token")
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{hc: oauth2.NewClient(ctx, src), BaseURL: defaultBaseURL}, nil
}

// FetchMessage retrieves one message in full format and extracts its
// fields. A response body that cannot be decoded comes back as a
// *ParseError carrying the raw text.
func (c *Client) FetchMessage(ctx context.Context, id string) (*Email, error) {
	url := fmt.Sprintf("%s/gmail/v1/users/me/messages/%s?format=full", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get message %s: %s: %s", id, resp.Status, raw)
	}
	m, err := ParseMessage(raw)
	if err != nil {
		return nil, err
	}
	from, subject, body := ExtractFields(m)
	e := &Email{ID: m.Id, From: from, Subject: subject, Body: body, Snippet: m.Snippet}
	if e.ID == "" {
		e.ID = id
	}
	return e, nil
}
