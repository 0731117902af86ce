package phishnet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Phish.net v5 REST client. Every endpoint shares the
// same envelope: {"error_message": "...", "data": [...]}.
type Client struct {
	APIKey  string
	BaseURL string
	httpDo  *http.Client
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.phish.net/v5"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type envelope struct {
	ErrorMessage string          `json:"error_message"`
	Data         json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if c.APIKey == "" {
		return errors.New("phish.net api key is empty")
	}
	u := fmt.Sprintf("%s/%s?apikey=%s",
		strings.TrimRight(c.BaseURL, "/"), endpoint, url.QueryEscape(c.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return fmt.Errorf("phish.net request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("phish.net http %d for %s", resp.StatusCode, endpoint)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode phish.net response: %w", err)
	}
	if env.ErrorMessage != "" {
		return fmt.Errorf("phish.net api error: %s", env.ErrorMessage)
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// ShowsByYear returns every show played in the given year.
func (c *Client) ShowsByYear(ctx context.Context, year int) ([]Show, error) {
	var shows []Show
	if err := c.get(ctx, fmt.Sprintf("shows/showyear/%d.json", year), &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Venues returns the full venue catalogue.
func (c *Client) Venues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := c.get(ctx, "venues.json", &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// Songs returns the full song catalogue.
func (c *Client) Songs(ctx context.Context) ([]Song, error) {
	var songs []Song
	if err := c.get(ctx, "songs.json", &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

// SetlistByDate returns the flat list of song slots for the show on the given
// date (YYYY-MM-DD).
func (c *Client) SetlistByDate(ctx context.Context, showDate string) ([]SetlistSong, error) {
	var songs []SetlistSong
	if err := c.get(ctx, fmt.Sprintf("setlists/showdate/%s.json", showDate), &songs); err != nil {
		return nil, err
	}
	return songs, nil
}
