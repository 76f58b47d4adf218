// Package tmdb looks up canonical English titles on The Movie Database.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/mediaferry/internal/port"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type searchResponse struct {
	Results []struct {
		Title string `json:"title"`
		Name  string `json:"name"`
	} `json:"results"`
}

// SearchMovie returns the title of the best match, or "" when nothing matches.
func (c *Client) SearchMovie(ctx context.Context, title string, year int) (string, error) {
	resp, err := c.search(ctx, "movie", title, "year", year)
	if err != nil || len(resp.Results) == 0 {
		return "", err
	}
	return resp.Results[0].Title, nil
}

func (c *Client) SearchSeries(ctx context.Context, title string, year int) (string, error) {
	resp, err := c.search(ctx, "tv", title, "first_air_date_year", year)
	if err != nil || len(resp.Results) == 0 {
		return "", err
	}
	return resp.Results[0].Name, nil
}

func (c *Client) search(ctx context.Context, catalog, title, yearParam string, year int) (*searchResponse, error) {
	q := url.Values{}
	q.Set("query", title)
	q.Set("include_adult", "false")
	q.Set("language", "en-US")
	q.Set("page", "1")
	if year > 0 {
		q.Set(yearParam, strconv.Itoa(year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/"+catalog+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s search: %w", catalog, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", catalog, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s search: unexpected status %d", catalog, resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s search: %w", catalog, err)
	}
	return &out, nil
}

var _ port.TitleLookup = (*Client)(nil)
