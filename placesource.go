package nandoku

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const placeClientTimeout = 10 * time.Second

// PlaceClient fetches place records from the place-data API.
type PlaceClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewPlaceClient creates a client for the given API base URL.
func NewPlaceClient(endpoint string) *PlaceClient {
	return &PlaceClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: placeClientTimeout},
	}
}

// Place fetches the record for a specific place id. An unknown id yields
// ErrPlaceNotFound; any other failure wraps ErrPlaceUnavailable.
func (c *PlaceClient) Place(ctx context.Context, id string) (*PlaceRecord, error) {
	place, err := c.fetch(ctx, c.endpoint+"/"+id)
	if err != nil {
		return nil, err
	}
	if place.ID == "" {
		place.ID = id
	}
	return place, nil
}

// RandomPlace fetches a record for a randomly selected place.
func (c *PlaceClient) RandomPlace(ctx context.Context) (*PlaceRecord, error) {
	return c.fetch(ctx, c.endpoint+"/random")
}

func (c *PlaceClient) fetch(ctx context.Context, url string) (*PlaceRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrPlaceNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrPlaceUnavailable, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceUnavailable, err)
	}

	var place PlaceRecord
	if err := json.Unmarshal(body, &place); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrPlaceUnavailable, err)
	}
	if place.Name == "" || place.Yomi == "" {
		return nil, fmt.Errorf("%w: incomplete record from %s", ErrPlaceUnavailable, url)
	}
	return &place, nil
}
