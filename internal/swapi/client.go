package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const maxPages = 100

// Client reads the public SWAPI catalogue.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("accept", "application/json")
	return &Client{http: client}
}

type page[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

func (c *Client) Planets(ctx context.Context) ([]PlanetRecord, error) {
	return fetchAll[PlanetRecord](ctx, c.http, "/planets/")
}

func (c *Client) People(ctx context.Context) ([]PersonRecord, error) {
	return fetchAll[PersonRecord](ctx, c.http, "/people/")
}

// fetchAll follows the next links starting at first until the last page.
func fetchAll[T any](ctx context.Context, client *resty.Client, first string) ([]T, error) {
	var out []T
	next := first
	for i := 0; next != ""; i++ {
		if i == maxPages {
			return nil, fmt.Errorf("swapi: more than %d pages under %s", maxPages, first)
		}

		resp, err := client.R().SetContext(ctx).Get(next)
		if err != nil {
			return nil, fmt.Errorf("swapi: GET %s: %w", next, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("swapi: GET %s: response status %d", next, resp.StatusCode())
		}

		var p page[T]
		if err := json.Unmarshal(resp.Body(), &p); err != nil {
			return nil, fmt.Errorf("swapi: decode %s: %w", next, err)
		}
		out = append(out, p.Results...)

		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}
	return out, nil
}
