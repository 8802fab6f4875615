package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrUnavailable = errors.New("directory service unavailable")
)

// Client talks to the doctor directory service over JSON HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) AllSpecialties(ctx context.Context) ([]Specialty, error) {
	var out []Specialty
	if err := c.getJSON(ctx, "/specialties", &out); err != nil {
		return nil, fmt.Errorf("load specialties: %w", err)
	}
	return out, nil
}

func (c *Client) AllDoctors(ctx context.Context) ([]Doctor, error) {
	var out []Doctor
	if err := c.getJSON(ctx, "/doctors", &out); err != nil {
		return nil, fmt.Errorf("load doctors: %w", err)
	}
	return out, nil
}

func (c *Client) DoctorsBySpecialty(ctx context.Context, specialty string) ([]Doctor, error) {
	var out []Doctor
	path := "/doctors?specialty=" + url.QueryEscape(specialty)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("load doctors for specialty %q: %w", specialty, err)
	}
	return out, nil
}

// LoadCatalog issues the specialties and doctors requests concurrently
// and joins both. The join is all-or-nothing: if either request fails
// neither partial result is returned.
func (c *Client) LoadCatalog(ctx context.Context) (*Catalog, error) {
	var cat Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		specs, err := c.AllSpecialties(gctx)
		if err != nil {
			return err
		}
		cat.Specialties = specs
		return nil
	})
	g.Go(func() error {
		docs, err := c.AllDoctors(gctx)
		if err != nil {
			return err
		}
		cat.Doctors = docs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Ping reports whether the directory answers at all. Used by readiness.
func (c *Client) Ping(ctx context.Context) error {
	var out []Specialty
	return c.getJSON(ctx, "/specialties", &out)
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d from %s", ErrUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}
