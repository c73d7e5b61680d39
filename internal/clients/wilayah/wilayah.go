package wilayah

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Region is one row of the external province/city/district/subdistrict
// directory. The directory is read-only reference data: registration
// submissions copy the Name string and never keep the ID.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (c *Client) Provinces(ctx context.Context) ([]Region, error) {
	return c.get(ctx, "/provinces.json")
}

func (c *Client) Regencies(ctx context.Context, provinceID string) ([]Region, error) {
	if provinceID == "" {
		return nil, errors.New("missing province id")
	}
	return c.get(ctx, "/regencies/"+provinceID+".json")
}

func (c *Client) Districts(ctx context.Context, regencyID string) ([]Region, error) {
	if regencyID == "" {
		return nil, errors.New("missing regency id")
	}
	return c.get(ctx, "/districts/"+regencyID+".json")
}

func (c *Client) Villages(ctx context.Context, districtID string) ([]Region, error) {
	if districtID == "" {
		return nil, errors.New("missing district id")
	}
	return c.get(ctx, "/villages/"+districtID+".json")
}

func (c *Client) get(ctx context.Context, path string) ([]Region, error) {
	if c.baseURL == "" {
		return nil, errors.New("missing wilayah base url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wilayah api returned http %d", resp.StatusCode)
	}

	var regions []Region
	if err := json.Unmarshal(body, &regions); err != nil {
		return nil, fmt.Errorf("wilayah api decode: %w", err)
	}
	return regions, nil
}
