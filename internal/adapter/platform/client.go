// Package platform is the outbound HTTP adapter for the external
// advertising platform. It implements the campaign registry, spend feed and
// budget mutation ports against the platform's JSON API. Every call carries
// its own timeout so a stuck request cannot hold an evaluation beyond the
// lease.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

// Client talks to the ads platform API. It implements port.CampaignRegistry,
// port.SpendFeed and port.BudgetPlatform.
type Client struct {
	base    url.URL
	token   string
	timeout time.Duration
	http    *http.Client
}

// NewClient builds a platform client. timeout applies per call.
func NewClient(base url.URL, token string, timeout time.Duration) *Client {
	return &Client{
		base:    base,
		token:   token,
		timeout: timeout,
		http:    &http.Client{},
	}
}

type campaignDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	DailyBudget int64     `json:"daily_budget"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d campaignDTO) toDomain() domain.Campaign {
	return domain.Campaign{
		ID:          d.ID,
		Name:        d.Name,
		Status:      d.Status,
		DailyBudget: d.DailyBudget,
		CreatedAt:   d.CreatedAt,
	}
}

// ListActiveCampaigns returns all campaigns the platform reports as active.
func (c *Client) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var dtos []campaignDTO
	if err := c.get(ctx, "/v1/campaigns?status=active", &dtos); err != nil {
		return nil, err
	}
	campaigns := make([]domain.Campaign, 0, len(dtos))
	for _, d := range dtos {
		campaigns = append(campaigns, d.toDomain())
	}
	return campaigns, nil
}

// GetCampaign returns one campaign, or nil when the platform does not know
// the id.
func (c *Client) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var dto campaignDTO
	err := c.get(ctx, fmt.Sprintf("/v1/campaigns/%d", id), &dto)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	camp := dto.toDomain()
	return &camp, nil
}

// FetchSpend pulls the latest cost figures for a campaign.
func (c *Client) FetchSpend(ctx context.Context, campaignID int64) (*port.SpendFigures, error) {
	var dto struct {
		MTDSpend   int64     `json:"mtd_spend"`
		DailySpend int64     `json:"daily_spend"`
		Confidence float64   `json:"confidence"`
		ReportedAt time.Time `json:"reported_at"`
	}
	if err := c.get(ctx, fmt.Sprintf("/v1/campaigns/%d/spend", campaignID), &dto); err != nil {
		return nil, err
	}
	return &port.SpendFigures{
		CampaignID:       campaignID,
		MTDSpend:         dto.MTDSpend,
		DailySpend:       dto.DailySpend,
		SourceConfidence: dto.Confidence,
		ReportedAt:       dto.ReportedAt,
	}, nil
}

// ApplyDailyBudget sets a campaign's daily budget on the platform.
func (c *Client) ApplyDailyBudget(ctx context.Context, campaignID int64, newDaily int64, effectiveAt time.Time) error {
	body := map[string]interface{}{
		"daily_budget": newDaily,
		"effective_at": effectiveAt.UTC().Format(time.RFC3339),
	}
	return c.post(ctx, fmt.Sprintf("/v1/campaigns/%d/daily_budget", campaignID), body)
}

// PauseCampaign stops delivery for a campaign.
func (c *Client) PauseCampaign(ctx context.Context, campaignID int64) error {
	return c.post(ctx, fmt.Sprintf("/v1/campaigns/%d/pause", campaignID), nil)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	u := c.base
	ref, err := url.Parse(path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, u.ResolveReference(ref).String(), &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// timeouts and connection failures are retryable next cycle
		return fmt.Errorf("%s %s: %v: %w", method, path, err, port.ErrTransientFeed)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, port.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", method, path, port.ErrCampaignInactive)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, port.ErrTransientFeed)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode: %w", method, path, err)
		}
	}
	return nil
}
