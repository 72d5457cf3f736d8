package bondsio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/internal/model"
)

// TotalUsers returns the platform-wide user count.
// GET /api/user/analytics/total
func (c *Client) TotalUsers(ctx context.Context, token string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/user/analytics/total", nil)
	if err != nil {
		return 0, errors.Wrap(err, "total users: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "total users request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrap(err, "total users: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return 0, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                  `json:"code"`
		Message string               `json:"message"`
		Data    model.TotalUsersData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, errors.Wrap(err, "total users: unable to decode response")
	}
	return out.Data.Total, nil
}

// VerificationStats returns the email/phone verification breakdown.
// GET /api/user/analytics/users/verification
func (c *Client) VerificationStats(ctx context.Context, token string) (*model.VerificationData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/user/analytics/users/verification", nil)
	if err != nil {
		return nil, errors.Wrap(err, "verification stats: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "verification stats request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "verification stats: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    model.VerificationData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "verification stats: unable to decode response")
	}
	return &out.Data, nil
}

// DemographyStats returns the age/gender/country breakdown. Counts arrive as
// strings and are parsed at this boundary.
// GET /api/user/analytics/users/demography
func (c *Client) DemographyStats(ctx context.Context, token string) (*model.DemographyData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/user/analytics/users/demography", nil)
	if err != nil {
		return nil, errors.Wrap(err, "demography stats: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "demography stats request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "demography stats: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                  `json:"code"`
		Message string               `json:"message"`
		Data    model.DemographyData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "demography stats: unable to decode response")
	}
	return &out.Data, nil
}

// AnalyticsOverview returns the signups/active/churned time series for the
// given period.
// GET /api/user/analytics/overview?period=daily|weekly|monthly
func (c *Client) AnalyticsOverview(ctx context.Context, token string, period model.Period) (*model.OverviewData, error) {
	if !period.Valid() {
		return nil, errors.Errorf("overview: invalid period %q", period)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/user/analytics/overview?period="+string(period), nil)
	if err != nil {
		return nil, errors.Wrap(err, "overview: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "overview request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "overview: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                `json:"code"`
		Message string             `json:"message"`
		Data    model.OverviewData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "overview: unable to decode response")
	}
	return &out.Data, nil
}
