package bondsio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/internal/model"
)

// ActivityReports returns the full activity report set. Not paginated.
// GET /api/activity/admin/reports
func (c *Client) ActivityReports(ctx context.Context, token string) (*model.ActivityReportListData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/activity/admin/reports", nil)
	if err != nil {
		return nil, errors.Wrap(err, "activity reports: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "activity reports request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "activity reports: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                          `json:"code"`
		Message string                       `json:"message"`
		Data    model.ActivityReportListData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "activity reports: unable to decode response")
	}
	return &out.Data, nil
}

// ReviewActivityReport proposes a new status (and optional notes) for an
// activity report. This variant takes a JSON body.
// PATCH /api/activity/admin/reports/{id}/status
func (c *Client) ReviewActivityReport(ctx context.Context, token string, reportID int, review model.ReviewRequest) (*model.ActivityReport, error) {
	payload, err := json.Marshal(review)
	if err != nil {
		return nil, errors.Wrap(err, "review activity report: unable to encode request")
	}

	endpoint := c.BaseURL + "/api/activity/admin/reports/" + strconv.Itoa(reportID) + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "review activity report: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "review activity report request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "review activity report: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                  `json:"code"`
		Message string               `json:"message"`
		Data    model.ActivityReport `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "review activity report: unable to decode response")
	}
	return &out.Data, nil
}
