package bondsio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/internal/model"
)

// ReportedBonds returns the bonds with outstanding reports.
// GET /api/bonds/admin/reported-bonds
func (c *Client) ReportedBonds(ctx context.Context, token string) (*model.ReportedBondsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/bonds/admin/reported-bonds", nil)
	if err != nil {
		return nil, errors.Wrap(err, "reported bonds: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "reported bonds request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reported bonds: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                     `json:"code"`
		Message string                  `json:"message"`
		Data    model.ReportedBondsData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "reported bonds: unable to decode response")
	}
	return &out.Data, nil
}

// BondReports returns the reports filed against one bond.
// GET /api/bonds/admin/reports/{bondId}
func (c *Client) BondReports(ctx context.Context, token string, bondID int) (*model.BondReportListData, error) {
	endpoint := c.BaseURL + "/api/bonds/admin/reports/" + strconv.Itoa(bondID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "bond reports: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "bond reports request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "bond reports: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                      `json:"code"`
		Message string                   `json:"message"`
		Data    model.BondReportListData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "bond reports: unable to decode response")
	}
	return &out.Data, nil
}

// ReviewBondReport proposes a new status (and optional notes) for a bond
// report. Unlike the activity variant this endpoint takes a multipart body
// with fields "status" and "notes"; the asymmetry is a backend contract and
// must be preserved.
// PATCH /api/bonds/admin/reports/{reportId}
func (c *Client) ReviewBondReport(ctx context.Context, token string, reportID int, review model.ReviewRequest) (*model.BondReport, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("status", string(review.Status)); err != nil {
		return nil, errors.Wrap(err, "review bond report: unable to write form")
	}
	if review.Notes != "" {
		if err := form.WriteField("notes", review.Notes); err != nil {
			return nil, errors.Wrap(err, "review bond report: unable to write form")
		}
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(err, "review bond report: unable to finalise form")
	}

	endpoint := c.BaseURL + "/api/bonds/admin/reports/" + strconv.Itoa(reportID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, &buf)
	if err != nil {
		return nil, errors.Wrap(err, "review bond report: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "review bond report request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "review bond report: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Data    model.BondReport `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "review bond report: unable to decode response")
	}
	return &out.Data, nil
}
