package bondsio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/internal/model"
)

// Activities returns one page of the admin activity list. The backend only
// reports a total; pagination is derived by the caller.
// GET /api/activity/admin/list?page&limit
func (c *Client) Activities(ctx context.Context, token string, page, limit int) (*model.ActivityListData, error) {
	return c.activityPage(ctx, token, c.BaseURL+"/api/activity/admin/list", page, limit)
}

// TrendingActivities returns one page of trending activities.
// GET /api/activity/admin/trending?page&limit
func (c *Client) TrendingActivities(ctx context.Context, token string, page, limit int) (*model.ActivityListData, error) {
	return c.activityPage(ctx, token, c.BaseURL+"/api/activity/admin/trending", page, limit)
}

func (c *Client) activityPage(ctx context.Context, token, endpoint string, page, limit int) (*model.ActivityListData, error) {
	endpoint += "?" + url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "activities: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "activities request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "activities: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    model.ActivityListData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "activities: unable to decode response")
	}
	return &out.Data, nil
}

// Activity returns the admin detail view of a single activity.
// GET /api/activity/admin/{id}
func (c *Client) Activity(ctx context.Context, token string, id int) (*model.ActivityDetail, error) {
	endpoint := c.BaseURL + "/api/activity/admin/" + strconv.Itoa(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "activity: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "activity request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "activity: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                  `json:"code"`
		Message string               `json:"message"`
		Data    model.ActivityDetail `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "activity: unable to decode response")
	}
	return &out.Data, nil
}
