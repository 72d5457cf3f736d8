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

// Users returns one page of the admin user list.
// GET /api/user/admin-list?page&limit
func (c *Client) Users(ctx context.Context, token string, page, limit int) (*model.UserListData, error) {
	endpoint := c.BaseURL + "/api/user/admin-list?" + url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "users: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "users request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "users: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int                `json:"code"`
		Message string             `json:"message"`
		Data    model.UserListData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "users: unable to decode response")
	}
	return &out.Data, nil
}

// UserProfile returns the admin view of a single user.
// GET /api/user/admin/profile/{userId}
func (c *Client) UserProfile(ctx context.Context, token, userID string) (*model.UserProfile, error) {
	endpoint := c.BaseURL + "/api/user/admin/profile/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "user profile: unable to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "user profile request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "user profile: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    model.UserProfile `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "user profile: unable to decode response")
	}
	return &out.Data, nil
}
