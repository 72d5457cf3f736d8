package bondsio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/internal/model"
)

// Login exchanges admin credentials for a bearer token.
// POST /api/admin/login
func (c *Client) Login(ctx context.Context, credentials model.LoginRequest) (*model.LoginData, error) {
	payload, err := json.Marshal(credentials)
	if err != nil {
		return nil, errors.Wrap(err, "login: unable to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/admin/login", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "login: unable to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "login: unable to read response")
	}
	if !ok(resp.StatusCode) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var out struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    model.LoginData `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "login: unable to decode response")
	}
	return &out.Data, nil
}
