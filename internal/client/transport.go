package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxErrorBody = 4096

// doGet issues the authenticated GET and returns the raw body. Errors follow
// the taxonomy: *UpstreamError for non-2xx, a wrapped "unable to connect" for
// transport failures, and the bare context error for aborts.
func (c *Controller) doGet(ctx context.Context, path string, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIBaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("unable to connect: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &UpstreamError{Status: res.StatusCode, Detail: errorDetail(body, res.StatusCode)}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("unable to connect: %w", err)
	}
	return body, nil
}
