package rentora

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	headerUserAgent     = "User-Agent"
	contentTypeJSON     = "application/json"
	contentTypeText     = "text/plain"
	sdkUserAgent        = "rentora-go/1.0.0"
)

// doRequest performs an HTTP request with credential injection and global
// 401 handling.
//
// Before the request goes out, the current access token is read from the
// session store; if present it is attached as a Bearer header, otherwise
// the request is sent unauthenticated and the backend decides. After the
// response arrives, a 401 clears the session store and fires the
// unauthorized handler exactly once; every other failure status is
// classified and returned to the caller untouched. The client never
// retries on its own.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, result interface{}) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set(headerUserAgent, sdkUserAgent)
	if body != nil {
		req.Header.Set(headerContentType, contentType)
	}
	if s := c.store.Read(); s != nil && s.AccessToken != "" {
		req.Header.Set(headerAuthorization, "Bearer "+s.AccessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(path, resp.StatusCode, respBody)
	}
	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// handleUnauthorized is the single 401 side-effect site: clear the
// session, tell the host to navigate to login, surface the classified
// error. Clearing touches only local state, so the side effect cannot
// cascade into another authenticated call.
func (c *Client) handleUnauthorized(path string, statusCode int, body []byte) error {
	c.logger.Warn().
		Str("path", path).
		Msg("unauthorized response, clearing session")

	if err := c.store.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to clear session")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return parseError(statusCode, body)
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, query, nil, "", result)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, result)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, result)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}
	return c.doRequest(ctx, method, path, nil, bodyReader, contentTypeJSON, result)
}

// sendText sends a bare string body with Content-Type: text/plain. The
// status-transition endpoints expect the enum value byte-for-byte, not a
// JSON object wrapping it.
func (c *Client) sendText(ctx context.Context, method, path, body string) error {
	return c.doRequest(ctx, method, path, nil, strings.NewReader(body), contentTypeText, nil)
}

// upload sends a multipart form with a single "file" field.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, result interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish upload form: %w", err)
	}
	return c.doRequest(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType(), result)
}
