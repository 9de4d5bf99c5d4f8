package assistant

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const contentType = "application/json"

type apiError struct {
	Error string `json:"error"`
}

// FilePart describes a file uploaded as part of a multipart request.
type FilePart struct {
	Field string
	Path  string
}

func (c *Client) postJSON(url string, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

func (c *Client) getJSON(url string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.do(req, target)
}

func (c *Client) postMultipart(url string, fields map[string]string, files []FilePart, target any) error {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for key, val := range fields {
		field, err := w.CreateFormField(key)
		if err != nil {
			return err
		}

		if _, err = io.Copy(field, strings.NewReader(val)); err != nil {
			return err
		}
	}

	for _, part := range files {
		file, err := os.Open(part.Path)
		if err != nil {
			return err
		}

		form, err := w.CreateFormFile(part.Field, filepath.Base(part.Path))
		if err != nil {
			file.Close()
			return err
		}

		if _, err = io.Copy(form, file); err != nil {
			file.Close()
			return err
		}
		file.Close()
	}
	w.Close()

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, url, &b)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return c.responseError(resp, data)
	}

	if target == nil {
		return nil
	}

	return json.Unmarshal(data, target)
}

// responseError builds the error surfaced to the user for a non-success
// status. A backend-supplied error message takes precedence over a
// generic status-derived one.
func (c *Client) responseError(resp *http.Response, body []byte) error {
	var backendErr apiError
	if err := json.Unmarshal(body, &backendErr); err == nil && strings.TrimSpace(backendErr.Error) != "" {
		return errors.New(strings.TrimSpace(backendErr.Error))
	}

	return fmt.Errorf("server error: %s", resp.Status)
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("User-Agent", c.UserAgent)

	return req
}
