package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/client/models"
)

// HTTPClient talks to the server's JSON views. The session cookie lives in
// a cookie jar, so one HTTPClient is one server-side session.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// send performs the request and turns transport failures into
// ErrUnavailable and 4xx/5xx replies into *APIError. The caller closes the
// body of a successful response.
func (c *HTTPClient) send(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
		if body.Error == "" {
			body.Error = resp.Status
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) download(ctx context.Context, path string, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = io.Copy(w, resp.Body)
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/healthz", nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	var u models.User
	in := map[string]string{"email": email, "password": password, "role": role}
	if err := c.doJSON(ctx, http.MethodPost, "/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	var id models.Identity
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/login", in, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil)
}

func (c *HTTPClient) LogVitals(ctx context.Context, in models.VitalsInput) (*models.LogResult, error) {
	var res models.LogResult
	if err := c.doJSON(ctx, http.MethodPost, "/log", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.PersonalDashboard, error) {
	var d models.PersonalDashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) Admin(ctx context.Context) (*models.AdminDashboard, error) {
	var d models.AdminDashboard
	if err := c.doJSON(ctx, http.MethodGet, "/admin", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) Thresholds(ctx context.Context) (*models.Thresholds, error) {
	var th models.Thresholds
	if err := c.doJSON(ctx, http.MethodGet, "/thresholds", nil, &th); err != nil {
		return nil, err
	}
	return &th, nil
}

func (c *HTTPClient) SetThresholds(ctx context.Context, th models.Thresholds) (*models.Thresholds, error) {
	var out models.Thresholds
	if err := c.doJSON(ctx, http.MethodPost, "/thresholds", th, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ExportMine(ctx context.Context, w io.Writer) error {
	return c.download(ctx, "/dashboard/export.csv", w)
}

func (c *HTTPClient) ExportAll(ctx context.Context, w io.Writer) error {
	return c.download(ctx, "/admin/export.csv", w)
}

func (c *HTTPClient) Archive(ctx context.Context) (*models.ArchiveResult, error) {
	var res models.ArchiveResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/export/archive", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
