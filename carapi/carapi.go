// Package carapi is a client for the remote car-listing REST API. The API
// owns all listing, authentication and persistence; this package only moves
// requests and decodes responses.
package carapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/autohub/site/models"
)

const (
	pathCars  = "/api/v1/cars"
	pathLogin = "/api/v1/auth/login/email"
)

// ErrNotFound is returned when a car lookup yields no record.
var ErrNotFound = errors.New("car not found")

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{Status: status, Message: payload.Message}
}

// IsNotFound reports whether err means the requested car does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == fasthttp.StatusNotFound
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
}

// New returns a client for the API rooted at baseURL. Every request is bounded
// by timeout or by the context deadline, whichever comes first.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http: &fasthttp.Client{
			Name:                "autohub-site",
			MaxConnsPerHost:     64,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
	}
}

// ListCars fetches one page of listings. Pages start at 1.
func (c *Client) ListCars(ctx context.Context, page int) (*models.CarPage, error) {
	if page < 1 {
		page = 1
	}
	var p models.CarPage
	path := pathCars + "?page=" + strconv.Itoa(page)
	if err := c.do(ctx, "list_cars", fasthttp.MethodGet, path, "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCar fetches a single car by its product identifier.
func (c *Client) GetCar(ctx context.Context, id string) (*models.CarDetails, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var resp struct {
		Data *models.CarDetails `json:"data"`
	}
	if err := c.do(ctx, "get_car", fasthttp.MethodGet, pathCars+"/"+url.PathEscape(id), "", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, ErrNotFound
	}
	return resp.Data, nil
}

// CreateCar submits a new car on behalf of the holder of accessToken.
func (c *Client) CreateCar(ctx context.Context, accessToken string, car models.NewCar) error {
	return c.do(ctx, "create_car", fasthttp.MethodPost, pathCars, accessToken, car, nil)
}

// Login exchanges email and password for access and refresh tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var res models.LoginResult
	if err := c.do(ctx, "login", fasthttp.MethodPost, pathLogin, "", body, &res); err != nil {
		return nil, err
	}
	if res.Tokens.Access.Token == "" {
		return nil, errors.New("login response carried no access token")
	}
	return &res, nil
}

// Ping checks that the API host answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/")
	req.Header.SetMethod(fasthttp.MethodHead)

	start := time.Now()
	err := c.send(ctx, req, resp)
	observe("ping", resp.StatusCode(), err, time.Since(start))
	if err != nil {
		return fmt.Errorf("ping %s: %w", c.baseURL, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path, bearer string, body, out any) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if bearer != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+bearer)
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(data)
	}

	start := time.Now()
	err := c.send(ctx, req, resp)
	elapsed := time.Since(start)
	observe(op, resp.StatusCode(), err, elapsed)

	if err != nil {
		zap.S().Warnf("[API] %s %s failed after %s: %v", method, path, elapsed, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	zap.S().Debugf("[API] %s %s -> %d in %s", method, path, status, elapsed)
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return newAPIError(status, resp.Body())
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode %s response: %w", op, err)
		}
	}
	return nil
}

// send applies the context deadline when it is tighter than the client timeout.
func (c *Client) send(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < c.timeout {
		return c.http.DoDeadline(req, resp, deadline)
	}
	return c.http.DoTimeout(req, resp, c.timeout)
}
