// Package client is a typed HTTP client for the meal diary API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	authdomain "dietdiary-backend/internal/auth/domain"
	authdto "dietdiary-backend/internal/auth/dto"
	mealdomain "dietdiary-backend/internal/meal/domain"
	mealdto "dietdiary-backend/internal/meal/dto"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response decoded from the {success,message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// TokenSource supplies the bearer token for each request. An empty token
// sends no Authorization header.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns itself.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     StaticToken(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*authdto.RegisterResponse, error) {
	var res authdto.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", authdto.RegisterRequest{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*authdto.LoginResponse, error) {
	var res authdto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", authdto.LoginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*authdomain.User, error) {
	var res authdto.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/logout", nil, nil)
}

func (c *Client) AddMeal(ctx context.Context, req mealdto.AddMealRequest) (*mealdomain.Meal, error) {
	var res mealdto.MealResponse
	if err := c.do(ctx, http.MethodPost, "/api/meals", req, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) ListMeals(ctx context.Context) ([]*mealdomain.Meal, error) {
	var res mealdto.MealListResponse
	if err := c.do(ctx, http.MethodGet, "/api/meals", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ListMealsByDate accepts a calendar day ("2024-05-21") or RFC 3339 timestamp.
func (c *Client) ListMealsByDate(ctx context.Context, date string) ([]*mealdomain.Meal, error) {
	var res mealdto.MealListResponse
	if err := c.do(ctx, http.MethodGet, "/api/meals/date/"+url.PathEscape(date), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// TodayMeals lists the meals of the local calendar day containing now.
func (c *Client) TodayMeals(ctx context.Context, now time.Time) ([]*mealdomain.Meal, error) {
	start, _ := mealdomain.DayWindow(now)
	return c.ListMealsByDate(ctx, start.Format(time.RFC3339))
}

func (c *Client) GetMeal(ctx context.Context, id string) (*mealdomain.Meal, error) {
	var res mealdto.MealResponse
	if err := c.do(ctx, http.MethodGet, "/api/meals/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) UpdateMeal(ctx context.Context, id string, req mealdto.UpdateMealRequest) (*mealdomain.Meal, error) {
	var res mealdto.MealResponse
	if err := c.do(ctx, http.MethodPut, "/api/meals/"+url.PathEscape(id), req, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) DeleteMeal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/meals/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
