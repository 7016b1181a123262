// Package client 是营地报名 HTTP API 的 Go 客户端
package client

import (
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError 非 2xx 响应
type APIError struct {
	Status  int
	Message string   `json:"error"`
	Errors  []string `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("status %d: %s", e.Status, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

type Client struct {
	http *resty.Client
}

type CamperInput struct {
	Name *string `json:"name,omitempty"`
	Age  *int    `json:"age,omitempty"`
}

type SignupInput struct {
	CamperID   uint `json:"camper_id"`
	ActivityID uint `json:"activity_id"`
	Time       int  `json:"time"`
}

func New(baseURL string) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json").
		SetError(&APIError{})
	if tracing.IsEnabled() {
		tracing.SetupRestyTracing(r)
	}
	return &Client{http: r}
}

func (c *Client) ListCampers(ctx context.Context) ([]model.CamperBrief, error) {
	var out []model.CamperBrief
	err := c.do(ctx, resty.MethodGet, "/campers", nil, &out)
	return out, err
}

func (c *Client) GetCamper(ctx context.Context, id uint) (*model.CamperDetail, error) {
	var out model.CamperDetail
	if err := c.do(ctx, resty.MethodGet, "/campers/"+strconv.FormatUint(uint64(id), 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCamper(ctx context.Context, name string, age int) (*model.CamperBrief, error) {
	var out model.CamperBrief
	if err := c.do(ctx, resty.MethodPost, "/campers", CamperInput{Name: &name, Age: &age}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCamper 只发送非 nil 字段
func (c *Client) UpdateCamper(ctx context.Context, id uint, in CamperInput) (*model.CamperBrief, error) {
	var out model.CamperBrief
	if err := c.do(ctx, resty.MethodPatch, "/campers/"+strconv.FormatUint(uint64(id), 10), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListActivities(ctx context.Context) ([]model.ActivityBrief, error) {
	var out []model.ActivityBrief
	err := c.do(ctx, resty.MethodGet, "/activities", nil, &out)
	return out, err
}

func (c *Client) DeleteActivity(ctx context.Context, id uint) error {
	return c.do(ctx, resty.MethodDelete, "/activities/"+strconv.FormatUint(uint64(id), 10), nil, nil)
}

func (c *Client) CreateSignup(ctx context.Context, in SignupInput) (*model.SignupDetail, error) {
	var out model.SignupDetail
	if err := c.do(ctx, resty.MethodPost, "/signups", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr, ok := resp.Error().(*APIError)
		if !ok || apiErr == nil {
			apiErr = &APIError{Message: resp.Status()}
		}
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}
