// Package client talks to the contract API over HTTP. The terminal dashboard
// uses it when pointed at a running server instead of a local store.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AnTengye/contractdash/form"
	"github.com/AnTengye/contractdash/model"
	"github.com/go-resty/resty/v2"
)

// ErrNotFound is returned when the server has no contract with the given ID.
var ErrNotFound = errors.New("contract not found")

// DefaultTimeout applies to every request unless overridden.
const DefaultTimeout = 10 * time.Second

// Client is a thin wrapper over the contract REST API.
type Client struct {
	http *resty.Client
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string) *Client {
	return NewWithResty(resty.New().SetTimeout(DefaultTimeout), baseURL)
}

// NewWithResty lets callers supply a preconfigured resty client.
func NewWithResty(rc *resty.Client, baseURL string) *Client {
	rc.SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{http: rc}
}

type listResponse struct {
	Contracts []model.Contract `json:"contracts"`
	Total     int              `json:"total"`
}

type mutationResponse struct {
	Contract model.Contract `json:"contract"`
	Message  string         `json:"message"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// List returns the full collection in insertion order.
func (c *Client) List(ctx context.Context) ([]model.Contract, error) {
	return c.Search(ctx, "")
}

// Search returns the contracts whose client name or ID contains query.
func (c *Client) Search(ctx context.Context, query string) ([]model.Contract, error) {
	var out listResponse
	req := c.http.R().SetContext(ctx).SetResult(&out).SetError(&errorResponse{})
	if query != "" {
		req.SetQueryParam("q", query)
	}

	resp, err := req.Get("/api/contracts")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return out.Contracts, nil
}

// Get fetches a single contract.
func (c *Client) Get(ctx context.Context, id string) (model.Contract, error) {
	var out model.Contract
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		SetError(&errorResponse{}).
		Get("/api/contracts/{id}")
	if err := check(resp, err); err != nil {
		return model.Contract{}, fmt.Errorf("get contract %s: %w", id, err)
	}
	return out, nil
}

// Update submits the edit form values for id. Nil patch fields are filled
// from the current record since the server validates the full form.
func (c *Client) Update(ctx context.Context, id string, patch model.ContractPatch) (model.Contract, error) {
	current, err := c.Get(ctx, id)
	if err != nil {
		return model.Contract{}, err
	}
	merged := patch.Apply(current)

	var out mutationResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(map[string]any{
			form.FieldClientName: merged.ClientName,
			form.FieldStatus:     string(merged.Status),
			form.FieldValue:      merged.Value,
		}).
		SetResult(&out).
		SetError(&errorResponse{}).
		Put("/api/contracts/{id}")
	if err := check(resp, err); err != nil {
		return model.Contract{}, fmt.Errorf("update contract %s: %w", id, err)
	}
	return out.Contract, nil
}

// Create submits a new contract and returns it as stored by the server.
func (c *Client) Create(ctx context.Context, in model.NewContract) (model.Contract, error) {
	var out mutationResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			form.FieldClientName: in.ClientName,
			form.FieldValue:      in.Value,
			form.FieldStartDate:  in.StartDate.String(),
		}).
		SetResult(&out).
		SetError(&errorResponse{}).
		Post("/api/contracts")
	if err := check(resp, err); err != nil {
		return model.Contract{}, fmt.Errorf("create contract: %w", err)
	}
	return out.Contract, nil
}

// check turns transport failures and error responses into Go errors.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}

	body, _ := resp.Error().(*errorResponse)
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode() == http.StatusBadRequest && body != nil && len(body.Fields) > 0:
		return &form.ValidationError{Fields: body.Fields}
	case body != nil && body.Error != "":
		return fmt.Errorf("api error %d: %s", resp.StatusCode(), body.Error)
	}
	return errors.New("api error " + strconv.Itoa(resp.StatusCode()))
}
