// Package instawp provides a client for the InstaWP v2 API
package instawp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/logger"
	"github.com/celestiaorg/instawp-action/internal/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Operation names used in errors and logs
const (
	opCreateSiteGit = "createSiteGit"
	opGetTaskStatus = "getTaskStatus"
)

// Client is the subset of the InstaWP API the action uses
type Client interface {
	// CreateSiteGit starts creating a site from a git-backed template
	CreateSiteGit(ctx context.Context, req types.CreateSiteGitRequest) (*types.CreateSiteGitResponse, error)

	// GetTaskStatus returns the current state of a provisioning task
	GetTaskStatus(ctx context.Context, taskID string) (*types.TaskStatusResponse, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Token is sent as a bearer token on every request
	Token string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: constants.InstaWPAPIBase,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	token   string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (*APIClient, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = constants.InstaWPAPIBase
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q is not absolute", baseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   opts.Token,
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// The context deadline wins when it is shorter than the client timeout
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	agent.Timeout(timeout)

	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	agent.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the request and decodes a 2xx body into v
func (c *APIClient) doRequest(op string, agent *fiber.Agent, v interface{}) error {
	// Held by the caller so the reason phrase is still readable after Bytes
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	agent.SetResponse(resp)

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return &TransportError{Op: op, Err: errors.Join(errs...)}
	}

	logger.DebugWithFields("InstaWP response body", map[string]interface{}{
		"op":     op,
		"status": statusCode,
		"body":   string(body),
	})

	if statusCode < 200 || statusCode >= 300 {
		return &TransportError{
			Op:         op,
			StatusCode: statusCode,
			Status:     reasonPhrase(statusCode, resp),
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{Op: op, Err: err}
	}

	return nil
}

// reasonPhrase returns the status text the server sent, or the standard one
// for the code when the status line carried none
func reasonPhrase(statusCode int, resp *fasthttp.Response) string {
	if msg := strings.TrimSpace(string(resp.Header.StatusMessage())); msg != "" {
		return msg
	}
	return http.StatusText(statusCode)
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, op, method, endpoint string, body, response interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(op, agent, response)
}

// CreateSiteGit creates a site from a git-backed template
func (c *APIClient) CreateSiteGit(ctx context.Context, req types.CreateSiteGitRequest) (*types.CreateSiteGitResponse, error) {
	var response types.CreateSiteGitResponse
	if err := c.executeRequest(ctx, opCreateSiteGit, http.MethodPost, CreateSiteGitURL(), req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetTaskStatus retrieves the status of a task by ID
func (c *APIClient) GetTaskStatus(ctx context.Context, taskID string) (*types.TaskStatusResponse, error) {
	var response types.TaskStatusResponse
	if err := c.executeRequest(ctx, opGetTaskStatus, http.MethodGet, TaskStatusURL(taskID), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
