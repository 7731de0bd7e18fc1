// Package issues stores pull request comments through the GitHub REST API
package issues

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"

	"github.com/celestiaorg/instawp-action/internal/types"
)

// DefaultAPIURL is the public GitHub REST API root
const DefaultAPIURL = "https://api.github.com"

// Options contains configuration options for the issues client
type Options struct {
	Owner string
	Repo  string
	Token string

	// APIURL is the REST API root, DefaultAPIURL when empty. GitHub
	// Enterprise runners expose their own through GITHUB_API_URL.
	APIURL string

	// HTTPClient defaults to http.DefaultClient
	HTTPClient *http.Client
}

// Client reads and writes comments on the pull requests of one repository
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a new issues client
func NewClient(opts Options) (*Client, error) {
	if opts.Owner == "" || opts.Repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	gh := github.NewClient(opts.HTTPClient)
	if opts.Token != "" {
		gh = gh.WithAuthToken(opts.Token)
	}

	if opts.APIURL != "" && strings.TrimRight(opts.APIURL, "/") != DefaultAPIURL {
		baseURL, err := url.Parse(strings.TrimRight(opts.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API URL: %w", err)
		}
		gh.BaseURL = baseURL
	}

	return &Client{gh: gh, owner: opts.Owner, repo: opts.Repo}, nil
}

// ListComments returns the first page of comments on an issue or pull request
func (c *Client) ListComments(ctx context.Context, number int, perPage int) ([]types.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	comments, _, err := c.gh.Issues.ListComments(ctx, c.owner, c.repo, number, opts)
	if err != nil {
		return nil, err
	}

	result := make([]types.Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toComment(comment))
	}
	return result, nil
}

// CreateComment adds a comment to an issue or pull request
func (c *Client) CreateComment(ctx context.Context, number int, body string) (*types.Comment, error) {
	created, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, err
	}
	comment := toComment(created)
	return &comment, nil
}

// UpdateComment replaces the body of an existing comment
func (c *Client) UpdateComment(ctx context.Context, id int64, body string) (*types.Comment, error) {
	updated, _, err := c.gh.Issues.EditComment(ctx, c.owner, c.repo, id, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, err
	}
	comment := toComment(updated)
	return &comment, nil
}

func toComment(c *github.IssueComment) types.Comment {
	return types.Comment{ID: c.GetID(), Body: c.GetBody()}
}
