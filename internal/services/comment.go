package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/logger"
	"github.com/celestiaorg/instawp-action/internal/types"
)

// CommentStore reads and writes comments on the pull requests of one repository
type CommentStore interface {
	ListComments(ctx context.Context, number int, perPage int) ([]types.Comment, error)
	CreateComment(ctx context.Context, number int, body string) (*types.Comment, error)
	UpdateComment(ctx context.Context, id int64, body string) (*types.Comment, error)
}

// Comment keeps at most one marker-tagged comment per pull request
type Comment struct {
	store  CommentStore
	marker string
}

// NewCommentService creates a new comment service using the default marker
func NewCommentService(store CommentStore) *Comment {
	return &Comment{
		store:  store,
		marker: constants.CommentMarker,
	}
}

// Reconcile creates the marker comment on the pull request, or replaces the
// body of the first one found. It does nothing when prNumber <= 0.
//
// The list-then-write is not atomic; two concurrent runs on the same pull
// request can both create a comment.
func (c *Comment) Reconcile(ctx context.Context, prNumber int, body string) error {
	if prNumber <= 0 {
		logger.Debug("Run is not tied to a pull request, skipping comment")
		return nil
	}

	if !strings.Contains(body, c.marker) {
		body = c.marker + "\n" + body
	}

	comments, err := c.store.ListComments(ctx, prNumber, constants.CommentsPerPage)
	if err != nil {
		return fmt.Errorf("failed to list comments on #%d: %w", prNumber, err)
	}

	existing := c.find(comments)
	if existing == nil {
		if _, err := c.store.CreateComment(ctx, prNumber, body); err != nil {
			return fmt.Errorf("failed to create comment on #%d: %w", prNumber, err)
		}
		logger.Infof("Created deployment comment on #%d", prNumber)
		return nil
	}

	if _, err := c.store.UpdateComment(ctx, existing.ID, body); err != nil {
		return fmt.Errorf("failed to update comment %d on #%d: %w", existing.ID, prNumber, err)
	}
	logger.Infof("Updated deployment comment %d on #%d", existing.ID, prNumber)
	return nil
}

// find returns the first comment carrying the marker
func (c *Comment) find(comments []types.Comment) *types.Comment {
	for i := range comments {
		if strings.Contains(comments[i].Body, c.marker) {
			return &comments[i]
		}
	}
	return nil
}
