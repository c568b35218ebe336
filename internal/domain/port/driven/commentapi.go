// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// CommentAPI defines the driven port for pull-request comment access on the
// hosting API. repo is "owner/name". All failures (auth, missing PR,
// transport) surface wrapped in model.ErrAPI.
type CommentAPI interface {
	// ListComments returns the PR's comments in the order the API reports them.
	ListComments(ctx context.Context, repo string, prNumber int) ([]model.IssueComment, error)
	// CreateComment posts a new comment and returns its remote ID.
	CreateComment(ctx context.Context, repo string, prNumber int, body string) (int64, error)
	// UpdateComment replaces the body of an existing comment.
	UpdateComment(ctx context.Context, repo string, commentID int64, body string) error
}
