package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
)

// CommentService is the idempotent create-or-update primitive for PR status
// comments. Three independent report streams (coverage, build, end-to-end)
// share it; each stream's marker keeps their comments from colliding.
type CommentService struct {
	api driven.CommentAPI
}

// NewCommentService creates a CommentService on the given hosting API port.
func NewCommentService(api driven.CommentAPI) *CommentService {
	return &CommentService{api: api}
}

// Upsert locates the PR comment carrying the kind's marker and replaces its
// body, creating the comment when none exists. The marker is prepended to the
// body if not already present, so the comment stays recognizable on the next
// run. Returns true when an existing comment was updated.
//
// Under serial invocation this guarantees exactly one comment per (PR, kind).
// Two concurrent runs for the same PR and kind can both list before either
// creates and leave two comments behind; that race is accepted, not locked
// against.
func (s *CommentService) Upsert(ctx context.Context, repo string, prNumber int, kind model.ReportKind, body string) (bool, error) {
	marker := kind.Marker()
	if !strings.Contains(body, marker) {
		body = marker + "\n\n" + body
	}

	comments, err := s.api.ListComments(ctx, repo, prNumber)
	if err != nil {
		return false, err
	}

	for _, c := range comments {
		if !strings.Contains(c.Body, marker) {
			continue
		}
		if err := s.api.UpdateComment(ctx, repo, c.ID, body); err != nil {
			return false, err
		}
		slog.Info("updated status comment", "repo", repo, "pr", prNumber, "kind", kind, "comment_id", c.ID)
		return true, nil
	}

	id, err := s.api.CreateComment(ctx, repo, prNumber, body)
	if err != nil {
		return false, err
	}
	slog.Info("created status comment", "repo", repo, "pr", prNumber, "kind", kind, "comment_id", id)
	return false, nil
}
