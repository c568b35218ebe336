package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// ListComments returns all top-level comments on a pull request (the Issues
// API, not review comments), in API order. It handles pagination
// automatically and maps go-github types to domain model types.
func (c *Client) ListComments(ctx context.Context, repo string, prNumber int) ([]model.IssueComment, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	var allComments []model.IssueComment

	for {
		comments, resp, err := c.gh.Issues.ListComments(ctx, owner, name, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("listing comments for %s#%d: %w: %w", repo, prNumber, model.ErrAPI, err)
		}

		logRateLimit(resp, repo+"/comments")

		for _, comment := range comments {
			allComments = append(allComments, model.IssueComment{
				ID:   comment.GetID(),
				Body: comment.GetBody(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

// CreateComment posts a new top-level comment on a pull request and returns
// the remote ID assigned by the API.
func (c *Client) CreateComment(ctx context.Context, repo string, prNumber int, body string) (int64, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return 0, err
	}

	created, resp, err := c.gh.Issues.CreateComment(ctx, owner, name, prNumber, &gh.IssueComment{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return 0, fmt.Errorf("creating comment on %s#%d: %w: %w", repo, prNumber, model.ErrAPI, err)
	}

	logRateLimit(resp, repo+"/comments")

	return created.GetID(), nil
}

// UpdateComment replaces the body of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, repo string, commentID int64, body string) error {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return err
	}

	_, resp, err := c.gh.Issues.EditComment(ctx, owner, name, commentID, &gh.IssueComment{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("updating comment %d on %s: %w: %w", commentID, repo, model.ErrAPI, err)
	}

	logRateLimit(resp, repo+"/comments")

	return nil
}
