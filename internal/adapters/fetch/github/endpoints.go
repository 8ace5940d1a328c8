package github

import (
	"context"
	"fmt"
)

// ListUserRepos lists up to 100 public repos for a user
// sort accepts the REST values (pushed, updated, created, full_name)
func (c *Client) ListUserRepos(ctx context.Context, user, sort string) ([]Repo, error) {
	if sort == "" {
		sort = "updated"
	}
	path := fmt.Sprintf("/users/%s/repos?sort=%s&per_page=100", user, sort)
	var out []Repo
	if _, err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RepoLanguages fetches the language byte breakdown for a repo
func (c *Client) RepoLanguages(ctx context.Context, owner, name string) (map[string]int64, error) {
	path := fmt.Sprintf("/repos/%s/%s/languages", owner, name)
	out := map[string]int64{}
	if _, err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommitActivity fetches the 52 week commit activity for a repo
// GitHub computes these lazily, a 202 means not ready yet and yields nil
func (c *Client) CommitActivity(ctx context.Context, owner, name string) ([]WeeklyActivity, error) {
	path := fmt.Sprintf("/repos/%s/%s/stats/commit_activity", owner, name)
	var out []WeeklyActivity
	accepted, err := c.getJSON(ctx, path, &out)
	if err != nil {
		return nil, err
	}
	if accepted {
		return nil, nil
	}
	return out, nil
}
