package github

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/crimson-sun/starscope/internal/connector"
	"github.com/crimson-sun/starscope/internal/connector/httpclient"
	"github.com/crimson-sun/starscope/internal/model"
)

const (
	defaultEndpoint = "https://api.github.com"
	defaultPerPage  = 100
	defaultRate     = 1 // topic calls per second
)

func init() {
	connector.Register("github", New)
}

// Connector fetches starred repositories and repository topics from the
// GitHub REST API.
type Connector struct {
	client  *httpclient.Client
	user    string
	perPage int
	limiter *rate.Limiter
}

// New creates a GitHub connector. A token and username are required.
func New(cfg connector.Config) (connector.Connector, error) {
	if cfg.Token == "" {
		return nil, errors.New("github connector: missing token (set GITHUB_TOKEN)")
	}
	if cfg.Username == "" {
		return nil, errors.New("github connector: missing username (set STARSCOPE_USERNAME)")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	topicRate := cfg.TopicRate
	if topicRate <= 0 {
		topicRate = defaultRate
	}

	return &Connector{
		client: httpclient.New(endpoint, cfg.Token,
			httpclient.WithHeader("Accept", "application/vnd.github+json")),
		user:    cfg.Username,
		perPage: perPage,
		limiter: rate.NewLimiter(rate.Limit(topicRate), 1),
	}, nil
}

// Starred pages through /users/{user}/starred until an empty page. On the
// first non-success response it logs the error and returns the pages
// accumulated so far; there is no retry.
func (c *Connector) Starred(ctx context.Context) ([]model.Repo, error) {
	var all []model.Repo
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("per_page", strconv.Itoa(c.perPage))
		q.Set("page", strconv.Itoa(page))

		var repos []model.Repo
		err := c.client.GetJSON(ctx, "/users/"+c.user+"/starred", q, &repos)
		if err != nil {
			var apiErr *httpclient.APIError
			if errors.As(err, &apiErr) {
				slog.Error("starred page fetch failed, stopping",
					"page", page, "status", apiErr.StatusCode)
				return all, nil
			}
			return nil, err
		}
		if len(repos) == 0 {
			return all, nil
		}
		all = append(all, repos...)
	}
}

// Topics fetches the repository's topic names, paced by the rate limiter.
// A non-success response is logged and yields an empty list so enrichment
// keeps going.
func (c *Connector) Topics(ctx context.Context, fullName string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp struct {
		Names []string `json:"names"`
	}
	err := c.client.GetJSON(ctx, "/repos/"+fullName+"/topics", nil, &resp)
	if err != nil {
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) {
			slog.Warn("topics fetch failed", "repo", fullName, "status", apiErr.StatusCode)
			return nil, nil
		}
		return nil, err
	}
	return resp.Names, nil
}
