package managers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ElenaG518/wdconnect-server/internal/config"
)

// GithubMgr is an interface that outlines the contract for the GitHub
// repository proxy. It returns the upstream response body unmodified.
type GithubMgr interface {
	ListRepositories(ctx context.Context, username string) (json.RawMessage, error)
}

// GithubManager is a concrete implementation of the GithubMgr interface
// backed by the public GitHub REST API.
type GithubManager struct {
	client       *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

// NewGithubManager creates a GithubManager with the API credentials from the
// process configuration.
func NewGithubManager(cfg *config.Config) GithubMgr {
	return &GithubManager{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      "https://api.github.com",
		clientID:     cfg.GithubClientID,
		clientSecret: cfg.GithubClientSecret,
	}
}

// NewGithubManagerWithBaseURL is like NewGithubManager but targets the given
// base URL. Used by tests to point at a stub server.
func NewGithubManagerWithBaseURL(cfg *config.Config, baseURL string) GithubMgr {
	mgr := NewGithubManager(cfg).(*GithubManager)
	mgr.baseURL = baseURL
	return mgr
}

// ListRepositories fetches the five most recently created public repositories
// of the given GitHub user. Any upstream failure or non-200 status is
// reported as an error; callers translate it to a not-found response.
func (gm *GithubManager) ListRepositories(ctx context.Context, username string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("per_page", "5")
	query.Set("sort", "created:asc")
	if gm.clientID != "" {
		query.Set("client_id", gm.clientID)
		query.Set("client_secret", gm.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", gm.baseURL, url.PathEscape(username), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "wdconnect-server")

	resp, err := gm.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
