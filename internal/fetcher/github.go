package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonmartinstorm/profilsnusern/internal/config"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrRepositoryFetchFailed = errors.New("Failed to fetch repositories")
)

// StatusError er et ikke-2xx-svar fra GitHub.
type StatusError struct {
	StatusCode int
	Body       string
	// RateLimitReset er satt når svaret meldte at kvoten er brukt opp.
	RateLimitReset time.Time
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API-feil: status %d – %s", e.StatusCode, e.Body)
}

// Injecter en klient (for testbarhet)
var HttpClient = http.DefaultClient

type ProfileFetcher struct {
	BaseURL  string
	PageSize int
}

func NewProfileFetcher(cfg config.Config) *ProfileFetcher {
	return &ProfileFetcher{
		BaseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		PageSize: cfg.RepoPageSize,
	}
}

func (f *ProfileFetcher) FetchProfile(ctx context.Context, username string) (models.Profile, error) {
	u := fmt.Sprintf("%s/users/%s", f.BaseURL, url.PathEscape(username))
	slog.Debug("Henter profil", "username", username)

	var profile models.Profile
	if err := DoRequest(ctx, http.MethodGet, u, nil, &profile); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return models.Profile{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// FetchRepos henter én side med repos sortert på sist oppdatert. Rekkefølgen
// fra GitHub beholdes som den er.
func (f *ProfileFetcher) FetchRepos(ctx context.Context, username string) ([]models.Repository, error) {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(f.pageSize()))
	u := fmt.Sprintf("%s/users/%s/repos?%s", f.BaseURL, url.PathEscape(username), q.Encode())
	slog.Debug("Henter repos", "username", username, "per_page", f.pageSize())

	var repos []models.Repository
	if err := DoRequest(ctx, http.MethodGet, u, nil, &repos); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: %w", ErrRepositoryFetchFailed, err)
		}
		return nil, err
	}
	return repos, nil
}

func (f *ProfileFetcher) pageSize() int {
	if f.PageSize <= 0 {
		return 50
	}
	return f.PageSize
}

// DoRequest gjør ett kall mot GitHub uten autentisering og uten retry.
// Ved brukt opp kvote logges reset-tidspunktet og feilen returneres med en gang.
func DoRequest(ctx context.Context, method, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Klarte ikke å lukke body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}

		if rl := resp.Header.Get("X-RateLimit-Remaining"); rl == "0" {
			if ts, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
				statusErr.RateLimitReset = time.Unix(ts, 0)
				slog.Warn("Rate limit nådd", "reset", statusErr.RateLimitReset.Format(time.RFC3339))
			}
		}

		slog.Error("GitHub-feil", "url", url, "status", resp.StatusCode, "body", statusErr.Body)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("kunne ikke tolke svar fra %s: %w", url, err)
	}
	return nil
}
