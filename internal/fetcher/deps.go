package fetcher

import (
	"context"

	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

// ProfileSource er det aggregatoren trenger fra GitHub.
type ProfileSource interface {
	FetchProfile(ctx context.Context, username string) (models.Profile, error)
	FetchRepos(ctx context.Context, username string) ([]models.Repository, error)
}

var _ ProfileSource = (*ProfileFetcher)(nil)
