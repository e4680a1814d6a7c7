package analysis

import (
	"slices"
	"strings"

	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

const MaxFeatured = 6

// SelectFeatured plukker de mest populære reposene. Repos der navnet
// inneholder brukernavnet (profil-README) hoppes over, og like score beholder
// rekkefølgen fra GitHub.
func SelectFeatured(repos []models.Repository, username string) []models.Repository {
	featured := make([]models.Repository, 0, min(len(repos), MaxFeatured))
	candidates := make([]models.Repository, 0, len(repos))
	for _, r := range repos {
		if strings.Contains(r.Name, username) {
			continue
		}
		candidates = append(candidates, r)
	}

	slices.SortStableFunc(candidates, func(a, b models.Repository) int {
		return b.Score() - a.Score()
	})

	if len(candidates) > MaxFeatured {
		candidates = candidates[:MaxFeatured]
	}
	return append(featured, candidates...)
}
