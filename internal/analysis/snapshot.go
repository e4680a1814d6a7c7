package analysis

import "github.com/jonmartinstorm/profilsnusern/internal/models"

// BuildSnapshot avleder utvalgte repos og teknologier. Samme input gir
// alltid samme snapshot.
func BuildSnapshot(username string, profile models.Profile, repos []models.Repository) models.Snapshot {
	if repos == nil {
		repos = []models.Repository{}
	}
	return models.Snapshot{
		Profile:      profile,
		Repos:        repos,
		Featured:     SelectFeatured(repos, username),
		Technologies: ExtractTechnologies(profile, repos),
	}
}
