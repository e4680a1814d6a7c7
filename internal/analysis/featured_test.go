package analysis_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jonmartinstorm/profilsnusern/internal/analysis"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

func names(repos []models.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}

var _ = Describe("SelectFeatured", func() {
	It("skal sortere synkende på 2*stars+forks", func() {
		repos := []models.Repository{
			{Name: "x", Stars: 10, Forks: 2},
			{Name: "y", Stars: 3, Forks: 9},
		}
		featured := analysis.SelectFeatured(repos, "u")

		Expect(names(featured)).To(Equal([]string{"x", "y"}))
		Expect(featured[0].Score()).To(Equal(22))
		Expect(featured[1].Score()).To(Equal(15))
	})

	It("skal beholde GitHub-rekkefølgen ved lik score", func() {
		repos := []models.Repository{
			{Name: "a", Stars: 1, Forks: 0},
			{Name: "b", Stars: 0, Forks: 2},
			{Name: "c", Stars: 5},
			{Name: "d", Stars: 1, Forks: 0},
		}
		featured := analysis.SelectFeatured(repos, "u")
		Expect(names(featured)).To(Equal([]string{"c", "a", "b", "d"}))
	})

	It("skal utelate repos der navnet inneholder brukernavnet", func() {
		repos := []models.Repository{
			{Name: "octocat", Stars: 100},
			{Name: "octocat.github.io", Stars: 50},
			{Name: "Octocat-notes", Stars: 40},
			{Name: "tools", Stars: 1},
		}
		featured := analysis.SelectFeatured(repos, "octocat")
		Expect(names(featured)).To(Equal([]string{"Octocat-notes", "tools"}))
	})

	It("skal aldri returnere mer enn seks", func() {
		var repos []models.Repository
		for i := 0; i < 20; i++ {
			repos = append(repos, models.Repository{Name: fmt.Sprintf("r%02d", i), Stars: i})
		}
		featured := analysis.SelectFeatured(repos, "u")
		Expect(featured).To(HaveLen(analysis.MaxFeatured))
		Expect(featured[0].Name).To(Equal("r19"))
		Expect(featured[5].Name).To(Equal("r14"))
	})

	It("skal returnere tom liste for ingen repos", func() {
		featured := analysis.SelectFeatured(nil, "u")
		Expect(featured).NotTo(BeNil())
		Expect(featured).To(BeEmpty())
	})

	It("skal ikke endre input-slicen", func() {
		repos := []models.Repository{{Name: "lav", Stars: 1}, {Name: "høy", Stars: 9}}
		_ = analysis.SelectFeatured(repos, "u")
		Expect(names(repos)).To(Equal([]string{"lav", "høy"}))
	})
})
