package analysis

import (
	"strings"

	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

const MaxTechnologies = 12

// KeywordRule gir Labels når innholdet inneholder minst én av Triggers.
type KeywordRule struct {
	Triggers []string
	Labels   []string
}

func (r KeywordRule) Matches(content string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(content, t) {
			return true
		}
	}
	return false
}

// KeywordRules testes i rekkefølge mot navn og beskrivelse i små bokstaver.
var KeywordRules = []KeywordRule{
	{Triggers: []string{"excel", "sales-analysis", "dashboard"}, Labels: []string{"Excel", "Data Analysis"}},
	{Triggers: []string{"power bi", "powerbi"}, Labels: []string{"Power BI"}},
	{Triggers: []string{"tableau"}, Labels: []string{"Tableau"}},
	{Triggers: []string{"python", "jupyter", "pandas"}, Labels: []string{"Python"}},
	{Triggers: []string{"sql", "database"}, Labels: []string{"SQL"}},
	{Triggers: []string{"data science", "data-science"}, Labels: []string{"Data Science"}},
	{Triggers: []string{"machine learning", "ml"}, Labels: []string{"Machine Learning"}},
	{Triggers: []string{"visualization", "dashboard"}, Labels: []string{"Data Visualization"}},
	{Triggers: []string{"analytics", "analysis"}, Labels: []string{"Business Analytics"}},
	{Triggers: []string{"survey", "statistics"}, Labels: []string{"Statistical Analysis"}},
}

// BonusRule legger til Labels når biografien eller et reponavn treffer.
// Dedup avgjør om Labels slås sammen med resten eller bare legges til.
type BonusRule struct {
	BioTriggers      []string
	RepoNameTriggers []string
	Labels           []string
	Dedup            bool
}

func (b BonusRule) Matches(bio string, repos []models.Repository) bool {
	for _, t := range b.BioTriggers {
		if strings.Contains(bio, t) {
			return true
		}
	}
	for _, r := range repos {
		for _, t := range b.RepoNameTriggers {
			if strings.Contains(r.Name, t) {
				return true
			}
		}
	}
	return false
}

var BonusRules = []BonusRule{
	{
		BioTriggers:      []string{"data analytics"},
		RepoNameTriggers: []string{"Analysis"},
		Labels:           []string{"Data Analysis", "Business Intelligence", "Data Visualization", "Statistical Analysis"},
		Dedup:            true,
	},
	{
		// Legges til uten dedup mot resten av lista.
		BioTriggers: []string{"biotech", "biological systems"},
		Labels:      []string{"Bioinformatics", "Research Analysis"},
	},
}

// KeywordSkills returnerer treff for ett repo. Samme label kan komme flere
// ganger når flere regler slår til.
func KeywordSkills(repo models.Repository) []string {
	content := strings.ToLower(repo.Name + " " + repo.Description)

	var skills []string
	for _, rule := range KeywordRules {
		if rule.Matches(content) {
			skills = append(skills, rule.Labels...)
		}
	}
	return skills
}

// ExtractTechnologies bygger teknologilista: språk, så topics, så
// nøkkelordtreff, deretter bonussett, kuttet til MaxTechnologies.
func ExtractTechnologies(profile models.Profile, repos []models.Repository) []string {
	var all []string
	for _, r := range repos {
		if r.Language != "" {
			all = append(all, r.Language)
		}
	}
	for _, r := range repos {
		all = append(all, r.Topics...)
	}
	for _, r := range repos {
		all = append(all, KeywordSkills(r)...)
	}

	technologies := Unique(all)

	for _, bonus := range BonusRules {
		if !bonus.Matches(profile.Bio, repos) {
			continue
		}
		if bonus.Dedup {
			technologies = Unique(append(technologies, bonus.Labels...))
		} else {
			technologies = append(technologies, bonus.Labels...)
		}
	}

	if len(technologies) > MaxTechnologies {
		technologies = technologies[:MaxTechnologies]
	}
	return technologies
}

// Unique fjerner eksakte duplikater og beholder første forekomst.
func Unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
