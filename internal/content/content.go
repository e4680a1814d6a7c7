package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type NavItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type SkillCategory struct {
	Name   string   `yaml:"name"`
	Icon   string   `yaml:"icon"`
	Skills []string `yaml:"skills"`
}

type ContactInfo struct {
	Email        string `yaml:"email"`
	Location     string `yaml:"location"`
	Availability string `yaml:"availability"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Site er det statiske innholdet rundt GitHub-dataene.
type Site struct {
	Title           string          `yaml:"title"`
	Tagline         string          `yaml:"tagline"`
	Intro           string          `yaml:"intro"`
	Navigation      []NavItem       `yaml:"navigation"`
	SkillCategories []SkillCategory `yaml:"skill_categories"`
	Contact         ContactInfo     `yaml:"contact"`
	FooterLinks     []Link          `yaml:"footer_links"`
}

// Default returnerer det innebygde innholdet.
func Default() Site {
	site, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("innebygd default.yaml er ugyldig: %v", err))
	}
	return site
}

// Load leser innhold fra path. Tom path gir standardinnholdet. Felt som
// mangler i fila arves fra standardinnholdet.
func Load(path string) (Site, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("kunne ikke lese innholdsfil %s: %w", path, err)
	}

	site := Default()
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, fmt.Errorf("kunne ikke tolke innholdsfil %s: %w", path, err)
	}
	return site, nil
}

func Parse(raw []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, err
	}
	return site, nil
}

// SkillGroup er en kategori med teknologiene som havnet i den.
type SkillGroup struct {
	Name   string
	Icon   string
	Skills []string
}

const OtherCategory = "Other"

// GroupSkills fordeler teknologier på kategoriene, uten hensyn til store og
// små bokstaver. Teknologier uten kategori havner i OtherCategory. Tomme
// kategorier utelates.
func (s Site) GroupSkills(technologies []string) []SkillGroup {
	var groups []SkillGroup
	placed := make(map[int]bool, len(technologies))

	for _, cat := range s.SkillCategories {
		group := SkillGroup{Name: cat.Name, Icon: cat.Icon}
		for i, tech := range technologies {
			if placed[i] {
				continue
			}
			if containsFold(cat.Skills, tech) {
				group.Skills = append(group.Skills, tech)
				placed[i] = true
			}
		}
		if len(group.Skills) > 0 {
			groups = append(groups, group)
		}
	}

	other := SkillGroup{Name: OtherCategory, Icon: "✨"}
	for i, tech := range technologies {
		if !placed[i] {
			other.Skills = append(other.Skills, tech)
		}
	}
	if len(other.Skills) > 0 {
		groups = append(groups, other)
	}
	return groups
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
