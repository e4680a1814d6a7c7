package models

import "time"

// Profile er den offentlige brukerprofilen slik GitHub returnerer den.
// Felt som mangler i payloaden blir stående som nullverdi.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	HtmlURL     string    `json:"html_url"`
	Location    string    `json:"location,omitempty"`
	Company     string    `json:"company,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
}

// DisplayName faller tilbake til login når navn ikke er satt.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HtmlURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Score er popularitetsvekten brukt for utvalgte repos.
func (r Repository) Score() int {
	return 2*r.Stars + r.Forks
}

// Snapshot er det komplette resultatet av én vellykket aggregering.
type Snapshot struct {
	Profile      Profile      `json:"profile"`
	Repos        []Repository `json:"repos"`
	Featured     []Repository `json:"featured"`
	Technologies []string     `json:"technologies"`
}
