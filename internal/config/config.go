package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Username       string        `env:"PROFILE_USERNAME" envDefault:"HassanAli135"`
	APIBaseURL     string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	RepoPageSize   int           `env:"REPO_PAGE_SIZE" envDefault:"50"`
	FormEndpoint   string        `env:"CONTACT_FORM_ENDPOINT" envDefault:"https://formspree.io/f/mvgbnplp"`
	Port           string        `env:"PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	ContentFile    string        `env:"CONTENT_FILE"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
	Debug          bool          `env:"PROFILSNUSERN_DEBUG"`
}

// NewConfig leser konfigurasjon fra miljøet og validerer den.
func NewConfig() (Config, error) {
	return LoadConfigWithEnv(nil)
}

// LoadConfigWithEnv leser konfigurasjon fra environ. Er environ nil brukes
// prosessens miljøvariabler.
func LoadConfigWithEnv(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("kunne ikke lese miljøvariabler: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if cfg.Username == "" {
		return errors.New("PROFILE_USERNAME må være satt")
	}
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return fmt.Errorf("GITHUB_API_URL er ikke en gyldig URL: %w", err)
	}
	if cfg.RepoPageSize < 1 || cfg.RepoPageSize > 100 {
		return errors.New("REPO_PAGE_SIZE må være mellom 1 og 100")
	}
	if _, err := url.ParseRequestURI(cfg.FormEndpoint); err != nil {
		return fmt.Errorf("CONTACT_FORM_ENDPOINT er ikke en gyldig URL: %w", err)
	}
	if cfg.Port == "" {
		return errors.New("PORT må være satt")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT må være positiv")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return errors.New("ugyldig verdi for LOG_FORMAT – må være 'json' eller 'text'")
	}
	return nil
}
