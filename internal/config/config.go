package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/resume"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGitHubBaseURL = "https://api.github.com"
	DefaultMaxRepos      = 30
	DefaultHTTPTimeout   = 15 * time.Second
	DefaultReadmeTTL     = time.Hour
)

type Config struct {
	Addr        string       `yaml:"addr"`
	DatabaseURL string       `yaml:"database_url"`
	RedisAddr   string       `yaml:"redis_addr"`
	AdminToken  string       `yaml:"admin_token"`
	LogLevel    string       `yaml:"log_level"`
	GitHub      GitHubConfig `yaml:"github"`
	Resume      ResumeConfig `yaml:"resume"`
	Seed        SeedConfig   `yaml:"seed"`
}

type GitHubConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Username       string        `yaml:"username"`
	Token          string        `yaml:"token"`
	MaxRepos       int           `yaml:"max_repos"`
	IncludePrivate bool          `yaml:"include_private"`
	Timeout        time.Duration `yaml:"timeout"`
	ReadmeTTL      time.Duration `yaml:"readme_ttl"`
}

type ResumeConfig struct {
	ChromePath string               `yaml:"chrome_path"`
	Variants   []resume.RoleVariant `yaml:"variants"`
}

// SeedConfig is fallback content for an empty database and the payload of
// the seed command.
type SeedConfig struct {
	Skills    []domain.Skill         `yaml:"skills"`
	Projects  []domain.Project       `yaml:"projects"`
	Expertise []domain.ExpertiseCard `yaml:"expertise"`
}

// Load builds a Config from environment defaults, then decodes the YAML file
// at path (if any) over them.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:        ":" + getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		GitHub: GitHubConfig{
			BaseURL:  DefaultGitHubBaseURL,
			Username: os.Getenv("GITHUB_USERNAME"),
			Token:    os.Getenv("GITHUB_TOKEN"),
			MaxRepos: DefaultMaxRepos,
		},
		Resume: ResumeConfig{
			ChromePath: os.Getenv("CHROME_PATH"),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate fills unset defaults and rejects invalid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.GitHub.BaseURL == "" {
		c.GitHub.BaseURL = DefaultGitHubBaseURL
	}
	c.GitHub.BaseURL = strings.TrimRight(c.GitHub.BaseURL, "/")
	if c.GitHub.MaxRepos < 0 {
		return fmt.Errorf("github.max_repos must not be negative, got %d", c.GitHub.MaxRepos)
	}
	if c.GitHub.MaxRepos == 0 {
		c.GitHub.MaxRepos = DefaultMaxRepos
	}
	if c.GitHub.Timeout <= 0 {
		c.GitHub.Timeout = DefaultHTTPTimeout
	}
	if c.GitHub.ReadmeTTL <= 0 {
		c.GitHub.ReadmeTTL = DefaultReadmeTTL
	}

	seen := map[string]bool{}
	for _, v := range c.Resume.Variants {
		id := strings.ToLower(strings.TrimSpace(v.ID))
		if id == "" {
			return errors.New("resume.variants: variant id must not be empty")
		}
		if seen[id] {
			return fmt.Errorf("resume.variants: duplicate variant id %q", v.ID)
		}
		seen[id] = true
	}
	for _, s := range c.Seed.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("seed.skills: skill name must not be empty")
		}
	}
	return nil
}

// RoleVariants is the built-in variant table merged with configured ones.
func (c *Config) RoleVariants() []resume.RoleVariant {
	return resume.Variants(c.Resume.Variants)
}

// NewLogger builds a JSON slog logger at the configured level. Unknown
// levels fall back to info.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
