package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dgallion1/calloutmd/internal/i18n"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Docs site layout, from SiteFile when set
	SiteFile string
	Site     i18n.Site

	// Worker pool
	WorkerCount         int
	MaxQueueSize        int
	MaxConcurrentRender int

	// Request limits
	MaxUploadBytes    int64
	MaxBatchDocuments int

	// Job state
	JobTTL time.Duration

	Debug bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("CALLOUTMD_API_KEY"),

		SiteFile: os.Getenv("CALLOUTMD_CONFIG"),
		Site: i18n.Site{
			DocsDir:       envOr("DOCS_DIR", "src/content/docs"),
			DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		},

		WorkerCount:         envInt("WORKER_COUNT", 4),
		MaxQueueSize:        envInt("MAX_QUEUE_SIZE", 100),
		MaxConcurrentRender: envInt("MAX_CONCURRENT_RENDER", 8),

		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		MaxBatchDocuments: envInt("MAX_BATCH_DOCUMENTS", 500),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		Debug: envBool("DEBUG", false),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxConcurrentRender <= 0 {
		cfg.MaxConcurrentRender = 8
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.MaxBatchDocuments <= 0 {
		cfg.MaxBatchDocuments = 500
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// siteFile is the TOML layout of CALLOUTMD_CONFIG:
//
//	docs_dir = "src/content/docs"
//	default_locale = "root"
//
//	[locales.root]
//	label = "English"
//	lang = "en"
//
//	[locales.fr]
//	label = "Français"
type siteFile struct {
	DocsDir       string                 `toml:"docs_dir"`
	DefaultLocale string                 `toml:"default_locale"`
	Locales       map[string]i18n.Locale `toml:"locales"`
}

// LoadSite reads a site file. Keys missing from the file keep the values
// already in base.
func LoadSite(path string, base i18n.Site) (i18n.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read site config: %w", err)
	}
	var f siteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse site config %s: %w", path, err)
	}
	site := base
	if f.DocsDir != "" {
		site.DocsDir = f.DocsDir
	}
	if f.DefaultLocale != "" {
		site.DefaultLocale = f.DefaultLocale
	}
	if len(f.Locales) > 0 {
		site.Locales = f.Locales
	}
	return site, nil
}

// LoadSiteFile applies SiteFile, if any, to c.Site.
func (c *Config) LoadSiteFile() error {
	if c.SiteFile == "" {
		return nil
	}
	site, err := LoadSite(c.SiteFile, c.Site)
	if err != nil {
		return err
	}
	c.Site = site
	return nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("CALLOUTMD_API_KEY is required")
	}
	return ValidateSite(c.Site)
}

// ValidateSite checks that a configured default locale exists.
func ValidateSite(s i18n.Site) error {
	if len(s.Locales) == 0 || s.DefaultLocale == "" {
		return nil
	}
	if _, ok := s.Locales[s.DefaultLocale]; !ok {
		return fmt.Errorf("default locale %q is not one of the configured locales", s.DefaultLocale)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
