package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"tripboard/internal/dashboard"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use "__",
// e.g. TRIPBOARD_SERVER__ADDR=:9090 sets server.addr.
const EnvPrefix = "TRIPBOARD_"

type ServerConfig struct {
	Addr    string `json:"addr"`
	GinMode string `json:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `json:"dsn"`
}

type AuthConfig struct {
	// JWTSecret verifies HS256 bearer tokens. Empty disables auth.
	JWTSecret string `json:"jwt_secret"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type CalendarConfig struct {
	// MaxTripsPerCell limits trips stored per day cell. 0 stores none (all
	// overflow), negative keeps every trip. Unset means DefaultMaxTripsPerCell.
	MaxTripsPerCell *int   `json:"max_trips_per_cell"`
	WeekStart       string `json:"week_start"`
}

const DefaultMaxTripsPerCell = 3

// TripLimit returns the configured per-cell limit.
func (c CalendarConfig) TripLimit() int {
	if c.MaxTripsPerCell == nil {
		return DefaultMaxTripsPerCell
	}
	return *c.MaxTripsPerCell
}

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Auth     AuthConfig     `json:"auth"`
	CORS     CORSConfig     `json:"cors"`
	Logging  LoggingConfig  `json:"logging"`
	Calendar CalendarConfig `json:"calendar"`
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// Load reads the optional config file at path (yaml or json), then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, err := parserFor(path)
			if err != nil {
				return nil, err
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// SetDefaults fills unset values.
func (c *Config) SetDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Calendar.MaxTripsPerCell == nil {
		n := DefaultMaxTripsPerCell
		c.Calendar.MaxTripsPerCell = &n
	}
	if c.Calendar.WeekStart == "" {
		c.Calendar.WeekStart = "sunday"
	}
	c.CORS.AllowedOrigins = splitOrigins(c.CORS.AllowedOrigins)
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = append([]string(nil), defaultOrigins...)
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := dashboard.ParseWeekStart(c.Calendar.WeekStart); err != nil {
		return fmt.Errorf("calendar.week_start: %w", err)
	}
	for _, o := range c.CORS.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("cors.allowed_origins: %q must start with http:// or https://", o)
		}
	}
	switch strings.ToLower(c.Server.GinMode) {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("server.gin_mode: unknown mode %q", c.Server.GinMode)
	}
	return nil
}

// splitOrigins accepts both list values and a single comma separated string
// (the shape env overrides arrive in).
func splitOrigins(in []string) []string {
	out := []string{}
	for _, v := range in {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
