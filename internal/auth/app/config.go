package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ConfigFileEnv names an optional YAML file layered under the environment.
const ConfigFileEnv = "AUTH_CONFIG_FILE"

type Config struct {
	AccessTokenSecret  string // Required: HS256 secret for access tokens
	RefreshTokenSecret string // Required: HS256 secret for refresh tokens, must differ from the access secret

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./auth.db)
	DatabaseURL    string // Required for postgres: connection string
	PepperFile     string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	LoginAccessTTL         time.Duration // Optional: access token lifetime at login (default: 15m)
	RefreshAccessTTL       time.Duration // Optional: access token lifetime at refresh (default: 15m)
	RefreshTTL             time.Duration // Optional: refresh token lifetime (default: 24h)
	CookieMaxAge           time.Duration // Optional: refresh cookie Max-Age (default: 7d)
	RequireActiveOnRefresh bool          // Optional: reject refresh for deactivated users (default: true)
	MetricsPublic          bool          // Optional: serve /metrics without a token (default: false)
	TrustedProxies         []string      // Optional: proxy addresses or CIDRs whose X-Forwarded-For is believed (default: none)

	BootstrapUsername string   // Optional: first account, created only when the store is empty
	BootstrapPassword string   // Optional: password for the first account
	BootstrapRoles    []string // Optional: roles for the first account (default: Admin)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("AUTH_DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("AUTH_DATABASE_FILE", "auth.db")
	v.SetDefault("AUTH_PEPPER_FILE", "pepper")
	v.SetDefault("AUTH_LOGIN_ACCESS_TTL", jwtx.DefaultAccessTokenTTL)
	v.SetDefault("AUTH_REFRESH_ACCESS_TTL", jwtx.DefaultAccessTokenTTL)
	v.SetDefault("AUTH_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL)
	v.SetDefault("AUTH_COOKIE_MAX_AGE", service.DefaultCookieMaxAge)
	v.SetDefault("AUTH_REFRESH_REQUIRE_ACTIVE", true)
	v.SetDefault("AUTH_METRICS_PUBLIC", false)
	v.SetDefault("BOOTSTRAP_ROLES", strings.Join(service.DefaultBootstrapRoles, ","))
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)
}

// LoadConfig reads configuration from defaults, the optional file named by
// AUTH_CONFIG_FILE, then the environment, in increasing precedence.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		AccessTokenSecret:      v.GetString("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:     v.GetString("REFRESH_TOKEN_SECRET"),
		DatabaseDriver:         strings.ToLower(v.GetString("AUTH_DATABASE_DRIVER")),
		DatabaseFile:           v.GetString("AUTH_DATABASE_FILE"),
		DatabaseURL:            v.GetString("AUTH_DATABASE_URL"),
		PepperFile:             v.GetString("AUTH_PEPPER_FILE"),
		LoginAccessTTL:         v.GetDuration("AUTH_LOGIN_ACCESS_TTL"),
		RefreshAccessTTL:       v.GetDuration("AUTH_REFRESH_ACCESS_TTL"),
		RefreshTTL:             v.GetDuration("AUTH_REFRESH_TTL"),
		CookieMaxAge:           v.GetDuration("AUTH_COOKIE_MAX_AGE"),
		RequireActiveOnRefresh: v.GetBool("AUTH_REFRESH_REQUIRE_ACTIVE"),
		MetricsPublic:          v.GetBool("AUTH_METRICS_PUBLIC"),
		TrustedProxies:         splitList(v.GetString("AUTH_TRUSTED_PROXIES")),
		BootstrapUsername:      v.GetString("BOOTSTRAP_USERNAME"),
		BootstrapPassword:      v.GetString("BOOTSTRAP_PASSWORD"),
		BootstrapRoles:         splitList(v.GetString("BOOTSTRAP_ROLES")),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		LogFormat:              v.GetString("LOG_FORMAT"),
		Port:                   v.GetInt("PORT"),
		ShutdownGracePeriod:    v.GetDuration("SHUTDOWN_GRACE_PERIOD"),
	}

	return cfg, nil
}

// splitList accepts comma and/or space separated values.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// Validate reports every configuration problem that should abort startup.
func (c Config) Validate() error {
	var errs []error

	if c.AccessTokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required"))
	}
	if c.RefreshTokenSecret == "" {
		errs = append(errs, errors.New("REFRESH_TOKEN_SECRET is required"))
	}
	if c.AccessTokenSecret != "" && c.AccessTokenSecret == c.RefreshTokenSecret {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ"))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_FILE is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_URL is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	for name, d := range map[string]time.Duration{
		"AUTH_LOGIN_ACCESS_TTL":   c.LoginAccessTTL,
		"AUTH_REFRESH_ACCESS_TTL": c.RefreshAccessTTL,
		"AUTH_REFRESH_TTL":        c.RefreshTTL,
		"AUTH_COOKIE_MAX_AGE":     c.CookieMaxAge,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}

	if _, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		errs = append(errs, fmt.Errorf("AUTH_TRUSTED_PROXIES: %w", err))
	}

	if (c.BootstrapUsername == "") != (c.BootstrapPassword == "") {
		errs = append(errs, errors.New("BOOTSTRAP_USERNAME and BOOTSTRAP_PASSWORD must be set together"))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}
