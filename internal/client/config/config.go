package config

import "runtime"

// Platform classes. The backend base URL depends on where the client runs:
// the Android emulator reaches the host machine via 10.0.2.2, the iOS
// simulator can use localhost directly, everything else uses localhost.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformOther   = "other"
)

// Config holds runtime settings for the ondo CLI.
//
// Fields:
//   - Platform: platform class used to pick the default backend base URL.
//   - ServerEndpointURL: explicit base URL; overrides the platform default.
//   - DatabaseDSN: path/DSN of the local credential database.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	Platform          string `env:"ONDO_PLATFORM" json:"platform"`
	ServerEndpointURL string `env:"ONDO_SERVER_ENDPOINT_URL" json:"server_endpoint_url"`
	DatabaseDSN       string `env:"ONDO_DATABASE_DSN" json:"database_dsn"`
	LogLevel          string `env:"ONDO_LOG_LEVEL" json:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Platform = detectPlatform()
	c.ServerEndpointURL = ""
	c.DatabaseDSN = "ondo.db"
	c.LogLevel = "info"
}

// detectPlatform maps the running OS onto a platform class. darwin counts
// as ios (simulator host); anything else that is not android is "other".
func detectPlatform() string {
	switch runtime.GOOS {
	case "android":
		return PlatformAndroid
	case "darwin", "ios":
		return PlatformIOS
	default:
		return PlatformOther
	}
}

// BaseURLForPlatform returns the fixed backend base URL for a platform
// class. Pure function of platform identity.
func BaseURLForPlatform(platform string) string {
	switch platform {
	case PlatformAndroid:
		return "http://10.0.2.2:8000"
	case PlatformIOS:
		return "http://127.0.0.1:8000"
	default:
		return "http://localhost:8000"
	}
}

// BaseURL resolves the effective base URL: the explicit endpoint when set,
// else the platform default.
func (c *Config) BaseURL() string {
	if c.ServerEndpointURL != "" {
		return c.ServerEndpointURL
	}
	return BaseURLForPlatform(c.Platform)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
