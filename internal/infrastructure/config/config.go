package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/mfdash/internal/shared/paths"
)

// ErrMissingCredentials is returned when the account identifier or secret
// is not configured.
var ErrMissingCredentials = errors.New("missing credentials")

// Config holds all application configuration.
type Config struct {
	Credentials CredentialsConfig
	Site        SiteConfig
	Browser     BrowserConfig
	Pipeline    PipelineConfig
	Output      OutputConfig
	Logging     LogConfig
	Server      ServerConfig
	RateLimit   RateLimitConfig
}

// CredentialsConfig holds the account login.
type CredentialsConfig struct {
	Email    string `envconfig:"MF_EMAIL"`
	Password string `envconfig:"MF_PASSWORD"`
}

// Validate reports which credential variables are unset.
func (c CredentialsConfig) Validate() error {
	var missing []string
	if c.Email == "" {
		missing = append(missing, "MF_EMAIL")
	}
	if c.Password == "" {
		missing = append(missing, "MF_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: set %s", ErrMissingCredentials, strings.Join(missing, " and "))
	}
	return nil
}

// String keeps the secret out of formatted output.
func (c CredentialsConfig) String() string {
	return fmt.Sprintf("{Email:%q Password:[redacted]}", c.Email)
}

// SiteConfig holds target site locations.
type SiteConfig struct {
	BaseURL           string   `envconfig:"MF_BASE_URL" default:"https://moneyforward.com"`
	SignInPath        string   `envconfig:"MF_SIGNIN_PATH" default:"/sign_in"`
	PortfolioPath     string   `envconfig:"MF_PORTFOLIO_PATH" default:"/bs/portfolio"`
	HistoryPath       string   `envconfig:"MF_HISTORY_PATH" default:"/bs/history"`
	CashflowPath      string   `envconfig:"MF_CASHFLOW_PATH" default:"/cf"`
	ChallengePatterns []string `envconfig:"MF_CHALLENGE_PATTERNS" default:"two_factor,mfa"`
}

// URL joins a page path onto the base URL.
func (s SiteConfig) URL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + path
}

// BrowserConfig holds headless Chrome settings.
type BrowserConfig struct {
	Headless        bool          `envconfig:"BROWSER_HEADLESS" default:"true"`
	NoSandbox       bool          `envconfig:"BROWSER_NO_SANDBOX" default:"true"`
	ExecPath        string        `envconfig:"BROWSER_EXEC_PATH"`
	UserAgent       string        `envconfig:"BROWSER_USER_AGENT"`
	Width           int           `envconfig:"BROWSER_WIDTH" default:"1280"`
	Height          int           `envconfig:"BROWSER_HEIGHT" default:"800"`
	NavTimeout      time.Duration `envconfig:"BROWSER_NAV_TIMEOUT" default:"30s"`
	SelectorTimeout time.Duration `envconfig:"BROWSER_SELECTOR_TIMEOUT" default:"30s"`
}

// PipelineConfig holds fixed delays and extraction settings.
type PipelineConfig struct {
	SignInSettle     time.Duration `envconfig:"MF_SIGNIN_SETTLE" default:"2s"`
	IdentifierSettle time.Duration `envconfig:"MF_IDENTIFIER_SETTLE" default:"3s"`
	LoginSettle      time.Duration `envconfig:"MF_LOGIN_SETTLE" default:"3s"`
	PageSettle       time.Duration `envconfig:"MF_PAGE_SETTLE" default:"3s"`
	TwoFactorWait    time.Duration `envconfig:"MF_TWO_FACTOR_WAIT" default:"30s"`
	SelectorsFile    string        `envconfig:"MF_SELECTORS_FILE"`
}

// OutputConfig holds file destinations.
type OutputConfig struct {
	DataPath        string `envconfig:"MF_OUTPUT_PATH" default:"dashboard/public/data.json"`
	ScreenshotPath  string `envconfig:"MF_SCREENSHOT_PATH" default:"error-screenshot.png"`
	SnapshotPath    string `envconfig:"MF_SNAPSHOT_PATH"`
	MetricsTextfile string `envconfig:"MF_METRICS_TEXTFILE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// ServerConfig holds dashboard HTTP server configuration.
type ServerConfig struct {
	Port      string `envconfig:"PORT" default:"8000"`
	Host      string `envconfig:"HOST" default:"0.0.0.0"`
	StaticDir string `envconfig:"DASHBOARD_STATIC_DIR"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:           "https://moneyforward.com",
			SignInPath:        "/sign_in",
			PortfolioPath:     "/bs/portfolio",
			HistoryPath:       "/bs/history",
			CashflowPath:      "/cf",
			ChallengePatterns: []string{"two_factor", "mfa"},
		},
		Browser: BrowserConfig{
			Headless:        true,
			NoSandbox:       true,
			Width:           1280,
			Height:          800,
			NavTimeout:      30 * time.Second,
			SelectorTimeout: 30 * time.Second,
		},
		Pipeline: PipelineConfig{
			SignInSettle:     2 * time.Second,
			IdentifierSettle: 3 * time.Second,
			LoginSettle:      3 * time.Second,
			PageSettle:       3 * time.Second,
			TwoFactorWait:    30 * time.Second,
		},
		Output: OutputConfig{
			DataPath:       paths.DataFile,
			ScreenshotPath: paths.ScreenshotFile,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
