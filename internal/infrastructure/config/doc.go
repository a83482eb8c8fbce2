// Package config provides 12-factor configuration for the sync job and the
// dashboard server.
//
// Configuration is loaded from environment variables with defaults matching
// the hosted site. CLI flags can override the output paths per run.
//
// Configuration Sections:
//   - Credentials: account identifier and secret (never persisted or logged)
//   - Site: base URL, page paths, second-factor URL patterns
//   - Browser: headless mode, viewport, executable, wait bounds
//   - Pipeline: settle delays, second-factor wait, selector override file
//   - Output: dataset path, diagnostic screenshot and DOM dump, metrics file
//   - Logging: Log level and output format
//   - Server, RateLimit: dashboard HTTP settings
//
// Credentials are not required at load time so the dashboard can start
// without them. The sync job calls Credentials.Validate before it launches
// a browser.
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err := cfg.Credentials.Validate(); err != nil {
//	    return err // errors.Is(err, config.ErrMissingCredentials)
//	}
//
// Environment Variables:
//   - MF_EMAIL, MF_PASSWORD, MF_BASE_URL, MF_CHALLENGE_PATTERNS
//   - BROWSER_HEADLESS, BROWSER_NO_SANDBOX, BROWSER_EXEC_PATH, BROWSER_USER_AGENT
//   - BROWSER_NAV_TIMEOUT, BROWSER_SELECTOR_TIMEOUT
//   - MF_SIGNIN_SETTLE, MF_IDENTIFIER_SETTLE, MF_LOGIN_SETTLE, MF_PAGE_SETTLE
//   - MF_TWO_FACTOR_WAIT, MF_SELECTORS_FILE
//   - MF_OUTPUT_PATH, MF_SCREENSHOT_PATH, MF_SNAPSHOT_PATH, MF_METRICS_TEXTFILE
//   - LOG_LEVEL, LOG_DEV
//   - PORT, HOST, DASHBOARD_STATIC_DIR
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
