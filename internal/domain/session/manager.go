package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/config"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
)

// Sign-in form selectors.
const (
	IdentifierSelector = `input[type="email"], input[name="mfid_user[email]"]`
	SecretSelector     = `input[type="password"]`
	SubmitSelector     = `button[type="submit"], input[type="submit"]`
)

// Options holds sign-in locations and timing.
type Options struct {
	SignInURL         string
	ChallengePatterns []string
	SelectorTimeout   time.Duration
	SignInSettle      time.Duration
	IdentifierSettle  time.Duration
	LoginSettle       time.Duration
	TwoFactorWait     time.Duration
}

// OptionsFromConfig maps loaded configuration onto sign-in options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SignInURL:         cfg.Site.URL(cfg.Site.SignInPath),
		ChallengePatterns: cfg.Site.ChallengePatterns,
		SelectorTimeout:   cfg.Browser.SelectorTimeout,
		SignInSettle:      cfg.Pipeline.SignInSettle,
		IdentifierSettle:  cfg.Pipeline.IdentifierSettle,
		LoginSettle:       cfg.Pipeline.LoginSettle,
		TwoFactorWait:     cfg.Pipeline.TwoFactorWait,
	}
}

// Result describes how sign-in ended.
type Result struct {
	LandingURL        string
	ChallengeDetected bool
}

// SleepFunc waits for d or until ctx ends.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Manager performs the sign-in sequence.
type Manager struct {
	creds  config.CredentialsConfig
	opts   Options
	sleep  SleepFunc
	logger *logging.Logger
}

// NewManager creates a sign-in manager for one account.
func NewManager(creds config.CredentialsConfig, opts Options, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		creds:  creds,
		opts:   opts,
		sleep:  Sleep,
		logger: logger,
	}
}

// WithSleep replaces the delay function.
func (m *Manager) WithSleep(fn SleepFunc) *Manager {
	m.sleep = fn
	return m
}

// SignIn drives the login form on page.
func (m *Manager) SignIn(ctx context.Context, page browser.Page) (*Result, error) {
	if err := m.creds.Validate(); err != nil {
		return nil, err
	}

	m.logger.Info("Opening sign-in page",
		zap.String("url", m.opts.SignInURL),
		zap.String("account", logging.Redact(m.creds.Email)))

	if err := page.Navigate(ctx, m.opts.SignInURL, browser.WaitNetworkIdle); err != nil {
		return nil, fmt.Errorf("open sign-in page: %w", err)
	}
	if err := m.sleep(ctx, m.opts.SignInSettle); err != nil {
		return nil, err
	}

	if err := m.fill(ctx, page, IdentifierSelector, m.creds.Email); err != nil {
		return nil, fmt.Errorf("enter identifier: %w", err)
	}

	switch err := page.Click(ctx, SubmitSelector, browser.WaitNone); {
	case err == nil:
		if err := m.sleep(ctx, m.opts.IdentifierSettle); err != nil {
			return nil, err
		}
	case errors.Is(err, browser.ErrElementNotFound):
		m.logger.Debug("No identifier submit button, continuing")
	default:
		return nil, fmt.Errorf("submit identifier: %w", err)
	}

	if err := m.fill(ctx, page, SecretSelector, m.creds.Password); err != nil {
		return nil, fmt.Errorf("enter secret: %w", err)
	}

	m.logger.Info("Submitting credentials")
	if err := page.Click(ctx, SubmitSelector, browser.WaitNetworkIdle); err != nil {
		return nil, fmt.Errorf("submit credentials: %w", err)
	}
	if err := m.sleep(ctx, m.opts.LoginSettle); err != nil {
		return nil, err
	}

	landing, err := page.URL(ctx)
	if err != nil {
		return nil, fmt.Errorf("read landing url: %w", err)
	}

	result := &Result{LandingURL: landing}
	if m.isChallenge(landing) {
		result.ChallengeDetected = true
		m.logger.Warn("Second-factor challenge detected, waiting for manual completion",
			zap.Duration("wait", m.opts.TwoFactorWait))
		if err := m.sleep(ctx, m.opts.TwoFactorWait); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (m *Manager) fill(ctx context.Context, page browser.Page, selector, value string) error {
	if err := page.WaitForSelector(ctx, selector, m.opts.SelectorTimeout); err != nil {
		return err
	}
	return page.Type(ctx, selector, value)
}

func (m *Manager) isChallenge(url string) bool {
	for _, p := range m.opts.ChallengePatterns {
		if p != "" && strings.Contains(url, p) {
			return true
		}
	}
	return false
}

// Sleep waits for d, returning early with ctx's error if it ends first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
