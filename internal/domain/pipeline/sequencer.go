package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/domain/aggregate"
	"github.com/GriffinCanCode/mfdash/internal/domain/session"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/sink"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/providers/scraper"
	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// Authenticator signs a page in.
type Authenticator interface {
	SignIn(ctx context.Context, page browser.Page) (*session.Result, error)
}

// Pages holds the absolute URLs of the data pages.
type Pages struct {
	Portfolio string
	History   string
	Cashflow  string
}

// Sequencer walks one page through the sync states.
type Sequencer struct {
	page      browser.Page
	auth      Authenticator
	extractor *scraper.Extractor
	pages     Pages
	output    string
	settle    time.Duration
	sleep     session.SleepFunc
	now       func() time.Time
	metrics   *monitoring.Metrics
	logger    *logging.Logger

	state State
	trail []State
}

// SequencerConfig bundles Sequencer dependencies. The document is written
// to Output while aggregating; an empty Output skips the write.
type SequencerConfig struct {
	Page      browser.Page
	Auth      Authenticator
	Extractor *scraper.Extractor
	Pages     Pages
	Output    string
	Settle    time.Duration
	Sleep     session.SleepFunc
	Now       func() time.Time
	Metrics   *monitoring.Metrics
	Logger    *logging.Logger
}

// NewSequencer creates a sequencer in the Idle state.
func NewSequencer(cfg SequencerConfig) *Sequencer {
	s := &Sequencer{
		page:      cfg.Page,
		auth:      cfg.Auth,
		extractor: cfg.Extractor,
		pages:     cfg.Pages,
		output:    cfg.Output,
		settle:    cfg.Settle,
		sleep:     cfg.Sleep,
		now:       cfg.Now,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		state:     StateIdle,
		trail:     []State{StateIdle},
	}
	if s.sleep == nil {
		s.sleep = session.Sleep
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.metrics == nil {
		s.metrics = monitoring.NewMetrics()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// State returns the current state.
func (s *Sequencer) State() State {
	return s.state
}

// Trail returns every state entered so far, in order.
func (s *Sequencer) Trail() []State {
	return append([]State(nil), s.trail...)
}

// Run executes the full sequence and returns the aggregated document.
func (s *Sequencer) Run(ctx context.Context) (types.Document, error) {
	if s.state != StateIdle {
		return types.Document{}, fmt.Errorf("sequencer already ran (state %s)", s.state)
	}

	s.transition(StateAuthenticating)
	timer := s.metrics.StartStep("sign_in")
	res, err := s.auth.SignIn(ctx, s.page)
	timer.Stop()
	if err != nil {
		return s.fail(fmt.Errorf("sign in: %w", err))
	}
	if res.ChallengeDetected {
		s.logger.Warn("Continuing after unverified second-factor wait", zap.String("url", res.LandingURL))
	}

	s.transition(StateNavigatingPortfolio)
	snap, err := s.visit(ctx, "portfolio", s.pages.Portfolio)
	if err != nil {
		return s.fail(err)
	}
	assets := s.extractor.Portfolio(snap)
	s.observe("portfolio", assets.Strategy, len(assets.Records))

	s.transition(StateNavigatingHistory)
	snap, err = s.visit(ctx, "history", s.pages.History)
	if err != nil {
		return s.fail(err)
	}
	history := s.extractor.History(snap)
	s.observe("history", history.Strategy, len(history.Records))

	s.transition(StateNavigatingCashflow)
	snap, err = s.visit(ctx, "cashflow", s.pages.Cashflow)
	if err != nil {
		return s.fail(err)
	}
	summary, txs := s.extractor.Cashflow(snap)
	s.observe("cashflow", txs.Strategy, len(txs.Records))

	s.transition(StateAggregating)
	doc := aggregate.Build(assets.Records, history.Records, summary, txs.Records, s.now())
	if s.output != "" {
		timer := s.metrics.StartStep("write")
		err := sink.Write(doc, s.output)
		timer.Stop()
		if err != nil {
			return s.fail(fmt.Errorf("write document: %w", err))
		}
	}

	s.transition(StateDone)
	return doc, nil
}

// visit loads url, lets the page settle and snapshots its DOM.
func (s *Sequencer) visit(ctx context.Context, name, url string) (*scraper.Snapshot, error) {
	timer := s.metrics.StartStep(name)
	defer timer.Stop()

	s.logger.Info("Fetching page", zap.String("page", name), zap.String("url", url))

	if err := s.page.Navigate(ctx, url, browser.WaitNetworkIdle); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := s.sleep(ctx, s.settle); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	html, err := s.page.Content(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	snap, err := scraper.LoadSnapshot(html)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return snap, nil
}

func (s *Sequencer) observe(page, strategy string, count int) {
	s.metrics.RecordRecords(page, strategy, count)
	fields := []zap.Field{zap.String("page", page), zap.String("strategy", strategy), zap.Int("records", count)}
	if count == 0 {
		s.logger.Warn("No records extracted", fields...)
		return
	}
	s.logger.Info("Extracted records", fields...)
}

func (s *Sequencer) transition(to State) {
	if !s.state.CanTransition(to) {
		s.logger.DPanic("Illegal state transition", zap.Stringer("from", s.state), zap.Stringer("to", to))
	}
	s.logger.Debug("State transition", zap.Stringer("from", s.state), zap.Stringer("to", to))
	s.state = to
	s.trail = append(s.trail, to)
}

func (s *Sequencer) fail(err error) (types.Document, error) {
	s.logger.Debug("Step failed", zap.Stringer("state", s.state), zap.Error(err))
	s.transition(StateFailed)
	return types.Document{}, err
}
