package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mfdash/internal/shared/paths"
)

const idleEvent = "networkAlmostIdle"

// Options configures the Chrome process.
type Options struct {
	Headless          bool
	NoSandbox         bool
	ExecPath          string
	UserAgent         string
	Width             int
	Height            int
	NavigationTimeout time.Duration
}

// DefaultOptions returns headless Chrome with a 1280x800 viewport.
func DefaultOptions() Options {
	return Options{
		Headless:          true,
		NoSandbox:         true,
		Width:             1280,
		Height:            800,
		NavigationTimeout: 30 * time.Second,
	}
}

// ChromeLauncher launches Chrome through chromedp.
type ChromeLauncher struct {
	opts   Options
	logger *logging.Logger
}

// NewChromeLauncher creates a launcher.
func NewChromeLauncher(opts Options, logger *logging.Logger) *ChromeLauncher {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &ChromeLauncher{opts: opts, logger: logger}
}

// Launch starts Chrome and opens one tab. The browser outlives ctx; it is
// released only by Close.
func (l *ChromeLauncher) Launch(ctx context.Context) (Page, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", l.opts.Headless),
		chromedp.WindowSize(l.opts.Width, l.opts.Height),
	)
	if l.opts.NoSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox, chromedp.Flag("disable-setuid-sandbox", true))
	}
	if l.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(l.opts.ExecPath))
	}
	if l.opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(l.opts.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(l.logger.Sugar().Debugf),
		chromedp.WithErrorf(l.logger.Sugar().Warnf),
	)

	// The first Run allocates the browser and must not carry a deadline.
	err := chromedp.Run(tabCtx,
		page.Enable(),
		page.SetLifecycleEventsEnabled(true),
		chromedp.EmulateViewport(int64(l.opts.Width), int64(l.opts.Height)),
	)
	if err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	l.logger.Debug("Browser launched",
		zap.Bool("headless", l.opts.Headless),
		zap.Int("width", l.opts.Width),
		zap.Int("height", l.opts.Height))

	return &chromePage{
		ctx:         tabCtx,
		cancel:      tabCancel,
		allocCancel: allocCancel,
		navTimeout:  l.opts.NavigationTimeout,
	}, nil
}

type chromePage struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	navTimeout  time.Duration
}

// bound derives a chromedp context limited by timeout and by the caller's ctx.
func (p *chromePage) bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithTimeout(p.ctx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

func (p *chromePage) Navigate(ctx context.Context, url string, wait WaitPolicy) error {
	runCtx, cancel := p.bound(ctx, p.navTimeout)
	defer cancel()

	idle := p.listenIdle(runCtx, wait)
	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		return wrap("navigate "+url, err)
	}
	return wrap("navigate "+url, idle(runCtx))
}

func (p *chromePage) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	runCtx, cancel := p.bound(ctx, timeout)
	defer cancel()

	return wrap("wait for "+selector, chromedp.Run(runCtx, chromedp.WaitReady(selector, chromedp.ByQuery)))
}

func (p *chromePage) Type(ctx context.Context, selector, text string) error {
	runCtx, cancel := p.bound(ctx, p.navTimeout)
	defer cancel()

	return wrap("type into "+selector, chromedp.Run(runCtx, chromedp.SendKeys(selector, text, chromedp.ByQuery)))
}

func (p *chromePage) Click(ctx context.Context, selector string, wait WaitPolicy) error {
	runCtx, cancel := p.bound(ctx, p.navTimeout)
	defer cancel()

	var nodes []*cdp.Node
	if err := chromedp.Run(runCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0))); err != nil {
		return wrap("click "+selector, err)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("click %s: %w", selector, ErrElementNotFound)
	}

	idle := p.listenIdle(runCtx, wait)
	if err := chromedp.Run(runCtx, chromedp.MouseClickNode(nodes[0])); err != nil {
		return wrap("click "+selector, err)
	}
	return wrap("click "+selector, idle(runCtx))
}

func (p *chromePage) Content(ctx context.Context) (string, error) {
	runCtx, cancel := p.bound(ctx, p.navTimeout)
	defer cancel()

	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", wrap("read content", err)
	}
	return html, nil
}

func (p *chromePage) URL(ctx context.Context) (string, error) {
	runCtx, cancel := p.bound(ctx, p.navTimeout)
	defer cancel()

	var location string
	if err := chromedp.Run(runCtx, chromedp.Location(&location)); err != nil {
		return "", wrap("read location", err)
	}
	return location, nil
}

func (p *chromePage) Screenshot(ctx context.Context, path string) error {
	runCtx, cancel := p.bound(ctx, p.navTimeout)
	defer cancel()

	var buf []byte
	if err := chromedp.Run(runCtx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return wrap("capture screenshot", err)
	}

	if err := paths.EnsureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}

// Close shuts the browser down. Safe to call more than once.
func (p *chromePage) Close() error {
	err := chromedp.Cancel(p.ctx)
	p.cancel()
	p.allocCancel()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// listenIdle subscribes to lifecycle events before an action that may load
// a new document. The returned func blocks until the new document reports
// network idle or ctx ends.
func (p *chromePage) listenIdle(ctx context.Context, wait WaitPolicy) func(context.Context) error {
	if wait != WaitNetworkIdle {
		return func(context.Context) error { return nil }
	}

	done := make(chan struct{})
	var once sync.Once
	listenCtx, stop := context.WithCancel(ctx)
	tracker := &idleTracker{}
	if c := chromedp.FromContext(ctx); c != nil && c.Target != nil {
		// The main frame shares its ID with the page target.
		tracker.frame = cdp.FrameID(c.Target.TargetID)
	}

	chromedp.ListenTarget(listenCtx, func(ev interface{}) {
		e, ok := ev.(*page.EventLifecycleEvent)
		if !ok {
			return
		}
		if tracker.observe(e) {
			once.Do(func() { close(done) })
			stop()
		}
	})

	return func(waitCtx context.Context) error {
		defer stop()
		select {
		case <-done:
			return nil
		case <-waitCtx.Done():
			return waitCtx.Err()
		}
	}
}

// idleTracker reports when the main frame's new document goes network
// idle. Events from other frames are ignored; an empty frame accepts all.
type idleTracker struct {
	frame    cdp.FrameID
	seenInit bool
}

func (t *idleTracker) observe(e *page.EventLifecycleEvent) bool {
	if t.frame != "" && e.FrameID != t.frame {
		return false
	}
	switch e.Name {
	case "init":
		t.seenInit = true
	case idleEvent:
		return t.seenInit
	}
	return false
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
