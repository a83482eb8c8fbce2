package browser

import (
	"context"
	"errors"
	"time"
)

// WaitPolicy selects what a navigation-causing call waits for.
type WaitPolicy int

const (
	// WaitNone returns as soon as the action is dispatched (or the load
	// event fires, for Navigate).
	WaitNone WaitPolicy = iota
	// WaitNetworkIdle additionally waits for network activity to settle.
	WaitNetworkIdle
)

func (w WaitPolicy) String() string {
	switch w {
	case WaitNone:
		return "none"
	case WaitNetworkIdle:
		return "network_idle"
	default:
		return "unknown"
	}
}

var (
	// ErrTimeout is wrapped by every error caused by an expired bound.
	ErrTimeout = errors.New("browser: timed out")
	// ErrElementNotFound is returned by Click when the selector matches nothing.
	ErrElementNotFound = errors.New("browser: element not found")
)

// Page is a single browser tab.
type Page interface {
	Navigate(ctx context.Context, url string, wait WaitPolicy) error
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error
	Type(ctx context.Context, selector, text string) error
	Click(ctx context.Context, selector string, wait WaitPolicy) error
	Content(ctx context.Context) (string, error)
	URL(ctx context.Context) (string, error)
	Screenshot(ctx context.Context, path string) error
	Close() error
}

// Launcher starts a browser and returns its first tab.
type Launcher interface {
	Launch(ctx context.Context) (Page, error)
}
