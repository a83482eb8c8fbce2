package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mfdash/internal/domain/session"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser/browsertest"
	"github.com/GriffinCanCode/mfdash/internal/providers/scraper"
	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

type stubAuth struct {
	result *session.Result
	err    error
	calls  int
}

func (a *stubAuth) SignIn(context.Context, browser.Page) (*session.Result, error) {
	a.calls++
	return a.result, a.err
}

func newTestSequencer(page browser.Page, auth Authenticator) *Sequencer {
	return NewSequencer(SequencerConfig{
		Page:      page,
		Auth:      auth,
		Extractor: scraper.NewExtractor(scraper.DefaultSelectors()),
		Pages:     Pages{Portfolio: portfolioURL, History: historyURL, Cashflow: cashflowURL},
		Settle:    3 * time.Second,
		Sleep:     noSleep,
		Now:       func() time.Time { return time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC) },
	})
}

func TestSequencerHappyPath(t *testing.T) {
	page := happyPage()
	seq := newTestSequencer(page, &stubAuth{result: &session.Result{}})

	doc, err := seq.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateDone, seq.State())
	assert.Equal(t, []State{
		StateIdle,
		StateAuthenticating,
		StateNavigatingPortfolio,
		StateNavigatingHistory,
		StateNavigatingCashflow,
		StateAggregating,
		StateDone,
	}, seq.Trail())

	assert.Equal(t, types.Summary{TotalAssets: 1750000, Income: 300000, Expense: 200000, Balance: 100000}, doc.Summary)
	require.Len(t, doc.AssetComposition, 2)
	assert.Equal(t, "Bank", doc.AssetComposition[0].Category)
	assert.Equal(t, int64(1250000), doc.AssetComposition[0].Total)
	assert.Len(t, doc.AssetHistory, 2)
	assert.Equal(t, []types.TransactionEntry{{Date: "2/25", Content: "給与", Category: "給与", Amount: 300000}}, doc.RecentTransactions)

	// Pages are visited strictly in order.
	var visited []string
	for _, call := range page.Calls {
		if call.Method == "Navigate" {
			visited = append(visited, call.Arguments.String(1))
		}
	}
	assert.Equal(t, []string{portfolioURL, historyURL, cashflowURL}, visited)
}

func TestSequencerAuthFailure(t *testing.T) {
	page := happyPage()
	cause := errors.New("password field never appeared")
	seq := newTestSequencer(page, &stubAuth{err: cause})

	_, err := seq.Run(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, StateFailed, seq.State())
	assert.Equal(t, []State{StateIdle, StateAuthenticating, StateFailed}, seq.Trail())
	page.AssertNotCalled(t, "Navigate", mock.Anything, portfolioURL, mock.Anything)
}

func TestSequencerHistoryTimeout(t *testing.T) {
	page := new(browsertest.MockPage)
	page.On("Navigate", mock.Anything, portfolioURL, browser.WaitNetworkIdle).Return(nil)
	page.On("Navigate", mock.Anything, historyURL, browser.WaitNetworkIdle).Return(browser.ErrTimeout)
	page.On("Content", mock.Anything).Return(portfolioHTML, nil)

	seq := newTestSequencer(page, &stubAuth{result: &session.Result{}})
	_, err := seq.Run(context.Background())

	assert.ErrorIs(t, err, browser.ErrTimeout)
	assert.Contains(t, err.Error(), "history")
	assert.Equal(t, []State{StateIdle, StateAuthenticating, StateNavigatingPortfolio, StateNavigatingHistory, StateFailed}, seq.Trail())
	page.AssertNotCalled(t, "Navigate", mock.Anything, cashflowURL, mock.Anything)
}

func TestSequencerSettlesAfterEachPage(t *testing.T) {
	var delays []time.Duration
	seq := newTestSequencer(happyPage(), &stubAuth{result: &session.Result{}})
	seq.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	_, err := seq.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second, 3 * time.Second}, delays)
}

func TestSequencerRunsOnce(t *testing.T) {
	seq := newTestSequencer(happyPage(), &stubAuth{result: &session.Result{}})
	_, err := seq.Run(context.Background())
	require.NoError(t, err)

	_, err = seq.Run(context.Background())
	assert.Error(t, err)
}

func TestSequencerWriteFailureEndsFailed(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	seq := NewSequencer(SequencerConfig{
		Page:      happyPage(),
		Auth:      &stubAuth{result: &session.Result{}},
		Extractor: scraper.NewExtractor(scraper.DefaultSelectors()),
		Pages:     Pages{Portfolio: portfolioURL, History: historyURL, Cashflow: cashflowURL},
		Output:    filepath.Join(blocker, "data.json"),
		Sleep:     noSleep,
	})

	_, err := seq.Run(context.Background())

	assert.ErrorContains(t, err, "write document")
	assert.Equal(t, StateFailed, seq.State())
	assert.Equal(t, []State{
		StateIdle,
		StateAuthenticating,
		StateNavigatingPortfolio,
		StateNavigatingHistory,
		StateNavigatingCashflow,
		StateAggregating,
		StateFailed,
	}, seq.Trail())
}
