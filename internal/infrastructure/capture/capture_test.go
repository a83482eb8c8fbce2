package capture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser/browsertest"
)

func TestGuardSuccessSkipsCapture(t *testing.T) {
	page := new(browsertest.MockPage)
	c := New("shot.png", "", nil, nil)

	err := c.Guard(context.Background(), page, func() error { return nil })

	assert.NoError(t, err)
	page.AssertNotCalled(t, "Screenshot", mock.Anything, mock.Anything)
}

func TestGuardReturnsOriginalError(t *testing.T) {
	page := new(browsertest.MockPage)
	page.On("Screenshot", mock.Anything, "shot.png").Return(nil).Once()
	cause := errors.New("navigation timeout")

	err := New("shot.png", "", nil, nil).Guard(context.Background(), page, func() error { return cause })

	assert.Same(t, cause, err)
	page.AssertNumberOfCalls(t, "Screenshot", 1)
}

func TestCaptureFailureDoesNotReplaceError(t *testing.T) {
	page := new(browsertest.MockPage)
	page.On("Screenshot", mock.Anything, mock.Anything).Return(errors.New("target closed"))
	metrics := monitoring.NewMetrics()
	cause := errors.New("boom")

	err := New("shot.png", "", metrics, nil).Guard(context.Background(), page, func() error { return cause })

	assert.Same(t, cause, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Captures.WithLabelValues("screenshot", "error")))
}

func TestCaptureRunsOnCancelledContext(t *testing.T) {
	page := new(browsertest.MockPage)
	page.On("Screenshot", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New("shot.png", "", nil, nil).Guard(ctx, page, func() error { return ctx.Err() })

	assert.ErrorIs(t, err, context.Canceled)
	page.AssertExpectations(t)
}

func TestCaptureWritesSanitizedSnapshot(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "diag", "last.html")
	page := new(browsertest.MockPage)
	page.On("Screenshot", mock.Anything, mock.Anything).Return(nil)
	page.On("Content", mock.Anything).Return(`<div class="bs-group"><script>steal()</script>資産</div>`, nil)

	New(filepath.Join(dir, "shot.png"), snapshot, nil, nil).Capture(context.Background(), page)

	data, err := os.ReadFile(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(data), `class="bs-group"`)
	assert.NotContains(t, string(data), "steal")
}
