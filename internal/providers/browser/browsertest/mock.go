// Package browsertest provides testify mocks for the browser contract.
package browsertest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
)

// MockPage is a mock implementation of browser.Page.
type MockPage struct {
	mock.Mock
}

// Navigate mocks the Navigate method.
func (m *MockPage) Navigate(ctx context.Context, url string, wait browser.WaitPolicy) error {
	return m.Called(ctx, url, wait).Error(0)
}

// WaitForSelector mocks the WaitForSelector method.
func (m *MockPage) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	return m.Called(ctx, selector, timeout).Error(0)
}

// Type mocks the Type method.
func (m *MockPage) Type(ctx context.Context, selector, text string) error {
	return m.Called(ctx, selector, text).Error(0)
}

// Click mocks the Click method.
func (m *MockPage) Click(ctx context.Context, selector string, wait browser.WaitPolicy) error {
	return m.Called(ctx, selector, wait).Error(0)
}

// Content mocks the Content method.
func (m *MockPage) Content(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// URL mocks the URL method.
func (m *MockPage) URL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Screenshot mocks the Screenshot method.
func (m *MockPage) Screenshot(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// Close mocks the Close method.
func (m *MockPage) Close() error {
	return m.Called().Error(0)
}

// MockLauncher is a mock implementation of browser.Launcher.
type MockLauncher struct {
	mock.Mock
}

// Launch mocks the Launch method.
func (m *MockLauncher) Launch(ctx context.Context) (browser.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(browser.Page), args.Error(1)
}

// NewMockPage creates a page whose form, content and close calls succeed.
// Navigate, URL and Screenshot have no defaults so tests state them.
func NewMockPage(t *testing.T) *MockPage {
	t.Helper()
	m := new(MockPage)

	m.On("WaitForSelector", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("Type", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("Click", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("Content", mock.Anything).Return("<html><body></body></html>", nil).Maybe()
	m.On("Close").Return(nil).Maybe()

	return m
}

// NewMockLauncher creates a launcher returning page.
func NewMockLauncher(t *testing.T, page browser.Page) *MockLauncher {
	t.Helper()
	m := new(MockLauncher)
	m.On("Launch", mock.Anything).Return(page, nil).Maybe()
	return m
}
