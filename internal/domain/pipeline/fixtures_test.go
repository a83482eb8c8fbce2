package pipeline

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/config"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser"
	"github.com/GriffinCanCode/mfdash/internal/providers/browser/browsertest"
)

const (
	portfolioURL = "https://moneyforward.com/bs/portfolio"
	historyURL   = "https://moneyforward.com/bs/history"
	cashflowURL  = "https://moneyforward.com/cf"
	signInURL    = "https://moneyforward.com/sign_in"
)

const portfolioHTML = `<html><body>
<div class="bs-group"><h3>Bank</h3>
  <div class="account"><span class="account-name">A</span><span class="amount">1,000,000円</span></div>
  <div class="account"><span class="account-name">C</span><span class="amount">250,000円</span></div>
</div>
<div class="bs-group"><h3>Stock</h3>
  <div class="account"><span class="account-name">B</span><span class="amount">500,000円</span></div>
</div>
</body></html>`

const historyHTML = `<table>
<tr><td>2026/02</td><td>1,750,000円</td></tr>
<tr><td>2026/01</td><td>1,700,000円</td></tr>
</table>`

const cashflowHTML = `<html><body>
<span class="income">300,000円</span><span class="expense">200,000円</span>
<table><tr><td>2/25</td><td>給与</td><td>給与</td><td>300,000</td></tr></table>
</body></html>`

func noSleep(context.Context, time.Duration) error { return nil }

func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Credentials = config.CredentialsConfig{Email: "user@example.com", Password: "hunter2"}
	cfg.Output.DataPath = dir + "/dashboard/public/data.json"
	cfg.Output.ScreenshotPath = dir + "/error-screenshot.png"
	return cfg
}

// happyPage returns a page that signs in and serves the three data pages.
func happyPage() *browsertest.MockPage {
	page := new(browsertest.MockPage)
	page.On("Navigate", mock.Anything, mock.Anything, browser.WaitNetworkIdle).Return(nil)
	page.On("WaitForSelector", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	page.On("Type", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	page.On("Click", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	page.On("URL", mock.Anything).Return("https://moneyforward.com/", nil)
	page.On("Content", mock.Anything).Return(portfolioHTML, nil).Once()
	page.On("Content", mock.Anything).Return(historyHTML, nil).Once()
	page.On("Content", mock.Anything).Return(cashflowHTML, nil).Once()
	page.On("Close").Return(nil)
	return page
}
