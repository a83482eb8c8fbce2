/*
Package browser drives a headless Chrome session for the sync pipeline.

# Overview

The pipeline never talks to Chrome directly. It depends on the Page and
Launcher interfaces, which expose only what a scripted login and a few page
visits need:

  - Navigate: load a URL, optionally waiting for network idle
  - WaitForSelector: block until an element is ready or a timeout expires
  - Type, Click: drive form inputs
  - Content: serialize the rendered DOM for extraction
  - URL: report the current location
  - Screenshot: write a PNG for diagnosis
  - Close: release the tab and the browser process

# Engine

ChromeLauncher implements the contract on chromedp. Network idle is
detected from Page.lifecycleEvent: after a new document's "init" event the
page waits for "networkAlmostIdle" (at most two in-flight requests for
500ms).

# Errors

Every wait is bounded. A bound that expires returns an error wrapping
ErrTimeout. Click on a selector with no match returns ErrElementNotFound
without waiting.

# Usage Example

	launcher := browser.NewChromeLauncher(browser.DefaultOptions(), logger)
	page, err := launcher.Launch(ctx)
	if err != nil {
		return err
	}
	defer page.Close()

	if err := page.Navigate(ctx, "https://moneyforward.com/bs/portfolio", browser.WaitNetworkIdle); err != nil {
		return err
	}
	html, err := page.Content(ctx)
*/
package browser
