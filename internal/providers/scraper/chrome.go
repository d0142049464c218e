package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/applymate/applymate/internal/extract"
)

// Job postings are routinely rendered client-side, so a plain GET returns an
// empty shell. Chrome renders the page and this script picks the densest
// description container, falling back to the largest text block.
const extractScript = `(() => {
	const clean = t => t.replace(/\s+/g, ' ').trim();
	const selectors = [
		"div[class*='job-description']",
		"div[class*='description']",
		"div[class*='details']",
		"#job-description",
		"[class*='posting']",
		"article",
	];
	let best = '';
	for (const sel of selectors) {
		for (const el of document.querySelectorAll(sel)) {
			const t = clean(el.innerText || '');
			if (t.length > best.length) best = t;
		}
		if (best.length > 100) return best;
	}
	for (const el of document.querySelectorAll('p, div, section')) {
		const t = clean(el.innerText || '');
		if (t.length > best.length) best = t;
	}
	if (best) return best;
	return clean(document.body ? document.body.innerText : '');
})()`

const (
	minContentLen = 100
	settleDelay   = 2 * time.Second
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Chrome scrapes pages with a headless browser so JavaScript-rendered
// postings are readable.
type Chrome struct{}

func NewChrome() *Chrome { return &Chrome{} }

func (c *Chrome) Scrape(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var text string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.Evaluate(extractScript, &text),
	)
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	text = extract.NormalizeWhitespace(text)
	if len(text) < minContentLen {
		return "", errors.New("page yielded no job description content")
	}
	return text, nil
}
