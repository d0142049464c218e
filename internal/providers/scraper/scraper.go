package scraper

import "context"

// Scraper fetches the rendered text content of a job posting page.
type Scraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}
