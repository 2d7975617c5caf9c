package indices

import "github.com/pkg/errors"

// Fatal conditions, returned by Scraper.Scrape. A failed page request
// is joined to ErrFetchPage with fmt.Errorf's %w rather than
// errors.Wrap, so that errors.Is still matches the sentinel.
var (
	ErrFetchPage = errors.New("failed to fetch index page")
	ErrNoPanels  = errors.New("no panels found")
)

// Reasons for a missing panel field. ErrNoTitle makes the panel be
// skipped, the rest are only warnings.
var (
	ErrNoTitle     = errors.New("title not found")
	ErrNoCover     = errors.New("cover image not found")
	ErrNoSummary   = errors.New("summary not found")
	ErrNoDownloads = errors.New("download list not found")
)

// ErrNoItems is returned by WriteReport when there is nothing to write.
var ErrNoItems = errors.New("no items to write")
