package indices

import (
	"context"
	nurl "net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ItemResult is the outcome of processing a single panel. Warnings holds
// every recoverable problem found along the way.
type ItemResult struct {
	Item     Item
	Folder   string
	Warnings []error
}

func (r *ItemResult) warn(err error) {
	r.Warnings = append(r.Warnings, err)
}

// processPanel extracts the fields of panel and saves its assets.
// The only error it returns is ErrNoTitle, in which case nothing
// has been written to disk.
func (s *Scraper) processPanel(ctx context.Context, panel *html.Node, pageURL *nurl.URL) (*ItemResult, error) {
	title, err := ExtractTitle(panel, s.Selectors)
	if err != nil {
		s.warnf("%v, skipping panel", err)
		return nil, err
	}
	s.infof("title found: %s", title)

	result := &ItemResult{
		Item:   Item{Title: title},
		Folder: filepath.Join(s.OutputDir, FolderName(title)),
	}

	if err := os.MkdirAll(result.Folder, 0755); err != nil {
		s.errorf("failed to create folder %s: %v", result.Folder, err)
		result.warn(errors.Wrapf(err, "create folder %s", result.Folder))
	}

	s.saveCover(ctx, panel, pageURL, result)
	s.readSummary(panel, result)
	s.saveDownloads(ctx, panel, pageURL, result)

	return result, nil
}

func (s *Scraper) saveCover(ctx context.Context, panel *html.Node, pageURL *nurl.URL, result *ItemResult) {
	src, err := ExtractCoverURL(panel, s.Selectors)
	if err != nil {
		s.warnf("%v", err)
		result.warn(err)
		return
	}

	url := resolveURL(src, pageURL)
	s.infof("downloading cover image from %s", url)
	if err := s.saveFile(ctx, url, filepath.Join(result.Folder, coverFileName)); err != nil {
		s.errorf("failed to download cover image: %v", err)
		result.warn(err)
		return
	}
	s.infof("cover image downloaded")
}

func (s *Scraper) readSummary(panel *html.Node, result *ItemResult) {
	summary, err := ExtractSummary(panel, s.Selectors)
	if err != nil {
		s.warnf("%v", err)
		result.warn(err)
		return
	}

	result.Item.Summary = summary
	s.infof("summary found: %s...", truncate(summary, 60))
}

// saveDownloads fetches every link of the download list. A URL is
// recorded in the item only once its file has been written.
func (s *Scraper) saveDownloads(ctx context.Context, panel *html.Node, pageURL *nurl.URL, result *ItemResult) {
	links, err := ExtractDownloadLinks(panel, s.Selectors)
	if err != nil {
		s.warnf("%v", err)
		result.warn(err)
		return
	}
	s.infof("found %d files to download", len(links))

	for _, link := range links {
		url := resolveURL(link, pageURL)
		s.infof("downloading file from %s", url)

		dst := filepath.Join(result.Folder, fileNameFromURL(url))
		if err := s.saveFile(ctx, url, dst); err != nil {
			s.errorf("failed to download file: %v", err)
			result.warn(err)
			continue
		}

		result.Item.DownloadURLs = append(result.Item.DownloadURLs, url)
		s.infof("file downloaded")
	}
}

// saveFile downloads url into dst, replacing any existing file.
func (s *Scraper) saveFile(ctx context.Context, url, dst string) error {
	if url == "" {
		return errors.New("empty url")
	}

	body, _, err := s.fetch(ctx, url)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, body, 0644); err != nil {
		return errors.Wrapf(err, "write %s", dst)
	}

	s.verbosef("saved %d bytes to %s", len(body), dst)
	return nil
}
