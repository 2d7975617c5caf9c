package indices

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// DefaultURL is the index listing page scraped when no URL is given.
const DefaultURL = "https://imco.org.mx/indices/#indices"

var (
	defaultUserAgent  = "Mozilla/5.0"
	defaultReportPath = "indices_data.xlsx"
	maxElapsedTime    = 30 * time.Second
)

// Request is data of a scraping request. When Input is set the page
// is read from it instead of being downloaded, and URL is only used
// to resolve relative links.
type Request struct {
	Input io.Reader
	URL   string
}

// Item is the metadata extracted from one index panel.
type Item struct {
	Title        string
	Summary      string
	DownloadURLs []string // only the URLs that were saved, in page order
}

// Result is the outcome of a scraping run that got past the fatal stages.
type Result struct {
	PageURL  string
	Panels   int
	Items    []Item
	Skipped  int     // panels without a title
	Warnings []error // recoverable per-field problems, in encounter order

	// ReportPath is empty when there were no items to report.
	ReportPath string
	ReportErr  error
}

// Scraper downloads an index listing page, saves the assets of every
// panel into its own folder and writes a spreadsheet summary.
type Scraper struct {
	UserAgent        string
	EnableLog        bool
	EnableVerboseLog bool
	Logger           logrus.FieldLogger

	Transport           http.RoundTripper
	RequestTimeout      time.Duration
	MaxRetries          int
	SkipTLSVerification bool

	OutputDir  string // parent of the per-item folders
	ReportPath string // relative paths are resolved against OutputDir
	Selectors  Selectors

	isValidated bool
	httpClient  *http.Client
}

// Validate prepares Scraper to make sure its configurations
// are valid and ready to use. Must be run at least once before
// scraping started.
func (s *Scraper) Validate() {
	if s.UserAgent == "" {
		s.UserAgent = defaultUserAgent
	}

	if s.Logger == nil {
		s.Logger = logrus.StandardLogger()
	}

	if s.MaxRetries < 0 {
		s.MaxRetries = 0
	}

	if s.OutputDir == "" {
		s.OutputDir = "."
	}

	if s.ReportPath == "" {
		s.ReportPath = defaultReportPath
	}

	s.Selectors = s.Selectors.withDefaults()
	s.httpClient = newHTTPClient(s.Transport, s.RequestTimeout, s.SkipTLSVerification)
	s.isValidated = true
}

// Scrape runs the whole pipeline for the specified request. An error is
// returned only for fatal conditions: the page can't be fetched or parsed,
// or it has no panels. Everything else is reported through Result.
func (s *Scraper) Scrape(ctx context.Context, req Request) (*Result, error) {
	if !s.isValidated {
		return nil, errors.New("scraper hasn't been validated")
	}

	if req.URL == "" && req.Input == nil {
		return nil, errors.New("request url is not specified")
	}

	var pageURL *nurl.URL
	if req.URL != "" {
		url, err := nurl.Parse(req.URL)
		if err != nil || url.Scheme == "" || url.Hostname() == "" {
			return nil, errors.Errorf("url \"%s\" is not valid", req.URL)
		}
		pageURL = url
	}

	doc, pageURL, err := s.loadPage(ctx, req.Input, pageURL)
	if err != nil {
		return nil, err
	}

	panels, err := FindPanels(doc, s.Selectors)
	if err != nil {
		s.errorf("no elements match %q, check the page structure", s.Selectors.Panel)
		return nil, err
	}
	s.infof("found %d panels", len(panels))

	result := &Result{Panels: len(panels)}
	if pageURL != nil {
		result.PageURL = pageURL.String()
	}

	for i, panel := range panels {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.infof("processing panel %d", i+1)
		itemResult, err := s.processPanel(ctx, panel, pageURL)
		if err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, err)
			continue
		}

		result.Items = append(result.Items, itemResult.Item)
		result.Warnings = append(result.Warnings, itemResult.Warnings...)
	}

	if len(result.Items) == 0 {
		s.infof("no data collected, report not written")
		return result, nil
	}

	reportPath := s.reportPath()
	if err := WriteReport(reportPath, result.Items); err != nil {
		s.errorf("failed to save report: %v", err)
		result.ReportErr = err
		return result, nil
	}

	result.ReportPath = reportPath
	s.infof("data saved to %s", reportPath)
	return result, nil
}

// loadPage reads the page from input, or downloads it when input is nil.
// The returned URL is the final URL after redirects, used as the base
// for relative links.
func (s *Scraper) loadPage(ctx context.Context, input io.Reader, pageURL *nurl.URL) (*html.Node, *nurl.URL, error) {
	if input == nil {
		s.infof("requesting page %s", pageURL)
		body, finalURL, err := s.fetch(ctx, pageURL.String())
		if err != nil {
			s.errorf("page request failed: %v", err)
			return nil, nil, fmt.Errorf("%w: %v", ErrFetchPage, err)
		}
		s.infof("page request succeeded")

		input = bytes.NewReader(body)
		pageURL = finalURL
	}

	doc, err := html.Parse(input)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse HTML")
	}

	return doc, pageURL, nil
}

func (s *Scraper) reportPath() string {
	if filepath.IsAbs(s.ReportPath) {
		return s.ReportPath
	}
	return filepath.Join(s.OutputDir, s.ReportPath)
}
