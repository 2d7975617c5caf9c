package indices

import (
	"context"
	"io"
	"net/http"
	nurl "net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

func (s *Scraper) downloadFile(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", s.UserAgent)

	var resp *http.Response
	op := func() error {
		var err error
		resp, err = s.httpClient.Do(req) //nolint:bodyclose
		if err == nil && (resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests) {
			err = errors.Errorf("failed to fetch with status code: %d", resp.StatusCode)
			resp.Body.Close()
		}
		return err
	}

	exp := backoff.NewExponentialBackOff()
	exp.MaxElapsedTime = maxElapsedTime
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(s.MaxRetries)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}

	return resp, nil
}

// fetch downloads url and returns its body together with the final URL
// after redirects. Any status outside 2xx is an error.
func (s *Scraper) fetch(ctx context.Context, url string) ([]byte, *nurl.URL, error) {
	resp, err := s.downloadFile(ctx, url)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "GET %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, nil, errors.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "GET %s: read body", url)
	}

	return body, resp.Request.URL, nil
}
