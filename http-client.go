package indices

import (
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"
	"time"
)

func newHTTPClient(transport http.RoundTripper, timeout time.Duration, skipTLSVerification bool) *http.Client {
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if skipTLSVerification {
			t.TLSClientConfig = &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec
			}
		}
		transport = t
	}

	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		Jar:       jar,
	}
}
