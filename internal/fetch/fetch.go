// Package fetch downloads release assets over HTTPS.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	// DefaultUserAgent is the User-Agent header sent with requests.
	DefaultUserAgent = "bootstrap-ubi/1.0"

	// maxRedirects caps redirect following. GitHub release asset URLs
	// redirect to object storage, so redirects must be followed.
	maxRedirects = 10
)

// TransportError reports a request that produced no HTTP status at all:
// DNS failure, refused connection, TLS failure, or a dead socket.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a response whose status code was not 200.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s returned HTTP status %d", e.URL, e.Status)
}

// Fetcher performs single-shot HTTP downloads.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a fetcher.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
	}
}

// Download performs exactly one GET of url and writes the body to
// destPath. There are no retries: a bootstrap run either works or
// reports why it did not. Failures before any status code is obtained
// surface as *TransportError; a non-200 status surfaces as *StatusError.
func (f *Fetcher) Download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: url, Status: resp.StatusCode}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create download file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("write download file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close download file: %w", err)
	}

	return nil
}
