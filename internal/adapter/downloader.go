package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
)

type httpContentFetcher struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPContentFetcher constructs an HTTP implementation of [ContentFetcher].
// The underlying client never follows redirects and bounds only the wait for
// response headers by adapterCfg.RequestTimeout, so long bodies can stream.
func NewHTTPContentFetcher(adapterCfg config.Adapter, logger *logger.Logger) ContentFetcher {
	return &httpContentFetcher{
		client: utils.NewTransferClient(adapterCfg.RequestTimeout),
		logger: logger,
	}
}

// Locate implements [ContentFetcher].
func (f *httpContentFetcher) Locate(ctx context.Context, rawURL string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: locate request: %w", ErrTransport, redactURLError(err))
	}

	status := resp.StatusCode()
	if status < http.StatusMultipleChoices || status >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: expected redirect, got %d", ErrUnexpectedStatus, status)
	}

	location := strings.TrimSpace(resp.Header().Get("Location"))
	if location == "" {
		return "", fmt.Errorf("%w: redirect %d without location", ErrUnexpectedStatus, status)
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse request url: %w", redactURLError(err))
	}
	target, err := base.Parse(location)
	if err != nil {
		return "", fmt.Errorf("%w: invalid location %q: %w", ErrUnexpectedStatus, location, err)
	}

	f.logger.Debug().
		Str("func", "httpContentFetcher.Locate").
		Int("status", status).
		Str("host", target.Host).
		Msg("content location resolved")

	return target.String(), nil
}

// Fetch implements [ContentFetcher].
func (f *httpContentFetcher) Fetch(ctx context.Context, rawURL string, offset int64) (io.ReadCloser, bool, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Range", "bytes="+strconv.FormatInt(offset, 10)+"-").
		Get(rawURL)
	if err != nil {
		return nil, false, fmt.Errorf("%w: fetch request: %w", ErrTransport, redactURLError(err))
	}

	body := resp.RawBody()
	switch resp.StatusCode() {
	case http.StatusPartialContent:
		return body, true, nil
	case http.StatusOK:
		return body, false, nil
	default:
		if body != nil {
			_ = body.Close()
		}
		return nil, false, fmt.Errorf("%w: fetch answered %d", ErrUnexpectedStatus, resp.StatusCode())
	}
}

// redactURLError rebuilds a *url.Error so its text carries no query string.
// Download URLs hold the OAuth token as a query parameter, and transport
// errors end up in logs, the journal and the status API.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""

	return u.String()
}
