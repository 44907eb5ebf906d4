package lessonpdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	// Registered decoders for payload validation.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/JOhn12345re/lessonpdf/internal/fileutil"
	"github.com/JOhn12345re/lessonpdf/internal/logfields"
)

// Resolver defaults.
const (
	DefaultFetchTimeout  = 20 * time.Second
	DefaultMaxImageBytes = 10 << 20 // 10 MiB
)

// ImageResult is the outcome of resolving an image reference:
// either Present with the payload, or Absent.
type ImageResult struct {
	data        []byte
	contentType string
}

// Absent is the result of any failed or skipped resolution.
var Absent = ImageResult{}

// Present wraps a fetched image payload.
func Present(data []byte, contentType string) ImageResult {
	return ImageResult{data: data, contentType: contentType}
}

// Ok reports whether the result carries an image.
func (r ImageResult) Ok() bool { return len(r.data) > 0 }

// Bytes returns the image payload, nil when Absent.
func (r ImageResult) Bytes() []byte { return r.data }

// ContentType returns the MIME type of the payload, e.g. "image/jpeg".
func (r ImageResult) ContentType() string { return r.contentType }

// AssetResolver turns an image URL into bytes.
// Implementations never return an error: every failure is reported as Absent.
type AssetResolver interface {
	Resolve(ctx context.Context, url string) ImageResult
}

// Compile-time interface implementation checks.
var (
	_ AssetResolver = (*HTTPResolver)(nil)
	_ AssetResolver = OfflineResolver{}
)

// OfflineResolver resolves every reference to Absent.
// Used to build documents without network access.
type OfflineResolver struct{}

// Resolve always returns Absent.
func (OfflineResolver) Resolve(context.Context, string) ImageResult { return Absent }

// HTTPResolver fetches images over HTTP with a single bounded attempt.
type HTTPResolver struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
	logger   *slog.Logger
}

// ResolverOption configures an HTTPResolver.
type ResolverOption func(*HTTPResolver)

// WithFetchTimeout bounds each fetch.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithFetchTimeout(d time.Duration) ResolverOption {
	if d <= 0 {
		panic("lessonpdf: WithFetchTimeout duration must be positive")
	}
	return func(r *HTTPResolver) {
		r.timeout = d
	}
}

// WithMaxImageBytes caps the accepted payload size.
// Panics if n <= 0.
func WithMaxImageBytes(n int64) ResolverOption {
	if n <= 0 {
		panic("lessonpdf: WithMaxImageBytes size must be positive")
	}
	return func(r *HTTPResolver) {
		r.maxBytes = n
	}
}

// WithHTTPClient replaces the HTTP client (e.g. for proxies or tests).
func WithHTTPClient(c *http.Client) ResolverOption {
	return func(r *HTTPResolver) {
		if c != nil {
			r.client = c
		}
	}
}

// WithResolverLogger sets the logger used to report degraded fetches.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *HTTPResolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewHTTPResolver creates an HTTPResolver with default settings.
func NewHTTPResolver(opts ...ResolverOption) *HTTPResolver {
	r := &HTTPResolver{
		client:   &http.Client{},
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxImageBytes,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve performs one fetch of url. Non-HTTP references, timeouts, transport errors,
// non-2xx statuses, oversized bodies and payloads that do not decode as
// an image all yield Absent. No retry is attempted.
func (r *HTTPResolver) Resolve(ctx context.Context, url string) ImageResult {
	if strings.TrimSpace(url) == "" {
		return Absent
	}
	if !fileutil.IsURL(url) {
		r.logger.Warn("unsupported image reference, continuing without it", logfields.URL(url))
		return Absent
	}

	start := time.Now()
	data, contentType, err := r.fetch(ctx, url)
	if err != nil {
		r.logger.Warn("image unavailable, continuing without it",
			logfields.URL(url), logfields.Error(err), logfields.Duration(time.Since(start)))
		return Absent
	}

	r.logger.Debug("image fetched",
		logfields.URL(url), logfields.Bytes(len(data)), logfields.Duration(time.Since(start)))
	return Present(data, contentType)
}

// fetch downloads and validates one image.
func (r *HTTPResolver) fetch(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > r.maxBytes {
		return nil, "", fmt.Errorf("payload exceeds %d bytes", r.maxBytes)
	}

	contentType, err := sniffImage(data)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// sniffImage checks that data decodes as a supported image and returns its MIME type.
func sniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty payload")
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("malformed image: %w", err)
	}
	return "image/" + format, nil
}
