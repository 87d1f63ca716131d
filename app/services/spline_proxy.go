package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	splineProxyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_spline_proxy_requests_total",
		Help: "Spline proxy requests by outcome.",
	}, []string{"outcome"})

	splineProxyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_spline_proxy_duration_seconds",
		Help:    "Time from upstream request to end of streaming.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
	})

	splineProxyBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_spline_proxy_bytes_total",
		Help: "Bytes streamed from the spline upstream.",
	})
)

// forwarded response headers on a successful upstream fetch.
var passthroughHeaders = []string{"Content-Type", "Cache-Control", "ETag", "Last-Modified"}

// SplineProxy streams the configured spline scene so the frontend can embed
// it from our own origin.
type SplineProxy struct {
	siteRepo   repositories.SiteRepositoryImpl
	client     *http.Client
	defaultURL string
	logger     *slog.Logger
}

// NewSplineProxy bounds connecting and waiting for the upstream headers by
// timeout. The body itself streams for as long as the upstream keeps sending.
func NewSplineProxy(siteRepo repositories.SiteRepositoryImpl, defaultURL string, timeout time.Duration, logger *slog.Logger) *SplineProxy {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout

	return &SplineProxy{
		siteRepo:   siteRepo,
		client:     &http.Client{Transport: transport},
		defaultURL: defaultURL,
		logger:     logger.With(slog.String("component", "spline_proxy")),
	}
}

// UpstreamURL is the first stored spline URL, or the configured default.
func (p *SplineProxy) UpstreamURL(ctx context.Context) (string, error) {
	u, err := p.siteRepo.FirstSplineURL(ctx)
	if err != nil {
		return "", fmt.Errorf("load spline url: %w", err)
	}
	if u == "" {
		return p.defaultURL, nil
	}
	return u, nil
}

// Stream fetches the upstream once and writes the answer to w. A transport
// failure becomes a 502; any other upstream status is mirrored as is. The
// returned error is only non-nil when nothing has been written yet.
func (p *SplineProxy) Stream(ctx context.Context, w http.ResponseWriter, userAgent, accept string) error {
	start := time.Now()

	target, err := p.UpstreamURL(ctx)
	if err != nil {
		splineProxyTotal.WithLabelValues("error").Inc()
		return err
	}

	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	if accept == "" {
		accept = "*/*"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		splineProxyTotal.WithLabelValues("bad_url").Inc()
		p.writeUpstreamFailure(w, err)
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := p.client.Do(req)
	if err != nil {
		splineProxyTotal.WithLabelValues("upstream_error").Inc()
		p.logger.Warn("upstream request failed", slog.String("url", target), slog.String("error", err.Error()))
		p.writeUpstreamFailure(w, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		} else {
			w.Header().Set("Content-Type", "text/html")
		}
		w.WriteHeader(resp.StatusCode)
		written, _ := io.Copy(w, resp.Body)
		splineProxyTotal.WithLabelValues("upstream_status").Inc()
		splineProxyBytes.Add(float64(written))
		p.logger.Warn("upstream returned non-200",
			slog.String("url", target),
			slog.Int("status", resp.StatusCode),
		)
		return nil
	}

	for _, h := range passthroughHeaders {
		if v := resp.Header.Get(h); v != "" {
			w.Header().Set(h, v)
		}
	}
	w.WriteHeader(http.StatusOK)

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		p.logger.Error("streaming spline body failed",
			slog.String("url", target),
			slog.Int64("bytes_written", written),
			slog.String("error", err.Error()),
		)
		splineProxyTotal.WithLabelValues("stream_error").Inc()
		return nil
	}

	splineProxyTotal.WithLabelValues("success").Inc()
	splineProxyDuration.Observe(time.Since(start).Seconds())
	splineProxyBytes.Add(float64(written))
	return nil
}

func (p *SplineProxy) writeUpstreamFailure(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = fmt.Fprintf(w, "Upstream request failed: %v", err)
}
