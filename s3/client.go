// Package s3 provides a minimal S3 client built on the SigV4 signing core.
// It exists to exercise the signer end-to-end; it is not a general S3 SDK.
package s3

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ochsenreither/go-sigv4/request"
	"github.com/ochsenreither/go-sigv4/signer"
)

const serviceName = "s3"

// Config holds the S3 client configuration.
type Config struct {
	// Region is the AWS region (e.g., "us-east-1"). Required.
	Region string

	// Credentials are the signing credentials. Required.
	Credentials signer.Credentials

	// Endpoint overrides the default region endpoint. Useful for
	// S3-compatible servers. Optional.
	Endpoint string

	// HTTPClient is the transport used for requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives structured client logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Client is an S3 API client. Safe for concurrent use.
type Client struct {
	region     string
	endpoint   *url.URL
	creds      signer.Credentials
	httpClient *http.Client
	logger     *zap.Logger
	signer     *signer.Signer
	now        func() time.Time
}

// New creates an S3 client from config.
func New(cfg Config) (*Client, error) {
	if cfg.Region == "" {
		return nil, errors.New("s3: region is required")
	}
	if !cfg.Credentials.HasKeys() {
		return nil, errors.New("s3: credentials are required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.Region)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "s3: parsing endpoint %q", endpoint)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("s3: endpoint %q must include scheme and host", endpoint)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		region:     cfg.Region,
		endpoint:   u,
		creds:      cfg.Credentials,
		httpClient: httpClient,
		logger:     logger,
		signer:     signer.NewSigner(),
		now:        time.Now,
	}, nil
}

// ListBuckets returns the buckets owned by the authenticated account.
func (c *Client) ListBuckets(ctx context.Context) (*ListBucketsResult, error) {
	req := request.New(http.MethodGet, "/")
	req.AddHeader("Host", c.endpoint.Host)

	if err := c.signer.SignRequest(req, c.creds, c.region, serviceName, c.now()); err != nil {
		return nil, errors.Wrap(err, "s3: signing ListBuckets request")
	}

	httpReq, err := c.toHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("sending ListBuckets request",
		zap.String("endpoint", c.endpoint.String()),
		zap.String("region", c.region),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "s3: ListBuckets request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.Errorf("s3: ListBuckets returned %s: %s", resp.Status, body)
	}

	var doc listAllMyBucketsResult
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "s3: decoding ListBuckets response")
	}

	result := doc.result()
	c.logger.Debug("ListBuckets succeeded", zap.Int("buckets", len(result.Buckets)))
	return result, nil
}

// toHTTPRequest converts the signed request façade into an http.Request
// bound to the client endpoint. The Host header moves to the http.Request
// Host field; a body, if present, is transmitted by reading the request's
// body stream, which the signer leaves readable from offset zero, so hashing
// and transmission read the same bytes.
func (c *Client) toHTTPRequest(ctx context.Context, req *request.Request) (*http.Request, error) {
	u := *c.endpoint
	u.Path = req.Path()
	u.RawQuery = req.Query()

	var body io.Reader
	if s := req.Body(); s != nil {
		body = s
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "s3: building HTTP request")
	}

	for _, h := range req.Headers() {
		if strings.EqualFold(h.Name, "Host") {
			httpReq.Host = h.Value
			continue
		}
		httpReq.Header.Add(h.Name, h.Value)
	}

	return httpReq, nil
}
