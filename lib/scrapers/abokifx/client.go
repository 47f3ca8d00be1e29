package abokifx

import (
	"aboki/lib/currency"
	"aboki/lib/restyutil"
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type ClientOptions struct {
	BaseUrl   string
	Timeout   time.Duration
	UserAgent string
	// skips wrapping the transport with the cloudflare bot check bypass
	DisableCloudflareBypass bool
	// if set, every http exchange is dumped here
	Dump restyutil.InstrumentOutput
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second * 30
	}

	baseUrl, err := url.Parse(strings.TrimSuffix(opts.BaseUrl, "/"))
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(baseUrl.String())
	if !opts.DisableCloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	restyutil.InstrumentClient(client, tracer, opts.Dump)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

type Request struct {
	// relative to the base url, may be empty
	Path  string
	Query url.Values
	// defaults to GET, a POST sends Form url encoded
	Method string
	Form   url.Values
}

// Fetch returns the body of a page on the site. Anything but a 200 is a
// *TransportError, an empty body is ErrEmptyResponse.
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	path := "/" + strings.TrimPrefix(req.Path, "/")
	span.SetAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	)

	r := c.Http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(req.Query)
	if method != http.MethodGet && req.Form != nil {
		r.SetFormDataFromValues(req.Form)
	}

	res, err := r.Execute(method, path)
	if err != nil {
		c.countFetch(ctx, path, "transport_error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, &TransportError{Url: c.urlFor(path, req.Query), Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		c.countFetch(ctx, path, "bad_status")
		span.SetStatus(codes.Error, res.Status())
		return nil, &TransportError{Url: c.urlFor(path, req.Query), StatusCode: res.StatusCode()}
	}

	body := res.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		c.countFetch(ctx, path, "empty")
		span.SetStatus(codes.Error, "empty response")
		return nil, ErrEmptyResponse
	}

	c.countFetch(ctx, path, "ok")
	return body, nil
}

func (c *Client) urlFor(path string, query url.Values) string {
	u := c.BaseUrl.JoinPath(path)
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) countFetch(ctx context.Context, path, outcome string) {
	fetchCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("path", path),
		attribute.String("outcome", outcome),
	))
}

func (c *Client) fetchTable(ctx context.Context, req Request) (Table, error) {
	body, err := c.Fetch(ctx, req)
	if err != nil {
		return Table{}, err
	}
	return Extract(ctx, body)
}

// Recent returns the front page listing of the latest usd, gbp and eur
// quotes.
func (c *Client) Recent(ctx context.Context) (Table, error) {
	return c.fetchTable(ctx, Request{})
}

func (c *Client) Rates(ctx context.Context, rateType RateType) (Table, error) {
	return c.fetchTable(ctx, Request{
		Path:  "ratetypes",
		Query: url.Values{"rates": {string(rateType)}},
	})
}

// CurrentRates returns the latest front page buy rate of each currency.
func (c *Client) CurrentRates(ctx context.Context, currencies []currency.Code) (currency.RateMap, error) {
	table, err := c.Recent(ctx)
	if err != nil {
		return currency.RateMap{}, err
	}
	return SelectCurrentRates(table, currencies)
}

// Ping checks that the front page can be fetched.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Fetch(ctx, Request{})
	return err
}
