package asicminervalue

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"minerprofit-backend/lib/chrono"
	"minerprofit-backend/lib/htmlutil"
	"minerprofit-backend/lib/restyutil"
	"minerprofit-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://www.asicminervalue.com"

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMinRecords = 5
)

// ErrTooFewRecords means the page was fetched but its shape no longer
// yields enough miners to be trusted.
var ErrTooFewRecords = errors.New("too few miner records extracted")

var ErrIncomeNotFound = errors.New("income not found on miner page")

type ClientOptions struct {
	BaseUrl string
	// Timeout bounds the single fetch attempt, there are no retries.
	Timeout    time.Duration
	MinRecords int
	Clock      chrono.Clock
	// InstrumentOutput receives full request/response dumps when set.
	InstrumentOutput restyutil.InstrumentOutput
}

type Client struct {
	http       *resty.Client
	minRecords int
	clock      chrono.Clock
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MinRecords <= 0 {
		opts.MinRecords = DefaultMinRecords
	}
	if opts.Clock == nil {
		opts.Clock = chrono.NewStandardClock()
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeaders(map[string]string{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Upgrade-Insecure-Requests": "1",
	})
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(0)

	telemetry.InstrumentResty(client, "scrapers/asicminervalue/http")
	restyutil.InstrumentClient(client, opts.InstrumentOutput)

	return &Client{
		http:       client,
		minRecords: opts.MinRecords,
		clock:      opts.Clock,
	}
}

func (c *Client) get(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, res.StatusCode())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// FetchMiners fetches the listing page and extracts every miner on it. It
// fails with ErrTooFewRecords rather than returning a sparse list.
func (c *Client) FetchMiners(ctx context.Context) ([]MinerRecord, error) {
	ctx, span := tracer.Start(ctx, "FetchMiners")
	defer span.End()

	doc, err := c.get(ctx, "/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch listing page")
		return nil, err
	}

	records := ExtractText(htmlutil.VisibleText(doc), c.clock.Now())
	span.SetAttributes(attribute.Int("records", len(records)))
	extractedCounter.Add(ctx, int64(len(records)))

	if len(records) < c.minRecords {
		err := fmt.Errorf("%w: got %d, need %d", ErrTooFewRecords, len(records), c.minRecords)
		span.RecordError(err)
		span.SetStatus(codes.Error, "page shape drifted")
		return nil, err
	}

	slog.DebugContext(ctx, "extracted miners", "count", len(records))
	return records, nil
}

var incomeRegex = regexp.MustCompile(`(?i)Income\s*\$\s*([\d,.]+)`)

// MaxDailyIncomeUsd is the upper bound for a single miner's daily income.
const MaxDailyIncomeUsd = 1000

// FetchIncome reads the daily income figure from a single miner page,
// path looks like "/miners/bitmain/antminer-s21-pro-234th".
func (c *Client) FetchIncome(ctx context.Context, path string) (float64, error) {
	ctx, span := tracer.Start(ctx, "FetchIncome")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	doc, err := c.get(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch miner page")
		return 0, err
	}

	income, err := ParseIncome(htmlutil.VisibleText(doc))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return income, nil
}

// ParseIncome finds the "Income $X" daily figure in a miner page's text.
func ParseIncome(text string) (float64, error) {
	groups := incomeRegex.FindStringSubmatch(text)
	if groups == nil {
		return 0, ErrIncomeNotFound
	}
	income := parseNumber(groups[1])
	if !(income > 0 && income < MaxDailyIncomeUsd) {
		return 0, fmt.Errorf("%w: implausible value %s", ErrIncomeNotFound, groups[1])
	}
	return income, nil
}
