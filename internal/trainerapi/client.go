// Package trainerapi is the client for the coach backend REST API. One
// narrow method per endpoint group; the http client is injected so handlers
// can be tested without a live backend.
package trainerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/lkupryaha/trenerbot/internal/faults"
	"github.com/lkupryaha/trenerbot/internal/report"
	"github.com/lkupryaha/trenerbot/internal/telemetry/metrics"
	"github.com/lkupryaha/trenerbot/internal/telemetry/tracing"
	"github.com/lkupryaha/trenerbot/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Terminal domain outcomes. These end an interaction cleanly with their own
// user-facing message; they are not faults.
var (
	ErrNoCurrentPlan = errors.New("no current training plan")
	ErrReportExists  = errors.New("report already submitted for this week")
	ErrAccessDenied  = errors.New("access denied")
	ErrUnknownToken  = errors.New("unknown token")
)

const (
	requestTimeout = 10 * time.Second

	apiKeyHeader = "X-API-Key"
)

// Endpoints are the backend route names, configured rather than hardcoded
// because they differ between deployments.
type Endpoints struct {
	Trainings        string
	CurrentTrainings string
	Reports          string
	Allowed          string
}

type Client struct {
	baseURL    string
	version    string
	endpoints  Endpoints
	httpClient *http.Client
	metrics    *metrics.Manager

	mutex  sync.RWMutex
	apiKey string
}

func NewClient(
	baseURL, version string,
	endpoints Endpoints,
	apiKey string,
	httpClient *http.Client,
	metricsManager *metrics.Manager,
) *Client {
	return &Client{
		baseURL:    baseURL,
		version:    version,
		endpoints:  endpoints,
		apiKey:     apiKey,
		httpClient: httpClient,
		metrics:    metricsManager,
	}
}

// SetAPIKey rebinds the backend credential, e.g. after the user enters a
// fresh access token.
func (c *Client) SetAPIKey(apiKey string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.apiKey = apiKey
}

func (c *Client) currentAPIKey() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.apiKey
}

func (c *Client) endpointURL(endpoint string, params url.Values) string {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, c.version, endpoint)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, endpoint string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error", start)
		return nil, faults.FromTransport(endpoint, err)
	}
	c.observe(endpoint, strconv.Itoa(resp.StatusCode), start)
	return resp, nil
}

func (c *Client) observe(endpoint, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.HistogramBackendRequestDuration.
		WithLabelValues(endpoint, status).
		Observe(time.Since(start).Seconds())
}

// CurrentPlans returns the metadata of the user's active training plan(s).
// A 404 from the backend means there is nothing to report against yet.
func (c *Client) CurrentPlans(ctx context.Context, tgID int64) (_ []report.PlanMetadata, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainerapi.currentPlans")
	defer span.End()
	span.SetAttributes(attribute.Int64("tg.id", tgID))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("tg_id", strconv.FormatInt(tgID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(c.endpoints.CurrentTrainings, params), nil)
	if err != nil {
		return nil, fmt.Errorf("new current plans request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.currentAPIKey())

	resp, err := c.do(ctx, c.endpoints.CurrentTrainings, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoCurrentPlan
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, faults.NewStatus(faults.KindRequest, c.endpoints.CurrentTrainings, resp.StatusCode)
	}

	var payload struct {
		Resources []report.PlanMetadata `json:"Resources"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, faults.New(faults.KindParse, c.endpoints.CurrentTrainings, err)
	}

	log.Debugf("current plans for %d: %d resource(s)", tgID, len(payload.Resources))
	return payload.Resources, nil
}

// Trainings returns the training records of one calendar week. An empty
// slice means no plan exists for that week.
func (c *Client) Trainings(ctx context.Context, tgID int64, year, week int) (_ []training.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainerapi.trainings")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("tg.id", tgID),
		attribute.Int("training.year", year),
		attribute.Int("training.week", week),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("tg_id", strconv.FormatInt(tgID, 10))
	params.Set("year", strconv.Itoa(year))
	params.Set("week", strconv.Itoa(week))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(c.endpoints.Trainings, params), nil)
	if err != nil {
		return nil, fmt.Errorf("new trainings request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.currentAPIKey())

	resp, err := c.do(ctx, c.endpoints.Trainings, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, faults.NewStatus(faults.KindRequest, c.endpoints.Trainings, resp.StatusCode)
	}

	var payload struct {
		Resources []training.Record `json:"Resources"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, faults.New(faults.KindParse, c.endpoints.Trainings, err)
	}

	return payload.Resources, nil
}

// SubmitReport posts a weekly report. The backend serializes duplicate
// submissions with a 409, surfaced as ErrReportExists and never retried.
func (c *Client) SubmitReport(ctx context.Context, rwm report.ReportWithMetadata) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainerapi.submitReport")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("tg.id", rwm.TgID),
		attribute.Int("training.year", rwm.Year),
		attribute.Int("training.week", rwm.Week),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(rwm)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(c.endpoints.Reports, nil), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.currentAPIKey())

	resp, err := c.do(ctx, c.endpoints.Reports, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return ErrReportExists
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return faults.NewStatus(faults.KindRequest, c.endpoints.Reports, resp.StatusCode)
	}

	log.Debugf("report for %d submitted, week %d year %d", rwm.TgID, rwm.Week, rwm.Year)
	return nil
}

// Allowed checks an access token against the backend. A 403 means denied
// outright; an empty resource list means the token is unknown; a resource
// with Allowed=false means access expired.
func (c *Client) Allowed(ctx context.Context, apiKey string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainerapi.allowed")
	defer span.End()
	defer func() {
		if err != nil && !errors.Is(err, ErrAccessDenied) && !errors.Is(err, ErrUnknownToken) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("api_key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(c.endpoints.Allowed, params), nil)
	if err != nil {
		return false, fmt.Errorf("new allowed request: %w", err)
	}

	resp, err := c.do(ctx, c.endpoints.Allowed, req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return false, ErrAccessDenied
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, faults.NewStatus(faults.KindRequest, c.endpoints.Allowed, resp.StatusCode)
	}

	var payload struct {
		Resources []struct {
			Allowed bool `json:"Allowed"`
		} `json:"Resources"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, faults.New(faults.KindParse, c.endpoints.Allowed, err)
	}

	if len(payload.Resources) == 0 {
		return false, ErrUnknownToken
	}

	return payload.Resources[0].Allowed, nil
}
