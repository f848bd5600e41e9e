package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/rosterscan/internal/config"
	"github.com/nao1215/rosterscan/internal/extract"
	"github.com/nao1215/rosterscan/internal/metrics"
	"github.com/nao1215/rosterscan/internal/model"
	"github.com/nao1215/rosterscan/internal/paging"
)

// Orchestrator runs the listing pipeline for one page request at a time.
// It holds only configuration, so one Orchestrator may serve concurrent calls
// as long as its Fetcher does.
type Orchestrator struct {
	fetcher  Fetcher
	baseURL  string
	params   config.ListingParams
	markers  extract.Markers
	resolver paging.Resolver
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithResolver replaces the total page resolver.
func WithResolver(resolver paging.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithMarkers replaces the structural marker classes.
func WithMarkers(markers extract.Markers) Option {
	return func(o *Orchestrator) {
		o.markers = markers
	}
}

// WithListingParams replaces the fixed listing query parameters.
func WithListingParams(params config.ListingParams) Option {
	return func(o *Orchestrator) {
		o.params = params
	}
}

// WithBaseURL sets the listing endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *Orchestrator) {
		o.baseURL = baseURL
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// NewOrchestrator creates an Orchestrator that fetches through fetcher.
func NewOrchestrator(fetcher Fetcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:  fetcher,
		baseURL:  config.DefaultBaseURL,
		params:   config.DefaultListingParams(),
		markers:  extract.DefaultMarkers(),
		resolver: paging.SecondToLast{},
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// newPipeline assembles the four stages.
func (o *Orchestrator) newPipeline() *Pipeline {
	p := New(WithPipelineLogger(o.logger))
	p.AddStep(NewFetchStep(o.fetcher))
	p.AddStep(NewParseStep(o.markers))
	p.AddStep(NewMapStep(o.metrics))
	p.AddStep(NewPaginateStep(o.resolver))
	return p
}

// FetchPage fetches and extracts one listing page.
//
// It never returns a partial result: either Records, CurrentPage,
// TotalPages and SearchQuery are all filled from the page, or Error holds
// the failure message with empty Records and TotalPages of 1. CurrentPage
// echoes the request in both cases and is never clamped to TotalPages.
func (o *Orchestrator) FetchPage(ctx context.Context, req model.PageRequest) *model.PageResult {
	req = model.NewPageRequest(req.Page, req.SearchQuery)

	target, err := BuildURL(o.baseURL, o.params, req)
	if err != nil {
		o.metrics.ObserveFailure("build_url")
		o.logger.Error("failed to build listing URL", "base_url", o.baseURL, "error", err)
		return model.NewErrorResult(req, err.Error())
	}

	p := o.newPipeline()
	o.logger.Debug("running pipeline", "url", target, "steps", p.StepNames())

	state := &State{Request: req, URL: target}
	if err := p.Execute(ctx, state); err != nil {
		o.metrics.ObserveFailure(state.FailedStep)
		o.logger.Error("failed to fetch page",
			"url", target,
			"step", state.FailedStep,
			"error", err,
		)
		return model.NewErrorResult(req, err.Error())
	}

	o.metrics.ObserveTotalPages(state.TotalPages)
	o.logger.Debug("fetched page",
		"url", target,
		"records", len(state.Records),
		"total_pages", state.TotalPages,
	)

	return model.NewPageResult(req, state.Records, state.TotalPages)
}
