package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/rosterscan/internal/extract"
	"github.com/nao1215/rosterscan/internal/model"
)

// State carries the data of one run from step to step.
// It is request-scoped and never shared between runs.
type State struct {
	// Request is the caller input.
	Request model.PageRequest

	// URL is the listing URL built for Request.
	URL string

	// Body is the fetched markup. The parse step clears it.
	Body string

	// Table is the records table snapshot.
	Table *extract.Table

	// Links are the pagination anchors in document order.
	Links []model.Anchor

	// Records are the mapped rows.
	Records []model.Record

	// TotalPages is the resolved total page count.
	TotalPages int

	// FailedStep names the step that stopped the run, if any.
	FailedStep string

	// PerformedSteps lists the steps that completed, in order.
	PerformedSteps []string
}

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Do executes the step against the shared state.
	Do(ctx context.Context, state *State) error

	// Name returns the step's name for logging and metrics.
	Name() string
}

// Pipeline executes steps in order.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets a custom logger for the pipeline.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Execute runs all steps in sequence and returns the first error.
// Cancellation is checked before each step; steps handle their own
// timeouts. On failure, state.FailedStep names the failing step.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			state.FailedStep = step.Name()
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"page", state.Request.Page,
		)

		if err := step.Do(ctx, state); err != nil {
			p.logger.Debug("step failed",
				"step", step.Name(),
				"page", state.Request.Page,
				"error", err,
			)
			state.FailedStep = step.Name()
			return err
		}

		state.PerformedSteps = append(state.PerformedSteps, step.Name())
	}

	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
