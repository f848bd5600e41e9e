package pipeline

import (
	"context"
	"errors"

	"github.com/nao1215/rosterscan/internal/extract"
	"github.com/nao1215/rosterscan/internal/metrics"
	"github.com/nao1215/rosterscan/internal/paging"
)

// Step names, also used as the "stage" metrics label.
const (
	StepFetch    = "fetch"
	StepParse    = "parse"
	StepMapRows  = "map_rows"
	StepPaginate = "paginate"
)

// errNoTable is returned when map_rows or paginate run without a parse step.
var errNoTable = errors.New("no records table in pipeline state")

// Fetcher retrieves the markup at a URL.
// *fetch.Fetcher satisfies this interface.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// FetchStep retrieves the listing markup.
type FetchStep struct {
	fetcher Fetcher
}

// NewFetchStep creates a fetch step.
func NewFetchStep(fetcher Fetcher) *FetchStep {
	return &FetchStep{fetcher: fetcher}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return StepFetch
}

// Do fetches state.URL into state.Body.
func (s *FetchStep) Do(ctx context.Context, state *State) error {
	body, err := s.fetcher.Fetch(ctx, state.URL)
	if err != nil {
		return err
	}
	state.Body = body
	return nil
}

// ParseStep locates the records table and the pagination links.
type ParseStep struct {
	markers extract.Markers
}

// NewParseStep creates a parse step using markers.
func NewParseStep(markers extract.Markers) *ParseStep {
	return &ParseStep{markers: markers}
}

// Name returns the step name.
func (s *ParseStep) Name() string {
	return StepParse
}

// Do parses state.Body and fills state.Table and state.Links.
// The body and the parsed tree are released before returning.
func (s *ParseStep) Do(_ context.Context, state *State) error {
	doc, err := extract.ParseWithMarkers(state.Body, s.markers)
	if err != nil {
		return err
	}
	state.Body = ""

	table, err := doc.FindRecordsTable()
	if err != nil {
		return err
	}
	state.Table = table
	state.Links = doc.FindPaginationLinks()
	return nil
}

// MapStep converts table rows into records.
type MapStep struct {
	metrics *metrics.Recorder
}

// NewMapStep creates a map_rows step. m may be nil.
func NewMapStep(m *metrics.Recorder) *MapStep {
	return &MapStep{metrics: m}
}

// Name returns the step name.
func (s *MapStep) Name() string {
	return StepMapRows
}

// Do fills state.Records from state.Table.
func (s *MapStep) Do(_ context.Context, state *State) error {
	if state.Table == nil {
		return errNoTable
	}
	state.Records = extract.MapRows(state.Table)
	s.metrics.ObserveRows(len(state.Records), len(state.Table.Rows)-len(state.Records))
	return nil
}

// PaginateStep resolves the total page count.
type PaginateStep struct {
	resolver paging.Resolver
}

// NewPaginateStep creates a paginate step. A nil resolver uses paging.SecondToLast.
func NewPaginateStep(resolver paging.Resolver) *PaginateStep {
	if resolver == nil {
		resolver = paging.SecondToLast{}
	}
	return &PaginateStep{resolver: resolver}
}

// Name returns the step name.
func (s *PaginateStep) Name() string {
	return StepPaginate
}

// Do fills state.TotalPages from state.Links.
func (s *PaginateStep) Do(_ context.Context, state *State) error {
	if state.Table == nil {
		return errNoTable
	}
	state.TotalPages = s.resolver.Resolve(state.Links)
	return nil
}
