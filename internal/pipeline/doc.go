// Package pipeline turns a page request into a PageResult.
//
// A Pipeline executes Steps in sequence over a shared State and stops at the
// first failure. The Orchestrator builds the listing URL, runs the four
// stages (fetch, parse, map_rows, paginate) and converts the outcome into
// exactly one of the two PageResult shapes: records with pagination, or an
// error message with empty records and a total of one page.
//
// Design decision: We keep the step pattern even for four fixed stages
// because it gives every stage a name for logs and metrics, and lets tests
// replace a stage without a network.
package pipeline
