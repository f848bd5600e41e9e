// Package main provides the entry point for the rosterscan CLI.
//
// rosterscan fetches one page of a paginated roster listing, extracts the
// records table and reports the total page count.
//
// Usage:
//
//	rosterscan fetch --page 2
//	rosterscan fetch --search messi --json
//
// See --help for all available options.
package main

// main is the entry point for rosterscan.
func main() {
	Execute()
}
