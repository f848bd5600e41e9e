// Package paging derives pager metadata for a listing page.
//
// A Resolver reads the total page count out of the pagination links and
// Window computes which page numbers a pager shows around the current page.
// Navigation bundles both with previous/next state for writers.
package paging
