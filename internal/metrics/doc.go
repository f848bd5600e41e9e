// Package metrics records fetch and pipeline metrics with Prometheus.
//
// Every Recorder owns a private registry so that tests and repeated CLI
// invocations never collide on the global default registerer. The CLI
// exports the registry in text exposition format with WriteTextfile, which
// is the format read by the node_exporter textfile collector.
//
// Metrics:
//   - rosterscan_fetch_requests_total{outcome} (Counter): fetch attempts by outcome
//   - rosterscan_fetch_duration_seconds (Histogram): duration of fetch attempts
//   - rosterscan_fetch_response_bytes (Histogram): decoded body size
//   - rosterscan_records_extracted_total (Counter): records produced by the mapper
//   - rosterscan_rows_skipped_total (Counter): rows dropped for having too few cells
//   - rosterscan_pipeline_failures_total{stage} (Counter): failed pipeline runs by stage
//   - rosterscan_total_pages (Gauge): total page count of the last successful run
package metrics
