// Package http serves the synced dataset to the dashboard frontend.
//
// Routes:
//   - GET /data.json: the canonical document, or the demonstration dataset
//     when no sync has produced one yet (X-Data-Source tells which)
//   - POST /api/refresh: re-read the document from disk
//   - GET /api/diagnostics/screenshot: the last failure screenshot
//   - GET /healthz: liveness plus dataset age
package http
