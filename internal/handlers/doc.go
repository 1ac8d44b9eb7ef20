// Package handlers implements the diagnostics HTTP API for workpool.
//
// Handlers are thin: they read state from the scheduler and the runner
// service and map service errors to HTTP status codes.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-JSON conversion                                     │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│               Scheduler            │        Runner service      │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
//	┌────────┬────────────┬──────────────────────────────────────────────┐
//	│ Method │ Endpoint   │ Description                                  │
//	├────────┼────────────┼──────────────────────────────────────────────┤
//	│ GET    │ /scheduler │ Workers, pending tasks and task counters     │
//	│ GET    │ /runner    │ Runner state and last report                 │
//	│ POST   │ /runner    │ Start a workload run in the background       │
//	└────────┴────────────┴──────────────────────────────────────────────┘
//
// # Error Mapping
//
//	┌──────────────────────┬──────────────────────────────┐
//	│ Service error        │ HTTP status                  │
//	├──────────────────────┼──────────────────────────────┤
//	│ RunInProgressError   │ 409 Conflict                 │
//	│ anything else        │ 500 Internal Server Error    │
//	└──────────────────────┴──────────────────────────────┘
//
// The queue length reported by GET /scheduler is a snapshot. Clients must not
// use it to decide whether their own tasks completed; they have futures for that.
package handlers
