// Package server provides the diagnostics HTTP server for workpool.
//
// The server uses the Gin web framework and supports two modes of operation:
// development (debug logging from gin) and production (gin release mode).
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                      Diagnostics Server                       │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  ginzap.Ginzap (request/response logging)               │  │
//	│  │  ginzap.RecoveryWithZap (panic recovery with zap)       │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics     → promhttp handler over the given Gatherer      │
//	│  /api/v1/...  → handlers registered via callback              │
//	│  anything else→ 404 JSON error                                │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Lifecycle
//
// Creation:
//
//	srv := server.NewServer(cfg.Server, registry, func(router *gin.RouterGroup) {
//	    handlers.RegisterHandlers(router, handler)
//	})
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete.
// Start returns nil once Stop has been called.
package server
