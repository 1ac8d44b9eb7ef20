// Package config defines the configuration structure for workpool.
//
// Configuration is organized into logical sections (Scheduler, Workload, Server)
// and uses github.com/creasty/defaults struct tags for default values. The
// cobra command binds its flags to viper keys matching the mapstructure tags,
// so every field can be set from a flag, an environment variable
// (WORKPOOL_WORKERS, ...) or a config file.
//
// # Code Generation
//
// Option helpers and DebugMap are generated with optgen:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Scheduler Workload Server
//
// Every field carries a `debugmap:"visible"` tag so the loaded configuration
// can be logged through DebugMap().
//
// # Configuration Structure
//
//	Configuration
//	├── Scheduler      - Worker pool settings
//	├── Workload       - Synthetic workload used by `workpool run`
//	├── Server         - Diagnostics HTTP server
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Scheduler Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ Workers          │ 0       │ Pool size, 0 means runtime.NumCPU()    │
//	│ IdleBackoff      │ 0s      │ Idle worker sleep, 0 busy-polls        │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Workload Configuration
//
//	┌─────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field       │ Default │ Description                                  │
//	├─────────────┼─────────┼──────────────────────────────────────────────┤
//	│ Tasks       │ 1000    │ Number of tasks to submit                    │
//	│ Submitters  │ 1       │ Concurrent submitting goroutines             │
//	│ MaxDuration │ 10ms    │ Duration of the least popular rank           │
//	│ Population  │ 100     │ Number of Zipf ranks                         │
//	│ Theta       │ 0.99    │ Zipf skew, in [0, 1)                         │
//	│ Seed        │ 1       │ Random seed                                  │
//	│ FailEvery   │ 0       │ Every Nth task returns an error (0 = never)  │
//	│ PanicEvery  │ 0       │ Every Nth task panics (0 = never)            │
//	│ DrainWait   │ 5s      │ Max time to wait for an empty queue          │
//	└─────────────┴─────────┴──────────────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ Enabled          │ false   │ Serve the diagnostics API              │
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithScheduler(config.Scheduler{Workers: 8}),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	sched, err := scheduler.NewScheduler(cfg.Scheduler.NumWorkers())
package config
