package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/workpool/internal/config"
	"github.com/kubev2v/workpool/internal/handlers"
	"github.com/kubev2v/workpool/internal/metrics"
	"github.com/kubev2v/workpool/internal/models"
	"github.com/kubev2v/workpool/internal/server"
	"github.com/kubev2v/workpool/internal/services"
	"github.com/kubev2v/workpool/internal/workload"
	"github.com/kubev2v/workpool/pkg/scheduler"
)

func newRunCommand(cfg *config.Configuration) (*cobra.Command, []cobraflags.Flag) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a synthetic workload through the worker pool and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	flags := []cobraflags.Flag{
		&cobraflags.IntFlag{
			Name:     "workers",
			ViperKey: "scheduler.workers",
			Usage:    "Number of workers, 0 for one per CPU",
			Value:    cfg.Scheduler.Workers,
		},
		&cobraflags.StringFlag{
			Name:         "idle-backoff",
			ViperKey:     "scheduler.idle-backoff",
			Usage:        "Idle worker sleep between polls, 0 to busy-poll",
			Value:        cfg.Scheduler.IdleBackoff.String(),
			ValidateFunc: isDuration("idle-backoff"),
		},
		&cobraflags.IntFlag{
			Name:     "tasks",
			ViperKey: "workload.tasks",
			Usage:    "Number of tasks to submit",
			Value:    cfg.Workload.Tasks,
		},
		&cobraflags.IntFlag{
			Name:     "submitters",
			ViperKey: "workload.submitters",
			Usage:    "Number of concurrent submitters",
			Value:    cfg.Workload.Submitters,
		},
		&cobraflags.StringFlag{
			Name:         "max-duration",
			ViperKey:     "workload.max-duration",
			Usage:        "Duration of the slowest task rank",
			Value:        cfg.Workload.MaxDuration.String(),
			ValidateFunc: isDuration("max-duration"),
		},
		&cobraflags.IntFlag{
			Name:     "population",
			ViperKey: "workload.population",
			Usage:    "Number of Zipf ranks",
			Value:    int(cfg.Workload.Population),
		},
		&cobraflags.StringFlag{
			Name:     "theta",
			ViperKey: "workload.theta",
			Usage:    "Zipf skew in [0, 1)",
			Value:    strconv.FormatFloat(cfg.Workload.Theta, 'g', -1, 64),
			ValidateFunc: func(v string) error {
				if _, err := strconv.ParseFloat(v, 64); err != nil {
					return fmt.Errorf("invalid theta %q: %w", v, err)
				}
				return nil
			},
		},
		&cobraflags.StringFlag{
			Name:     "seed",
			ViperKey: "workload.seed",
			Usage:    "Random seed",
			Value:    strconv.FormatUint(cfg.Workload.Seed, 10),
			ValidateFunc: func(v string) error {
				if _, err := strconv.ParseUint(v, 10, 64); err != nil {
					return fmt.Errorf("invalid seed %q: %w", v, err)
				}
				return nil
			},
		},
		&cobraflags.IntFlag{
			Name:     "fail-every",
			ViperKey: "workload.fail-every",
			Usage:    "Every Nth task returns an error, 0 to disable",
			Value:    cfg.Workload.FailEvery,
		},
		&cobraflags.IntFlag{
			Name:     "panic-every",
			ViperKey: "workload.panic-every",
			Usage:    "Every Nth task panics, 0 to disable",
			Value:    cfg.Workload.PanicEvery,
		},
		&cobraflags.StringFlag{
			Name:         "drain-wait",
			ViperKey:     "workload.drain-wait",
			Usage:        "Max time to wait for the queue to drain",
			Value:        cfg.Workload.DrainWait.String(),
			ValidateFunc: isDuration("drain-wait"),
		},
		&cobraflags.BoolFlag{
			Name:     "serve",
			ViperKey: "server.enabled",
			Usage:    "Serve the diagnostics API until interrupted",
			Value:    cfg.Server.Enabled,
		},
		&cobraflags.StringFlag{
			Name:         "server-mode",
			ViperKey:     "server.mode",
			Usage:        "Server mode: 'dev' or 'prod'",
			Value:        cfg.Server.ServerMode,
			ValidateFunc: oneOf("server-mode", "dev", "prod"),
		},
		&cobraflags.IntFlag{
			Name:     "http-port",
			ViperKey: "server.http-port",
			Usage:    "Diagnostics API port",
			Value:    cfg.Server.HTTPPort,
		},
	}
	cobraflags.Register(cmd, flags...)

	return cmd, flags
}

func isDuration(name string) func(string) error {
	return func(v string) error {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		return nil
	}
}

func run(ctx context.Context, out io.Writer, cfg *config.Configuration) error {
	log := zap.S().Named("workpool")

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	sched, err := scheduler.NewScheduler(
		cfg.Scheduler.NumWorkers(),
		scheduler.WithIdleBackoff(cfg.Scheduler.IdleBackoff),
		scheduler.WithObserver(collector),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	defer sched.Close()
	metrics.RegisterScheduler(reg, sched)

	builder, err := workload.NewBuilder(cfg.Workload)
	if err != nil {
		return err
	}
	runner := services.NewRunner(sched, builder, services.RunnerOptions{
		Tasks:      cfg.Workload.Tasks,
		Submitters: cfg.Workload.Submitters,
		DrainWait:  cfg.Workload.DrainWait,
	})

	if cfg.Server.Enabled {
		srv := server.NewServer(cfg.Server, reg, func(router *gin.RouterGroup) {
			handlers.RegisterHandlers(router, handlers.New(sched, runner))
		})
		go func() {
			if err := srv.Start(ctx); err != nil {
				log.Errorw("diagnostics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Errorw("failed to stop diagnostics server", "error", err)
			}
		}()
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("workload run failed: %w", err)
	}
	printReport(out, report)

	if cfg.Server.Enabled {
		log.Infow("run finished, serving diagnostics until interrupted", "port", cfg.Server.HTTPPort)
		<-ctx.Done()
	}

	return nil
}

func printReport(out io.Writer, r *models.Report) {
	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	_, _ = bold.Fprintf(out, "workers=%d submitters=%d tasks=%d\n", r.Workers, r.Submitters, r.Tasks)
	_, _ = ok.Fprintf(out, "  succeeded: %d\n", r.Succeeded)
	_, _ = bad.Fprintf(out, "  failed:    %d\n", r.Failed)
	_, _ = warn.Fprintf(out, "  broken:    %d\n", r.Broken)
	_, _ = fmt.Fprintf(out, "  elapsed:   %s (%.0f tasks/s, busy %s)\n", r.Elapsed.Round(time.Microsecond), r.Throughput(), r.Busy.Round(time.Microsecond))
}
