package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Scheduler Workload Server

type Configuration struct {
	Scheduler Scheduler `mapstructure:"scheduler" debugmap:"visible"`
	Workload  Workload  `mapstructure:"workload" debugmap:"visible"`
	Server    Server    `mapstructure:"server" debugmap:"visible"`
	LogFormat string    `mapstructure:"log-format" default:"console" debugmap:"visible"`
	LogLevel  string    `mapstructure:"log-level" default:"info" debugmap:"visible"`
}

type Scheduler struct {
	// Workers is the pool size. 0 means one worker per CPU.
	Workers     int           `mapstructure:"workers" default:"0" debugmap:"visible"`
	IdleBackoff time.Duration `mapstructure:"idle-backoff" default:"0s" debugmap:"visible"`
}

type Workload struct {
	Tasks       int           `mapstructure:"tasks" default:"1000" debugmap:"visible"`
	Submitters  int           `mapstructure:"submitters" default:"1" debugmap:"visible"`
	MaxDuration time.Duration `mapstructure:"max-duration" default:"10ms" debugmap:"visible"`
	Population  int64         `mapstructure:"population" default:"100" debugmap:"visible"`
	Theta       float64       `mapstructure:"theta" default:"0.99" debugmap:"visible"`
	Seed        uint64        `mapstructure:"seed" default:"1" debugmap:"visible"`
	FailEvery   int           `mapstructure:"fail-every" default:"0" debugmap:"visible"`
	PanicEvery  int           `mapstructure:"panic-every" default:"0" debugmap:"visible"`
	DrainWait   time.Duration `mapstructure:"drain-wait" default:"5s" debugmap:"visible"`
}

type Server struct {
	Enabled    bool   `mapstructure:"enabled" default:"false" debugmap:"visible"`
	ServerMode string `mapstructure:"mode" default:"dev" debugmap:"visible"`
	HTTPPort   int    `mapstructure:"http-port" default:"8000" debugmap:"visible"`
}

// NumWorkers resolves the configured pool size.
func (s Scheduler) NumWorkers() int {
	if s.Workers == 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}

func (c *Configuration) Validate() error {
	if c.Scheduler.Workers < 0 {
		return fmt.Errorf("invalid number of workers %d: must be positive, or 0 for one per CPU", c.Scheduler.Workers)
	}
	if c.Scheduler.IdleBackoff < 0 {
		return errors.New("idle backoff cannot be negative")
	}
	if c.Workload.Tasks < 0 {
		return fmt.Errorf("invalid number of tasks %d", c.Workload.Tasks)
	}
	if c.Workload.Submitters <= 0 {
		return fmt.Errorf("invalid number of submitters %d: must be positive", c.Workload.Submitters)
	}
	if c.Workload.MaxDuration < 0 {
		return errors.New("max task duration cannot be negative")
	}
	if c.Workload.Population < 1 {
		return fmt.Errorf("invalid zipf population %d", c.Workload.Population)
	}
	if c.Workload.Theta < 0 || c.Workload.Theta >= 1 {
		return fmt.Errorf("invalid zipf theta %v: must be in [0, 1)", c.Workload.Theta)
	}
	if c.Workload.FailEvery < 0 || c.Workload.PanicEvery < 0 {
		return errors.New("fail-every and panic-every cannot be negative")
	}
	if c.Server.ServerMode != "dev" && c.Server.ServerMode != "prod" {
		return fmt.Errorf("invalid server mode %q: must be 'dev' or 'prod'", c.Server.ServerMode)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'console' or 'json'", c.LogFormat)
	}
	return nil
}
