package main

import (
	"fmt"
	"slices"

	"github.com/go-extras/cobraflags"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/workpool/internal/config"
	"github.com/kubev2v/workpool/internal/logger"
)

const envPrefix = "WORKPOOL"

func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	configFlag := &cobraflags.StringFlag{
		Name:       "config",
		Usage:      "Path to a configuration file (yaml, json or toml)",
		Persistent: true,
	}
	globalFlags := []cobraflags.Flag{
		&cobraflags.StringFlag{
			Name:         "log-format",
			Usage:        "Log format: 'console' or 'json'",
			Value:        cfg.LogFormat,
			Persistent:   true,
			ValidateFunc: oneOf("log-format", "console", "json"),
		},
		&cobraflags.StringFlag{
			Name:       "log-level",
			Usage:      "Log level: debug, info, warn, error",
			Value:      cfg.LogLevel,
			Persistent: true,
		},
	}

	runCmd, runFlags := newRunCommand(cfg)
	flags := append(slices.Clone(globalFlags), runFlags...)

	root := &cobra.Command{
		Use:          "workpool",
		Short:        "Fixed-size worker pool runtime and load generator",
		SilenceUsage: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, args []string) error {
				return loadConfiguration(configFlag.GetString(), flags, cfg)
			},
			func(cmd *cobra.Command, args []string) error {
				l, err := logger.New(cfg.LogFormat, cfg.LogLevel)
				if err != nil {
					return err
				}
				zap.ReplaceGlobals(l)

				var changed []string
				cmd.Flags().Visit(func(f *pflag.Flag) {
					changed = append(changed, f.Name)
				})
				zap.S().Named("workpool").Debugw("configuration loaded",
					"flags", changed,
					"config", cfg.DebugMap(),
					"scheduler", cfg.Scheduler.DebugMap(),
					"workload", cfg.Workload.DebugMap(),
					"server", cfg.Server.DebugMap())
				return nil
			},
		),
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	cobraflags.Register(root, configFlag)
	cobraflags.Register(root, globalFlags...)
	root.AddCommand(runCmd)

	return root
}

// loadConfiguration reads the optional config file, binds every flag to its
// configuration key and decodes the result into cfg.
// Precedence is flag, then WORKPOOL_* environment variable, then config file,
// then default.
func loadConfiguration(configFile string, flags []cobraflags.Flag, cfg *config.Configuration) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	if err := bindFlags(flags); err != nil {
		return err
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}
	return nil
}

// bindFlags binds each flag to its viper key and runs its validator.
func bindFlags(flags []cobraflags.Flag) error {
	for _, f := range flags {
		var err error
		switch f := f.(type) {
		case *cobraflags.StringFlag:
			_, err = f.GetStringE()
		case *cobraflags.IntFlag:
			_, err = f.GetIntE()
		case *cobraflags.BoolFlag:
			_, err = f.GetBoolE()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func oneOf(name string, allowed ...string) func(string) error {
	return func(v string) error {
		if !slices.Contains(allowed, v) {
			return fmt.Errorf("invalid %s %q: must be one of %v", name, v, allowed)
		}
		return nil
	}
}
