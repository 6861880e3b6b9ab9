package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hello-world/internal/app"
	"hello-world/internal/config"
	"hello-world/internal/logger"
)

// runner starts the GUI. Tests swap it out to avoid opening a window.
var runner = func(cfg *config.Config, log logger.Logger, args []string) int {
	application := app.New(cfg, log)
	defer application.Close()

	return application.Run(args)
}

// execute parses args and returns the process exit status.
func execute(args []string) int {
	status := 0
	cmd := newRootCommand(config.NewViper(), &status)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return status
}

func newRootCommand(v *viper.Viper, status *int) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "hello-world [args...]",
		Short:        "Show a window whose button toggles a greeting",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}

			*status = runner(cfg, log, args)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("icon", config.IconPath, "window icon path")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("json-logs", false, "write logs as JSON lines")

	for key, name := range map[string]string{
		"icon.path":     "icon",
		"logging.level": "log-level",
		"logging.json":  "json-logs",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(newConfigCommand(v, &configFile))
	return rootCmd
}

func newConfigCommand(v *viper.Viper, configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config) error {
	out, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging.level: %w", err)
	}
	return logger.New(level, cfg.Logging.JSON), nil
}
