// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdftool CLI: merge, split,
// extract-text, rotate, watermark, info, and create.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdftool/internal/engine"
	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/internal/ops"
	"github.com/pdiddy/pdftool/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the settings resolved from defaults, config file, environment,
// and global flags. It is filled in PersistentPreRunE.
var cfg = types.DefaultConfig()

// rootCmd is the base command for the pdftool CLI.
var rootCmd = &cobra.Command{
	Use:   "pdftool",
	Short: "Common PDF operations from the command line",
	Long: `pdftool merges, splits, rotates, and watermarks PDF documents, extracts
their text, reports their metadata, and generates sample documents.

Each operation is a subcommand. Status lines and logs go to stderr; extracted
text and info reports go to stdout.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		logging.Init(logging.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: cmd.ErrOrStderr(),
		})
		// Init runs once per process; the level still follows each run's flags.
		logging.SetLevel(cfg.Log.Level)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdftool.yaml or ~/.config/pdftool/pdftool.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: console or json")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdftool")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdftool"))
		}
	}

	viper.SetEnvPrefix("PDFTOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes viper's merged settings over the defaults.
func loadConfig() error {
	def := types.DefaultConfig()
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.format", def.Log.Format)
	viper.SetDefault("watermark.font", def.Watermark.Font)
	viper.SetDefault("watermark.font_size", def.Watermark.FontSize)
	viper.SetDefault("watermark.opacity", def.Watermark.Opacity)
	viper.SetDefault("watermark.rotation", def.Watermark.Rotation)
	viper.SetDefault("create.page_size", def.Create.PageSize)
	viper.SetDefault("create.title", def.Create.Title)

	loaded := def
	if err := viper.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	cfg = loaded
	return nil
}

// dispatch runs req through a dispatcher bound to cmd's writers.
func dispatch(cmd *cobra.Command, req types.Request) error {
	d := ops.NewDispatcher(ops.Env{
		Engine: engine.New(cfg),
		Out:    cmd.OutOrStdout(),
		Status: cmd.ErrOrStderr(),
	})
	_, err := d.Dispatch(cmd.Context(), req)
	return err
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "Operation cancelled by user")
		return 1
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ops.ExitCode(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
