package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/commonui/internal/config"
	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/styles"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var coded *errors.Error
		if stderrors.As(err, &coded) {
			fmt.Fprintln(os.Stderr, coded.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "commonui",
		Short: "Render, preview and publish commonui buttons",
		Long: `commonui resolves button variants to their style tables and renders
them for review.

  • render a single button as HTML
  • list every supported type and background mode
  • preview buttons in the terminal
  • serve a live gallery with metrics
  • export the gallery to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory containing "+config.ConfigFileName)

	load := func() (*config.Config, error) {
		return loadConfig(configDir)
	}

	rootCmd.AddCommand(
		renderCmd(load),
		variantsCmd(),
		previewCmd(load),
		serveCmd(load),
		exportCmd(load),
		versionCmd(),
	)
	return rootCmd
}

// configLoader loads the effective configuration for a command.
type configLoader func() (*config.Config, error)

// loadConfig reads commonui.json from dir and applies environment overrides.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// platformFor returns the --platform flag value, or the configured platform
// when the flag is empty.
func platformFor(flag string, cfg *config.Config) (styles.Platform, error) {
	if flag == "" {
		return cfg.PlatformValue(), nil
	}
	p, err := styles.ParsePlatform(flag)
	if err != nil {
		return p, errors.New(errors.CodeInvalidConfig).
			WithDetailf("--platform %q must be electron or mobile", flag)
	}
	return p, nil
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
