package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/sofmeright/readmegen/src/config"
	"github.com/sofmeright/readmegen/src/manifest"
)

var (
	cfgFile   string
	debug     bool
	gitRemote bool
	outFile   string
	cfg       *config.Config

	logLevel = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate a README from package.json or Cargo.toml",
	Long: `Generate a README for the project in the current directory.

The manifest (package.json, else Cargo.toml) supplies the title, description,
install command and license. GitHub Actions workflows in .github/workflows
become status badges when the repository is hosted on GitHub.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			logLevel.Set(slog.LevelDebug)
		}
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.Flags().BoolVar(&gitRemote, "git-remote", false, "fall back to the origin remote for the GitHub URL")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "write the README to a file instead of stdout")
}

// Execute runs the root command.
func Execute() error {
	setupLogging(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), diagnostic(err))
		return err
	}
	return nil
}

func setupLogging(w io.Writer) {
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
	})))
}

// diagnostic renders err as the one-line message shown to the user.
func diagnostic(err error) string {
	var parseErr *manifest.ParseError
	var buildErr *manifest.BuildError

	switch {
	case errors.Is(err, manifest.ErrNoManifest):
		return "No supported project type found."
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Could not parse %s: %v", parseErr.File, parseErr.Err)
	case errors.As(err, &buildErr):
		return fmt.Sprintf("Could not build readme: %v", buildErr.Err)
	default:
		return err.Error()
	}
}
