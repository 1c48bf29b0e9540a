package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sofmeright/readmegen/src/forge"
	"github.com/sofmeright/readmegen/src/manifest"
	"github.com/sofmeright/readmegen/src/project"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	opts := manifest.Options{
		SortWorkflows:          cfg.Workflows.Sort,
		PlaceholderTestScripts: cfg.Node.PlaceholderTestScripts,
	}
	if gitRemote || cfg.GitRemoteFallback {
		opts.Remote = originRemote(rootDir)
	}

	doc, err := manifest.Generate(project.Open(rootDir), opts)
	if err != nil {
		return err
	}
	content := doc.String() + "\n"

	if outFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	path, err := filepath.Abs(outFile)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", outFile, err)
	}
	if err := project.WriteFile(project.Open(filepath.Dir(path)), filepath.Base(path), []byte(content)); err != nil {
		return err
	}
	slog.Debug("readme written", "path", path)
	return nil
}

// originRemote returns a lookup of the GitHub URL of the origin remote.
func originRemote(rootDir string) func() string {
	return func() string {
		remote, err := forge.OriginURL(rootDir)
		if err != nil {
			slog.Debug("no git remote fallback", "error", err)
			return ""
		}
		url := forge.GitHubRemoteURL(remote)
		slog.Debug("git remote fallback", "remote", remote, "repository", url)
		return url
	}
}
