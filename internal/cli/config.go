package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/config"
)

func newOpenCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the log file in your editor.",
		Long: `Open the log file with open_command from the config.

Editor selection order:
1) open_command
2) $EDITOR
3) vi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.manager.EnsureLogFile()
			if err != nil {
				return err
			}
			return a.openInEditor(cmd, path)
		},
	}
}

func newConfigCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the stint configuration file.",
	}

	cmd.AddCommand(
		newConfigOpenCommand(ctx, a),
		newConfigCreateCommand(ctx, a),
		newConfigShowCommand(ctx, a),
	)
	return cmd
}

func newConfigOpenCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the active config in your editor.",
		Long: `Open the active config file in your editor.

If no config file exists yet, one is created from the example template first.
After the editor exits, the content is validated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configTarget()
			if err != nil {
				return err
			}

			created, err := ensureConfigFileWithTemplate(path)
			if err != nil {
				return err
			}
			if created {
				a.logger(cmd).Info("No config file found. Created example config at: %s", path)
			}

			if err := a.openInEditor(cmd, path); err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading edited config failed: %w", err)
			}
			if _, err := config.Parse(content); err != nil {
				return fmt.Errorf("config validation failed in %s: %w", path, err)
			}

			a.logger(cmd).Info("Configuration saved and validated: %s", path)
			return nil
		},
	}
}

func newConfigCreateCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a configuration file from the example template.",
		Long: `Create a new configuration file from the example template.

If a configuration file is already in use, no new file is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configTarget()
			if err != nil {
				return err
			}

			created, err := ensureConfigFileWithTemplate(path)
			if err != nil {
				return err
			}
			if created {
				a.logger(cmd).Info("New config file created at: %s", path)
				return nil
			}
			a.logger(cmd).Info("Config file already exists at: %s", path)
			return nil
		},
	}
}

func newConfigShowCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show active configuration values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := a.config

			if a.configPath != "" {
				fmt.Fprintln(out, "Config file loaded from:", a.configPath)
			} else {
				fmt.Fprintln(out, "No config file found, using defaults. Create one with: stint config create")
			}
			fmt.Fprintf(out, "file: %s\n", a.manager.LogPath())
			fmt.Fprintf(out, "backup_dir: %s\n", a.manager.BackupDir())
			fmt.Fprintf(out, "default_category: %s\n", cfg.Category())
			fmt.Fprintf(out, "lunch_minutes: %d\n", cfg.LunchMinutes)
			fmt.Fprintf(out, "open_command: %s\n", cfg.Editor())
			fmt.Fprintf(out, "categories: %d\n", len(cfg.Categories))
			for _, name := range cfg.CategoryNames() {
				fmt.Fprintf(out, "categories.%s.alias: %s\n", name, strings.Join(aliasesOf(cfg, name), ", "))
			}
			return nil
		},
	}
}

func aliasesOf(cfg *config.Config, name string) []string {
	for key, category := range cfg.Categories {
		if strings.EqualFold(key, name) {
			return category.Alias
		}
	}
	return nil
}

// configTarget is the file config commands act on: the --config flag, the
// loaded file, or the default location.
func (a *app) configTarget() (string, error) {
	if a.configFlag != "" {
		return a.configFlag, nil
	}
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.DefaultPath()
}

func ensureConfigFileWithTemplate(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("creating example config failed: %w", err)
	}

	return true, nil
}
