package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, the effective settings, or the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the configuration after defaults and TILER_* environment overrides are applied.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. Point your editor's TOML language
server at it for completion and validation.`,
	RunE: runConfigSchema,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with defaults",
	Long: `Overwrite config.toml with the default settings.

A config file is created automatically on first run; use this to discard
local edits. Requires --force.`,
	RunE: runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolVarP(&configForce, "force", "f", false, "confirm overwriting the config file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if app.ConfigErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(app.ConfigErr))
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSummary(path, app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if !configForce {
		return fmt.Errorf("refusing to overwrite %s without --force", path)
	}
	if app.Manager != nil {
		err = app.Manager.Save(config.DefaultConfig())
	} else {
		if mkErr := os.MkdirAll(filepath.Dir(path), dirPerm); mkErr != nil {
			return fmt.Errorf("create config directory: %w", mkErr)
		}
		err = config.WriteConfig(config.DefaultConfig(), path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten(path))
	return nil
}
