package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version and build info next to the gap, split title and config file a new layout starts with.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	configPath := ""
	if app.Manager != nil {
		configPath = app.Manager.GetConfigFile()
	}
	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo, app.Config, configPath))
	return nil
}
