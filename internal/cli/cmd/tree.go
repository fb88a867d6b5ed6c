package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli/styles"
)

var treeShowIDs bool

var treeCmd = &cobra.Command{
	Use:   "tree [script]",
	Short: "Run a script and print the tiling tree",
	Long: `Run a tiling script and print the resulting tree of containers and tiles.

The focused tile is highlighted. The script is read from the given file,
or from stdin when omitted or '-'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeShowIDs, "ids", false, "show node ids")
}

func runTree(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	engine := app.NewEngine(-1)
	if err := runScript(app.Ctx(), cmd, args, engine); err != nil {
		return err
	}

	renderer := styles.NewTreeRenderer(app.Theme)
	renderer.ShowIDs = treeShowIDs
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(engine.Snapshot()))
	return nil
}
