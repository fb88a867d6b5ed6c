package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
)

var (
	layoutJSON bool
	layoutGap  float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout [script]",
	Short: "Run a script and print tile rectangles",
	Long: `Run a tiling script and print the rectangle of every tile.

Coordinates are percentages of a 100x100 canvas. The script is read from
the given file, or from stdin when omitted or '-'.

Examples:
  tiler layout session.tiles
  printf 'add A\nadd B\n' | tiler layout --json
  tiler layout --gap 0 session.tiles`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "print JSON instead of a table")
	layoutCmd.Flags().Float64Var(&layoutGap, "gap", -1, "gap in canvas percent (default: layout.gap from config)")
}

// tileJSON is the JSON shape of one laid-out tile.
type tileJSON struct {
	ID      entity.NodeID `json:"id"`
	Title   string        `json:"title"`
	Focused bool          `json:"focused"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
}

type layoutJSONOutput struct {
	Layout entity.LayoutMode `json:"layout"`
	Gap    float64           `json:"gap"`
	Tiles  []tileJSON        `json:"tiles"`
}

func runLayout(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	engine := app.NewEngine(layoutGap)
	if err := runScript(ctx, cmd, args, engine); err != nil {
		return err
	}

	tree := engine.Snapshot()
	rows := styles.LayoutRows(tree, engine.ComputeLayout())
	out := cmd.OutOrStdout()

	if layoutJSON {
		payload := layoutJSONOutput{Layout: tree.Layout, Gap: engine.Gap(), Tiles: make([]tileJSON, 0, len(rows))}
		for _, r := range rows {
			payload.Tiles = append(payload.Tiles, tileJSON{
				ID:      r.ID,
				Title:   r.Title,
				Focused: r.Focused,
				X:       r.Rect.X,
				Y:       r.Rect.Y,
				Width:   r.Rect.Width,
				Height:  r.Rect.Height,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("no tiles"))
		return nil
	}
	fmt.Fprintln(out, styles.RenderLayoutTable(app.Theme, rows))
	return nil
}
