package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tiler/internal/app/tiling"
	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/cli/model"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/logging"
)

var previewCmd = &cobra.Command{
	Use:   "preview [script]",
	Short: "Explore a layout interactively",
	Long: `Open a full-screen preview of the tiling layout.

An optional script seeds the layout. Edits to the config file (gap,
palette) are applied live. Logs go to $XDG_STATE_HOME/tiler/tiler.log
while the preview is open.

Keys:
  a add   x close   s/v split   tab/shift+tab focus
  +/- resize   [/] gap   f float/tile   ? help   q quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath, err := app.LogToFile()
	if err != nil {
		return fmt.Errorf("redirect logs: %w", err)
	}
	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "preview"))
	defer cancel()
	log := logging.FromContext(ctx)
	log.Info().Str("log_file", logPath).Msg("preview started")

	observer := port.TreeObserverFunc(func(ctx context.Context, tree *entity.Tree) {
		logging.FromContext(ctx).Debug().
			Int("tiles", tree.TileCount()).
			Str("focused_id", string(tree.FocusedID)).
			Str("layout", string(tree.Layout)).
			Msg("tree changed")
	})
	engine := tiling.NewEngine(app.EngineOptions(-1, observer))

	// Only a named script seeds the preview; stdin belongs to the TUI.
	if len(args) == 1 && args[0] != "-" {
		if err := runScript(ctx, cmd, args, engine); err != nil {
			return err
		}
	}

	reloads := watchConfig(ctx, app.Manager)

	p := tea.NewProgram(
		model.NewPreviewModel(ctx, engine, app.Theme),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case cfg := <-reloads:
				log.Info().Float64("gap", cfg.Layout.Gap).Msg("config reloaded")
				p.Send(model.ConfigReloadedMsg{Gap: cfg.Layout.Gap, Theme: styles.NewTheme(cfg)})
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	log.Info().Msg("preview closed")
	return nil
}

// watchConfig forwards validated config reloads. A nil manager yields a
// channel that never fires.
func watchConfig(ctx context.Context, mgr *config.Manager) <-chan *config.Config {
	reloads := make(chan *config.Config, 1)
	if mgr == nil {
		return reloads
	}

	mgr.OnConfigChange(func(cfg *config.Config) {
		select {
		case reloads <- cfg:
		default:
			// A reload is already pending; the newer one wins on the next change.
		}
	})
	if err := mgr.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
	}
	return reloads
}
