package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/app/tiling"
	"github.com/bnema/tiler/internal/script"
)

// openScript returns the script named by args, or stdin for none or "-".
func openScript(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	return f, nil
}

// runScript parses the script and replays it on engine.
func runScript(ctx context.Context, cmd *cobra.Command, args []string, engine *tiling.Engine) error {
	r, err := openScript(cmd, args)
	if err != nil {
		return err
	}
	defer r.Close()

	cmds, err := script.Parse(r)
	if err != nil {
		return err
	}
	return script.Run(ctx, engine, cmds)
}
