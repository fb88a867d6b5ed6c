package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/script"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	scriptPageName = "tiler-script"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate man pages or markdown for tiler",
	Hidden: true,
	Long: `Generate one page per command plus tiler-script, the reference for
the script language read by 'layout', 'tree' and 'preview'.

Formats:
  man       groff pages; commands in section 1, tiler-script in section 5
  markdown  one .md file per page

Man pages go to $XDG_DATA_HOME/man by default, so 'man tiler-layout' and
'man 5 tiler-script' work once the index is refreshed with 'mandb'.`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	rootCmd.DisableAutoGenTag = true

	switch genDocsFormat {
	case "man":
		dir, err := docsDir(config.GetManDir)
		if err != nil {
			return err
		}
		return generateManPages(out, dir)
	case "markdown":
		dir, err := docsDir(func() (string, error) { return "docs", nil })
		if err != nil {
			return err
		}
		return generateMarkdown(out, dir)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
}

// docsDir resolves and creates the output directory, preferring --output.
func docsDir(fallback func() (string, error)) (string, error) {
	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = fallback(); err != nil {
			return "", fmt.Errorf("resolve output directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return dir, nil
}

func generateManPages(out io.Writer, dir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "TILER",
		Section: "1",
		Source:  "tiler " + buildInfo.Version,
		Manual:  "Tiler Manual",
		Date:    &now,
	}
	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	// Section 5 pages belong next to man1, not inside it.
	scriptDir := filepath.Join(filepath.Dir(dir), "man5")
	if genDocsOutputDir != "" {
		scriptDir = dir
	}
	if err := os.MkdirAll(scriptDir, dirPerm); err != nil {
		return fmt.Errorf("create man5 directory: %w", err)
	}
	page := md2man.Render([]byte(scriptReference(true)))
	scriptPath := filepath.Join(scriptDir, scriptPageName+".5")
	if err := os.WriteFile(scriptPath, page, filePerm); err != nil {
		return fmt.Errorf("write script reference: %w", err)
	}

	fmt.Fprintf(out, "Wrote command pages to %s\n", dir)
	fmt.Fprintf(out, "Wrote %s\n", scriptPath)
	fmt.Fprintln(out, "Run 'mandb' if 'man tiler' is not found.")
	return nil
}

func generateMarkdown(out io.Writer, dir string) error {
	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	scriptPath := filepath.Join(dir, scriptPageName+".md")
	if err := os.WriteFile(scriptPath, []byte(scriptReference(false)), filePerm); err != nil {
		return fmt.Errorf("write script reference: %w", err)
	}
	fmt.Fprintf(out, "Wrote markdown docs to %s\n", dir)
	return nil
}

// scriptReference renders the script language as markdown. With titleBlock
// set it starts with the pandoc title line md2man turns into the .TH header.
func scriptReference(titleBlock bool) string {
	var b strings.Builder
	if titleBlock {
		fmt.Fprintf(&b, "%% %s(5) tiler %s | Tiler Manual\n%% \n%% %s\n\n",
			strings.ToUpper(scriptPageName), buildInfo.Version, time.Now().Format("January 2006"))
	} else {
		fmt.Fprintf(&b, "# %s\n\n", scriptPageName)
	}

	b.WriteString("# NAME\n\n")
	fmt.Fprintf(&b, "%s - commands for building a tiling layout\n\n", scriptPageName)

	b.WriteString("# DESCRIPTION\n\n")
	b.WriteString("A script holds one command per line. Blank lines and lines starting with `#` are skipped. ")
	b.WriteString("Tiles are named by title; when titles repeat, the first tile created wins. ")
	b.WriteString("Commands naming an unknown tile change nothing.\n\n")

	b.WriteString("# COMMANDS\n\n")
	for _, v := range script.Verbs() {
		fmt.Fprintf(&b, "- `%s`: %s\n", v.Usage(), v.Summary)
	}
	b.WriteString("\n")

	b.WriteString("# EXAMPLE\n\n")
	b.WriteString("    add Editor\n    add Logs\n    split Logs v\n    ratio Editor 0.3\n\n")

	b.WriteString("# SEE ALSO\n\n")
	b.WriteString("tiler-layout(1), tiler-tree(1), tiler-preview(1)\n")
	return b.String()
}
