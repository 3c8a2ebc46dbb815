// Command firdump prints the text dump of a built-in sample tree. It
// exists for eyeballing format changes while working on the renderer;
// the golden tests lock the same output down.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vito/firdump/pkg/fir/sample"
	"github.com/vito/firdump/pkg/render"
)

// Config holds the application configuration
type Config struct {
	Debug bool
	Raw   bool
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "firdump [flags] [sample]",
		Short: "Dump front-end IR trees as text",
		Long: `firdump renders a built-in sample IR tree as the deterministic
text dump the renderer produces. The dump is a debugging format: every
unresolved or erroneous part of the tree renders as a visible sentinel
rather than failing.`,
		Example: `  # Dump the default sample
  firdump

  # Dump a specific sample
  firdump partial

  # Print the raw tree instead of the rendered dump
  firdump --raw greeter`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "greeter"
			if len(args) == 1 {
				name = args[0]
			}
			return run(cfg, name)
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&cfg.Raw, "raw", false, "Print the raw tree instead of the rendered dump")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(cfg Config, name string) error {
	// Set up slog with appropriate level
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	tree, ok := sample.Named(name)
	if !ok {
		return errors.Errorf("unknown sample %q (have: %s)", name, strings.Join(sample.Names(), ", "))
	}

	if cfg.Raw {
		_, _ = pretty.Println(tree)
		return nil
	}

	slog.Debug("rendering sample", "sample", name)
	fmt.Print(render.Render(tree))
	return nil
}
