// Package cli provides the Cobra command structure for compatedit.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/compatedit/config"
	"github.com/iw2rmb/compatedit/editor"
	"github.com/iw2rmb/compatedit/internal/logging"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	debug      bool
	configPath string
	lexer      string
}

// NewRootCommand creates the root compatedit command with all subcommands.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "compatedit",
		Short: "Terminal editor engine with folding, margins and multi-caret editing",
		Long: `compatedit edits a document in the terminal on top of an engine that
derives folds from indentation, draws line-number, symbol and fold margins,
keeps additional carets and rectangular selections, paints lexer, indicator
and hotspot overlays, and offers word completion.

The engine also accepts the legacy named-command protocol; see "send".`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if g.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a YAML editor profile")
	rootCmd.PersistentFlags().StringVar(&g.lexer, "lexer", "", "lexer name or language label (default: detect from file)")

	rootCmd.AddCommand(newEditCommand(g))
	rootCmd.AddCommand(newFoldsCommand(g))
	rootCmd.AddCommand(newTokensCommand(g))
	rootCmd.AddCommand(newSendCommand(g))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// openEngine loads path into a new engine and applies the profile and
// lexer flags. A missing file yields an empty document when allowMissing.
func (g *globals) openEngine(ctx context.Context, path string, allowMissing bool, base editor.Config) (*editor.Engine, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case allowMissing && errors.Is(err, fs.ErrNotExist):
		data = nil
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	base.Text = string(data)
	base.Filename = path
	base.Lexer = g.lexer
	if base.Logger == nil {
		base.Logger = logging.FromContext(ctx)
	}
	eng := editor.NewEngine(base)

	if g.configPath != "" {
		cfg, err := config.Load(g.configPath)
		if err != nil {
			return nil, err
		}
		if g.lexer != "" {
			cfg.Lexer = g.lexer
		}
		if g.debug {
			cfg.LogLevel = "debug"
		}
		if err := cfg.Apply(eng); err != nil {
			return nil, err
		}
		base.Logger.Debug("config applied", logging.FieldPath, g.configPath, logging.FieldDoc, eng.ID())
	}
	return eng, nil
}
