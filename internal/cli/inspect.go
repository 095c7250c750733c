package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/compatedit/editor"
)

func newFoldsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "folds <file>",
		Short: "Print the fold regions of a file",
		Long: `Print one line per fold region: the header line, the last line of the
body and the fold level, all 1-based.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := g.openEngine(cmd.Context(), args[0], false, editor.Config{})
			if err != nil {
				return err
			}
			return printFolds(cmd.OutOrStdout(), eng)
		},
	}
}

func printFolds(w io.Writer, eng *editor.Engine) error {
	for _, r := range eng.Folds().Regions() {
		if _, err := fmt.Fprintf(w, "%d-%d\tlevel %d\n", r.Start+1, r.End+1, r.Level); err != nil {
			return err
		}
	}
	return nil
}

func newTokensCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the lexer spans of a file",
		Long: `Print the active lexer, then one line per style span: the rune offsets
[start, end), the style id and the covered text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := g.openEngine(cmd.Context(), args[0], false, editor.Config{})
			if err != nil {
				return err
			}
			return printTokens(cmd.OutOrStdout(), eng)
		},
	}
}

func printTokens(w io.Writer, eng *editor.Engine) error {
	if _, err := fmt.Fprintf(w, "lexer %s\n", eng.LexerName()); err != nil {
		return err
	}
	runes := []rune(eng.Text())
	for _, s := range eng.Overlays().LexerSpans() {
		lo := max(0, min(s.Start, len(runes)))
		hi := max(lo, min(s.End, len(runes)))
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%q\n", s.Start, s.End, s.Style, string(runes[lo:hi])); err != nil {
			return err
		}
	}
	return nil
}

func newSendCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "send <file> <command>...",
		Short: "Run legacy commands against a file and print the visible lines",
		Long: `Run legacy commands against a file and print the visible lines.

Each command is one argument: a message name followed by its arguments,
separated by spaces. Names are case-insensitive and may carry the SCI_
prefix. Integer arguments are passed as numbers, everything else as text.

  compatedit send main.py "SCI_FOLDALL 0" "showlines 3 4"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := g.openEngine(cmd.Context(), args[0], false, editor.Config{})
			if err != nil {
				return err
			}
			return runSend(cmd.OutOrStdout(), eng, args[1:])
		},
	}
}

func runSend(w io.Writer, eng *editor.Engine, messages []string) error {
	for _, msg := range messages {
		name, argv := parseMessage(msg)
		if name == "" {
			continue
		}
		ok := eng.Send(name, argv...)
		if _, err := fmt.Fprintf(w, "%s\t%v\n", name, ok); err != nil {
			return err
		}
	}
	return printVisible(w, eng)
}

// parseMessage splits "NAME a b" into the name and typed arguments.
func parseMessage(msg string) (string, []any) {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return "", nil
	}
	argv := make([]any, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if n, err := strconv.Atoi(f); err == nil {
			argv = append(argv, n)
			continue
		}
		argv = append(argv, f)
	}
	return fields[0], argv
}

// printVisible prints the lines a view would show, marking collapsed fold
// headers with "+".
func printVisible(w io.Writer, eng *editor.Engine) error {
	b := eng.Buffer()
	folds := eng.Folds()
	for line := 0; line < b.LineCount(); line++ {
		if !folds.IsLineVisible(line) {
			continue
		}
		mark := " "
		if folds.IsCollapsed(line) {
			mark = "+"
		}
		if _, err := fmt.Fprintf(w, "%4d%s %s\n", line+1, mark, b.Line(line)); err != nil {
			return err
		}
	}
	return nil
}
