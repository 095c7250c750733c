package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/compatedit/editor"
	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/internal/screen"
)

const (
	backendBubbleTea = "bubbletea"
	backendTcell     = "tcell"
)

type editOptions struct {
	backend  string
	readOnly bool
	write    bool
	multi    bool
	column   bool
}

func newEditCommand(g *globals) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a file in the terminal",
		Long: `Edit a file in the terminal. Ctrl+Q quits; with --write the document is
written back on exit. A missing file starts an empty document.

Ctrl+Space forces completion, Ctrl+] toggles the fold under the caret and
Ctrl+Alt+click adds or removes a caret when --multi is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, g, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.backend, "backend", backendBubbleTea, "terminal front-end: bubbletea or tcell")
	cmd.Flags().BoolVar(&opts.readOnly, "read-only", false, "ignore edits")
	cmd.Flags().BoolVar(&opts.write, "write", false, "write the document back on exit")
	cmd.Flags().BoolVar(&opts.multi, "multi", false, "enable additional carets and multi-caret typing")
	cmd.Flags().BoolVar(&opts.column, "column", false, "start in rectangular selection mode")

	return cmd
}

func runEdit(cmd *cobra.Command, g *globals, opts *editOptions, path string) error {
	base := editor.Config{
		ReadOnly:  opts.readOnly,
		Clipboard: editor.SystemClipboard{},
	}
	eng, err := g.openEngine(cmd.Context(), path, true, base)
	if err != nil {
		return err
	}
	if opts.multi {
		eng.SetMultipleSelection(true)
		eng.SetAdditionalSelectionTyping(true)
		eng.SetMultiPaste(true)
	}
	if opts.column {
		eng.SetColumnMode(true)
	}

	switch opts.backend {
	case backendBubbleTea:
		err = runBubbleTea(base, eng)
	case backendTcell:
		err = runTcell(cmd, base, eng)
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}
	if err != nil {
		return err
	}

	if opts.write && !opts.readOnly {
		if err := os.WriteFile(path, []byte(eng.Text()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		eng.Logger().Debug("document written", logging.FieldPath, path, logging.FieldDoc, eng.ID())
	}
	return nil
}

// editModel hosts the editor component as a full-screen program.
type editModel struct {
	editor editor.Model
}

func (m editModel) Init() tea.Cmd { return nil }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m editModel) View() string { return m.editor.View() }

func runBubbleTea(cfg editor.Config, eng *editor.Engine) error {
	m := editModel{editor: editor.NewWithEngine(cfg, eng)}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func runTcell(cmd *cobra.Command, cfg editor.Config, eng *editor.Engine) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer scr.Fini()
	scr.EnableMouse()
	scr.EnablePaste()

	s := screen.New(scr, eng, screen.Options{
		ReadOnly:  cfg.ReadOnly,
		Clipboard: cfg.Clipboard,
		Logger:    eng.Logger(),
	})
	return s.Run(cmd.Context())
}
