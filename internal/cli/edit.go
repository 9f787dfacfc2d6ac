package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
	wfio "github.com/matzehuels/wireframe/pkg/io"
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	script string // replay this script before editing
	record string // write the session here on exit
	logf   string // log file; logs are dropped while the editor owns the screen
	snap   bool
}

// editCommand creates the edit command that opens the terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the canvas editor in the terminal",
		Long: `Open the canvas editor in the terminal.

Click an element to select it, shift+click to add or remove it from the
selection, and drag to move the selection. A single selected element shows
resize handles (●); drag one to resize. Press : for the command palette,
where commands like "align left", "set width 120" or "export out.png" run.

Every edit is recorded. Use --record (or :save) to write the session as a
TOML script that 'wireframe render' replays, and --script to continue from
one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.EditorSettings()
			if cmd.Flags().Changed("snap") {
				cfg.SnapToGrid = opts.snap
			}
			return c.runEdit(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "replay a script before editing")
	cmd.Flags().StringVarP(&opts.record, "record", "r", "", "save the session as a script on exit")
	cmd.Flags().StringVar(&opts.logf, "log", "", "write logs to this file while editing")
	cmd.Flags().BoolVar(&opts.snap, "snap", false, "start with snap-to-grid enabled")

	_ = cmd.RegisterFlagCompletionFunc("script", completeScripts)
	_ = cmd.RegisterFlagCompletionFunc("record", completeScripts)

	return cmd
}

// runEdit runs the editor until the user quits and saves the session if
// --record was given.
func (c *CLI) runEdit(ctx context.Context, cfg editor.Config, opts editOpts) error {
	if opts.record != "" {
		if err := errors.ValidatePath(opts.record); err != nil {
			return err
		}
	}

	var initial *wfio.Script
	if opts.script != "" {
		s, err := wfio.ReadScript(opts.script)
		if err != nil {
			return fmt.Errorf("load script %s: %w", opts.script, err)
		}
		initial = s
	}

	restore, err := c.redirectLogs(opts.logf)
	if err != nil {
		return err
	}
	defer restore()

	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	savePath := opts.record
	if savePath == "" {
		savePath = opts.script
	}
	m, err := newEditorModel(editorParams{
		ctx:      ctx,
		config:   cfg,
		runner:   runner,
		opts:     c.renderOptions(),
		script:   initial,
		savePath: savePath,
	})
	if err != nil {
		return err
	}

	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, runErr := prog.Run()
	m.close()
	restore()

	if opts.record != "" {
		if err := wfio.WriteScript(opts.record, m.script); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		printSuccess("Recorded %s", plural(len(m.script.Steps), "step"))
		printFile(opts.record)
	}
	return runErr
}

// redirectLogs sends the logger to path, or discards it when path is
// empty, so log lines never tear through the editor's screen. The returned
// function restores stderr and may be called more than once.
func (c *CLI) redirectLogs(path string) (func(), error) {
	var (
		w io.Writer = io.Discard
		f *os.File
	)
	if path != "" {
		var err error
		if f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}
	c.Logger.SetOutput(w)
	return func() {
		c.Logger.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
			f = nil
		}
	}, nil
}
