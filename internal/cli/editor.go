package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// EditCmd returns the edit command.
func EditCmd(store *lecture.FSStore, cfg lecture.Config, env map[string]string) *Command {
	return &Command{
		Flags: flag.NewFlagSet("edit", flag.ContinueOnError),
		Usage: "edit <id>",
		Short: "Open a lecture in your editor",
		Long:  "Open the lecture document in the configured editor and wait for it\nto exit.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return execEdit(ctx, store, cfg, env, args)
		},
	}
}

func execEdit(ctx context.Context, store *lecture.FSStore, cfg lecture.Config, env map[string]string, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	path, err := store.DocumentPath(id)
	if err != nil {
		return err
	}

	editor, err := resolveEditor(cfg, env)
	if err != nil {
		return err
	}

	return runEditor(ctx, editor, path)
}

// resolveEditor checks for an available editor using the env map.
// Priority: config.Editor -> $EDITOR -> vi -> nano -> error.
func resolveEditor(cfg lecture.Config, env map[string]string) (string, error) {
	if cfg.Editor != "" {
		_, lookErr := exec.LookPath(cfg.Editor)
		if lookErr == nil {
			return cfg.Editor, nil
		}
	}

	if editor := env["EDITOR"]; editor != "" {
		_, lookErr := exec.LookPath(editor)
		if lookErr == nil {
			return editor, nil
		}
	}

	_, viErr := exec.LookPath("vi")
	if viErr == nil {
		return "vi", nil
	}

	_, nanoErr := exec.LookPath("nano")
	if nanoErr == nil {
		return "nano", nil
	}

	return "", lecture.ErrNoEditorFound
}

func runEditor(ctx context.Context, editor, path string) error {
	cmd := exec.CommandContext(ctx, editor, path)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if runErr := cmd.Run(); runErr != nil {
		return fmt.Errorf("running %s: %w", filepath.Base(editor), runErr)
	}

	return nil
}
