package cli

import (
	"context"
	"fmt"
	"os"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// InitCmd returns the init command.
func InitCmd(store *lecture.FSStore, cfg lecture.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("init", flag.ContinueOnError),
		Usage: "init",
		Short: "Initialize a notes directory",
		Long:  "Create the notes directory, a project .lectern.json, and an empty\nappend-only log. Existing files are left alone.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execInit(o, store, cfg)
		},
	}
}

func execInit(o *IO, store *lecture.FSStore, cfg lecture.Config) error {
	if err := os.MkdirAll(cfg.NotesDirAbs, 0o750); err != nil {
		return fmt.Errorf("creating notes directory: %w", err)
	}

	configPath, err := lecture.WriteProjectConfig(cfg.EffectiveCwd, cfg)
	if err != nil {
		return err
	}

	if err := store.TouchLog(); err != nil {
		return err
	}

	o.Println("initialized", cfg.NotesDirAbs)
	o.Println("config", configPath)

	return nil
}
