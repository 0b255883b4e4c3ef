package cli

import (
	"context"
	"fmt"
	"os"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// CardsCmd returns the cards command.
func CardsCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("cards", flag.ContinueOnError)
	fs.String("block", lecture.DefaultCardBlock, "Block kind to mine for cards")
	fs.StringP("output", "o", "", "Write the YAML deck to a file instead of stdout")

	return &Command{
		Flags: fs,
		Usage: "cards [flags]",
		Short: "Export flashcards",
		Long: "Mine every lecture for card blocks and export them as a YAML deck.\n" +
			"Within a block the first paragraph is the front, the rest the back.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execCards(o, store, fs)
		},
	}
}

func execCards(o *IO, store *lecture.FSStore, fs *flag.FlagSet) error {
	kind, _ := fs.GetString("block")
	output, _ := fs.GetString("output")

	results, err := store.List()
	if err != nil {
		return err
	}

	_, skipped := lecture.Partition(results)
	warnSkipped(o, skipped)

	deck := lecture.BuildDeck(results, kind)

	data, err := deck.Marshal()
	if err != nil {
		return err
	}

	if output == "" {
		o.Printf("%s", data)

		return nil
	}

	if writeErr := os.WriteFile(output, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing deck: %w", writeErr)
	}

	o.Printf("wrote %d cards to %s\n", len(deck.Cards), output)

	return nil
}
