package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/storage"
	"github.com/Misgexx/Fairtrack/internal/tui"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <company|id>",
		Short: "Reopen a tracked company in the editor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.TrimSpace(strings.Join(args, " "))

			store, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := requireUser(cmd.Context(), store); err != nil {
				return err
			}

			records := storage.NewRecords(store)
			rec, err := resolveRecord(cmd.Context(), records, ref)
			if err != nil {
				return err
			}

			result, err := tui.RunEditor(cmd.Context(), store, rec)
			if err != nil {
				return err
			}
			if result.Saved {
				fmt.Printf("✅ Saved %s (%s)\n", result.Record.Company, shortID(result.Record.ID))
			} else {
				fmt.Printf("Left editor; %s kept with last autosaved state.\n", rec.Company)
			}
			return nil
		},
	}
}
