package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
	"github.com/Misgexx/Fairtrack/internal/tui"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <company>",
		Short: "Track a new company and open the editor",
		Long: `Create a record for a company you talked to and open the full-screen
editor to fill in recruiter contact, follow-ups, status, and reminder.
The record is created immediately; edits autosave while you type.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company := strings.TrimSpace(strings.Join(args, " "))
			if company == "" {
				return &common.ValidationError{Field: "company", Reason: "please enter a company name"}
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := requireUser(cmd.Context(), store); err != nil {
				return err
			}

			records := storage.NewRecords(store)
			rec := model.NewRecord(company)

			// The record exists as soon as the company is committed;
			// everything after this is autosaved refinement.
			if err := records.Save(cmd.Context(), rec); err != nil {
				return err
			}

			result, err := tui.RunEditor(cmd.Context(), store, rec)
			if err != nil {
				return err
			}
			if result.Saved {
				fmt.Printf("✅ Saved %s (%s)\n", result.Record.Company, shortID(result.Record.ID))
			} else {
				fmt.Printf("Left editor; %s kept with last autosaved state.\n", company)
			}
			return nil
		},
	}
}
