package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/storage"
)

func removeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <company|id>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a company",
		Args:    cobra.MinimumNArgs(1),
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

			if !force {
				fmt.Printf("Remove %s (%s)? [y/N]: ", rec.Company, shortID(rec.ID))
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := records.Delete(cmd.Context(), rec.ID); err != nil {
				return err
			}
			fmt.Printf("🗑️  Removed %s\n", rec.Company)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
