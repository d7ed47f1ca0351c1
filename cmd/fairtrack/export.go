package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tracked companies to CSV",
		Long:  `Write every tracked company to a CSV file, one row per record, with follow-ups flattened into a single column.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := requireUser(cmd.Context(), store); err != nil {
				return err
			}

			records, err := storage.NewRecords(store).List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("Nothing to export.")
				return nil
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Exporting records..."),
			)

			w := csv.NewWriter(f)
			header := []string{
				"id", "company", "position", "recruiter_name", "recruiter_email",
				"recruiter_linkedin", "notes", "follow_ups", "status", "priority", "reminder",
			}
			if err := w.Write(header); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}

			for _, rec := range records {
				if err := w.Write(exportRow(rec)); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
				_ = bar.Add(1)
			}

			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("failed to flush CSV: %w", err)
			}

			fmt.Printf("\n✅ Exported %d records to %s\n", len(records), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "fairtrack.csv", "output file path")
	return cmd
}

func exportRow(rec model.Record) []string {
	followUps := make([]string, 0, len(rec.FollowUps))
	for _, f := range rec.FollowUps {
		part := string(f.Method)
		if !f.When.IsZero() {
			part += " " + f.When.String()
		}
		if f.Note != "" {
			part += " (" + f.Note + ")"
		}
		followUps = append(followUps, part)
	}

	return []string{
		rec.ID,
		rec.Company,
		positionLabel(rec),
		rec.Recruiter.Name,
		rec.Recruiter.Email,
		rec.Recruiter.LinkedIn,
		rec.Notes,
		strings.Join(followUps, "; "),
		statusLabel(rec),
		string(rec.Priority),
		rec.Reminder.String(),
	}
}
