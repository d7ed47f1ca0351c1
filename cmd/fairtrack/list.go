package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
)

func listCmd() *cobra.Command {
	var priorityFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked companies",
		Long:  `List every company you are tracking, sorted by name, with position, status, priority, and reminder at a glance.`,
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

			if priorityFilter != "" {
				records = filterByPriority(records, priorityFilter)
			}

			if len(records) == 0 {
				fmt.Println("No tracked companies yet. Run 'fairtrack add <company>' after your next fair.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Company"),
				headerStyle.Render("Position"),
				headerStyle.Render("Status"),
				headerStyle.Render("Priority"),
				headerStyle.Render("Reminder"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10))

			dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
			for _, rec := range records {
				reminder := rec.Reminder.String()
				if rec.Reminder.IsZero() {
					reminder = dim.Render("none")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(rec.ID),
					rec.Company,
					positionLabel(rec),
					statusLabel(rec),
					rec.Priority,
					reminder)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&priorityFilter, "priority", "", "only show records with this priority (High, Medium, Low, None)")
	return cmd
}

func filterByPriority(records []model.Record, priority string) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if strings.EqualFold(string(rec.Priority), priority) {
			out = append(out, rec)
		}
	}
	return out
}
