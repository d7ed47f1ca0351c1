package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
)

// reminderItem is one dated thing to do: a record-level reminder or a
// scheduled follow-up.
type reminderItem struct {
	when    model.Date
	company string
	what    string
}

func remindCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show upcoming reminders and follow-ups",
		Long:  `Show reminders and dated follow-up actions coming up in the next days, soonest first, so nothing from the fair slips.`,
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

			today := model.NewDate(time.Now())
			horizon := model.NewDate(time.Now().AddDate(0, 0, days))

			var items []reminderItem
			for _, rec := range records {
				if inWindow(rec.Reminder, horizon) {
					items = append(items, reminderItem{
						when:    rec.Reminder,
						company: rec.Company,
						what:    "reminder",
					})
				}
				for _, f := range rec.FollowUps {
					if inWindow(f.When, horizon) {
						items = append(items, reminderItem{
							when:    f.When,
							company: rec.Company,
							what:    fmt.Sprintf("follow up via %s", f.Method),
						})
					}
				}
			}

			if len(items) == 0 {
				fmt.Printf("Nothing due in the next %d days. 🎉\n", days)
				return nil
			}

			sort.Slice(items, func(i, j int) bool {
				if items[i].when != items[j].when {
					return items[i].when < items[j].when
				}
				return items[i].company < items[j].company
			})

			overdue := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
			for _, item := range items {
				line := fmt.Sprintf("%s  %s: %s", item.when, item.company, item.what)
				if item.when < today {
					line = overdue.Render(line + "  (overdue)")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "look this many days ahead")
	return cmd
}

// inWindow reports whether d is set and falls on or before the horizon.
// Past dates count too: an overdue follow-up is the most urgent kind.
func inWindow(d, horizon model.Date) bool {
	return !d.IsZero() && d <= horizon
}
