package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/storage"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <company|id>",
		Short: "Show everything recorded for one company",
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

			rec, err := resolveRecord(cmd.Context(), storage.NewRecords(store), ref)
			if err != nil {
				return err
			}

			title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			label := lipgloss.NewStyle().Bold(true)
			dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

			fmt.Println(title.Render(rec.Company) + dim.Render("  ("+rec.ID+")"))
			fmt.Printf("%s %s\n", label.Render("Position:"), positionLabel(rec))
			fmt.Printf("%s %s\n", label.Render("Status:"), statusLabel(rec))
			fmt.Printf("%s %s\n", label.Render("Priority:"), rec.Priority)

			if rec.Recruiter.Name != "" || rec.Recruiter.Email != "" || rec.Recruiter.LinkedIn != "" {
				fmt.Println(label.Render("Recruiter:"))
				if rec.Recruiter.Name != "" {
					fmt.Printf("  %s\n", rec.Recruiter.Name)
				}
				if rec.Recruiter.Email != "" {
					fmt.Printf("  %s\n", rec.Recruiter.Email)
				}
				if rec.Recruiter.LinkedIn != "" {
					fmt.Printf("  %s\n", rec.Recruiter.LinkedIn)
				}
			}

			if rec.Notes != "" {
				fmt.Printf("%s\n  %s\n", label.Render("Notes:"), strings.ReplaceAll(rec.Notes, "\n", "\n  "))
			}

			if len(rec.FollowUps) > 0 {
				fmt.Println(label.Render("Follow-ups:"))
				for _, f := range rec.FollowUps {
					when := f.When.String()
					if f.When.IsZero() {
						when = dim.Render("no date")
					}
					line := fmt.Sprintf("  • %s via %s", when, f.Method)
					if f.Note != "" {
						line += ": " + f.Note
					}
					fmt.Println(line)
				}
			}

			if !rec.Reminder.IsZero() {
				fmt.Printf("%s %s\n", label.Render("Reminder:"), rec.Reminder)
			}

			return nil
		},
	}
}
