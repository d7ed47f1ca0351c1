package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Misgexx/Fairtrack/internal/session"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the signed-in session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "login <email>",
		Short: "Sign in with an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmailAuth(cmd, args[0], false)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account with an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmailAuth(cmd, args[0], true)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "google",
		Short: "Sign in with Google",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			mgr := session.NewManager(store)
			if err := mgr.Load(cmd.Context()); err != nil {
				return err
			}
			user, err := mgr.SignInGoogle(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("✅ Signed in with Google (%s)\n", shortID(user.ID))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Sign out and erase the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			mgr := session.NewManager(store)
			if err := mgr.Load(cmd.Context()); err != nil {
				return err
			}
			if _, ok := mgr.CurrentUser(); !ok {
				fmt.Println("Already signed out.")
				return nil
			}
			if err := mgr.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("👋 Signed out.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			mgr := session.NewManager(store)
			if err := mgr.Load(cmd.Context()); err != nil {
				return err
			}
			user, ok := mgr.CurrentUser()
			if !ok {
				fmt.Println("Not signed in.")
				return nil
			}
			if user.Email != "" {
				fmt.Printf("Signed in as %s (%s)\n", user.Email, user.Provider)
			} else {
				fmt.Printf("Signed in via %s (%s)\n", user.Provider, shortID(user.ID))
			}
			return nil
		},
	})

	return cmd
}

func runEmailAuth(cmd *cobra.Command, email string, signup bool) error {
	store, err := initStore()
	if err != nil {
		return err
	}
	defer store.Close()

	mgr := session.NewManager(store)
	if err := mgr.Load(cmd.Context()); err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	var user session.User
	if signup {
		user, err = mgr.SignUpEmail(cmd.Context(), email, password)
	} else {
		user, err = mgr.SignInEmail(cmd.Context(), email, password)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✅ Signed in as %s\n", user.Email)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
