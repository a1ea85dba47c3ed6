package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/state"
)

const cliTimeLayout = "2006-01-02 15:04"

var errNotLoggedIn = errors.New("not logged in, run: taskdesk login <email>")

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in with an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create, _ := cmd.Flags().GetBool("create")
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			email := strings.TrimSpace(args[0])
			res, err := a.auth.CheckUser(cmd.Context(), email)
			if err != nil {
				return err
			}
			if !res.Exists {
				if !create {
					return fmt.Errorf("no account for %s, rerun with --create to create it", email)
				}
				if _, err := a.auth.CreateUser(cmd.Context(), email); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created account and logged in as %s\n", email)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", a.session.Email())
			return nil
		},
	}
	cmd.Flags().BoolP("create", "c", false, "Create the account when it does not exist")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			a.auth.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if !a.session.IsAuthenticated() {
				return errNotLoggedIn
			}

			since, err := a.store.UpdatedAt(cmd.Context(), service.UserStorageKey)
			if err != nil {
				return fmt.Errorf("failed to read session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (since %s)\n", a.session.Email(), since.Local().Format(cliTimeLayout))
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all locally cached data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetBool("schema")
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if schema {
				err = a.store.ResetSchema()
			} else {
				err = a.store.Clear(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("failed to reset local store: %w", err)
			}
			a.session.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Local data cleared")
			return nil
		},
	}
	cmd.Flags().Bool("schema", false, "Also drop and recreate the local database schema")
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			rawFilter, _ := cmd.Flags().GetString("filter")
			filter, err := model.ParseStatusFilter(rawFilter)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := loadTasks(cmd, a); err != nil {
				return err
			}
			a.items.SetSearchTerm(search)
			a.items.SetStatusFilter(filter)
			printTasks(cmd.OutOrStdout(), a.items)
			return nil
		},
	}
	cmd.Flags().StringP("search", "s", "", "Only tasks whose title or description contain this text")
	cmd.Flags().StringP("filter", "f", string(model.StatusAll), "all, pending or completed")
	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <description>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			t, err := a.tasks.Create(cmd.Context(), strings.TrimSpace(args[0]), strings.TrimSpace(args[1]))
			if err != nil {
				return cliError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %s\n", t.ID, t.Title)
			return nil
		},
	}
}

func doneCmd() *cobra.Command {
	return toggleCmd("done <id>", "Mark a task as completed", true)
}

func undoCmd() *cobra.Command {
	return toggleCmd("undo <id>", "Mark a task as pending", false)
}

func toggleCmd(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if !a.session.IsAuthenticated() {
				return errNotLoggedIn
			}

			t, err := a.tasks.ToggleCompletion(cmd.Context(), args[0], completed)
			if err != nil {
				return cliError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", checkbox(t.Completed), t.ID, t.Title)
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if !a.session.IsAuthenticated() {
				return errNotLoggedIn
			}

			if err := a.tasks.Delete(cmd.Context(), args[0]); err != nil {
				return cliError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func loadTasks(cmd *cobra.Command, a *app) error {
	if err := a.tasks.Load(cmd.Context()); err != nil {
		return cliError(err)
	}
	return nil
}

func cliError(err error) error {
	if errors.Is(err, service.ErrNotAuthenticated) {
		return errNotLoggedIn
	}
	return err
}

func printTasks(w io.Writer, items *state.Tasks) {
	counts := items.Counts()
	fmt.Fprintf(w, "all: %d  pending: %d  completed: %d\n", counts.All, counts.Pending, counts.Completed)
	visible := items.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, "(no tasks)")
		return
	}
	for _, t := range visible {
		fmt.Fprintf(w, "%s %-12s %s  %s\n", checkbox(t.Completed), t.ID, t.Title, t.CreatedAt.Local().Format(cliTimeLayout))
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
