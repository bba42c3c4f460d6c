package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fitness-planner/internal/state"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage planner users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			selected, _ := st.SelectedUser()
			for _, u := range st.Users() {
				marker := " "
				if u.ID == selected.ID {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  (%d days)\n", marker, u.ID, u.Name, len(u.WorkoutDays))
			}
			return nil
		})
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a user with the default weekly schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			created, err := st.AddUser(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added user %s (%s)\n", created.Name, created.ID)
			return nil
		})
	},
}

var usersRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := st.RenameUser(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Renamed.")
			return nil
		})
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user (the last remaining user cannot be deleted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := st.DeleteUser(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		})
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersRenameCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
