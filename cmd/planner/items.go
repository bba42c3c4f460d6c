package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fitness-planner/internal/state"
)

var itemUserID string

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage workout items on the selected user's schedule",
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the weekly schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := selectPlannerUser(st); err != nil {
				return err
			}
			user, _ := st.SelectedUser()
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule for %s:\n", user.Name)
			for _, day := range user.WorkoutDays {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", day.Name, day.ID)
				for _, item := range day.Items {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s  %s\n", item.ID, item.Name)
				}
			}
			return nil
		})
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add <day-id> <name>",
	Short: "Add a workout item to a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := selectPlannerUser(st); err != nil {
				return err
			}
			item, err := st.AddItem(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %s (%s)\n", item.Name, item.ID)
			return nil
		})
	},
}

var itemsRenameCmd = &cobra.Command{
	Use:   "rename <day-id> <item-id> <name>",
	Short: "Rename a workout item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := selectPlannerUser(st); err != nil {
				return err
			}
			if err := st.RenameItem(ctx, args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Renamed.")
			return nil
		})
	},
}

var itemsRenameDayCmd = &cobra.Command{
	Use:   "rename-day <day-id> <name>",
	Short: "Rename a workout day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := selectPlannerUser(st); err != nil {
				return err
			}
			if err := st.RenameDay(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Renamed.")
			return nil
		})
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete <day-id> <item-id>",
	Short: "Delete a workout item (attached media is kept as orphans)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := selectPlannerUser(st); err != nil {
				return err
			}
			if err := st.DeleteItem(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		})
	},
}

// selectPlannerUser applies the --user flag when given; otherwise the store's
// default selection (first user) stands.
func selectPlannerUser(st *state.Store) error {
	if itemUserID == "" {
		return nil
	}
	return st.SelectUser(itemUserID)
}

func init() {
	itemsCmd.PersistentFlags().StringVar(&itemUserID, "user", "", "User id to operate on (default: first user)")
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsRenameCmd)
	itemsCmd.AddCommand(itemsRenameDayCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)
}
