package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/state"
)

var (
	mediaUserID string
	mediaDayID  string
	mediaItemID string
	mediaTab    string
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage photos and videos attached to workout items",
}

var mediaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List media for one workout item",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := focusItem(st); err != nil {
				return err
			}
			if err := st.SetActiveTab(domain.MediaKind(mediaTab)); err != nil {
				return err
			}
			for _, m := range st.ItemMedia() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d bytes inline\n", m.ID, m.Kind, len(m.URL))
			}
			return nil
		})
	},
}

var mediaUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Attach a photo or video to one workout item",
	Long: "Images are downscaled to at most 800px on the longer side and\n" +
		"re-encoded before storing; videos are stored as-is. The file's type\n" +
		"must match the active tab (--tab).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := focusItem(st); err != nil {
				return err
			}
			if err := st.SetActiveTab(domain.MediaKind(mediaTab)); err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer file.Close()

			contentType := mime.TypeByExtension(filepath.Ext(args[0]))
			if contentType == "" {
				return fmt.Errorf("cannot determine media type of %s", args[0])
			}

			created, err := st.Upload(ctx, contentType, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s)\n", created.ID, created.Kind)
			return nil
		})
	},
}

var mediaDeleteCmd = &cobra.Command{
	Use:   "delete <media-id>",
	Short: "Delete one media row (irreversible)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st *state.Store) error {
			if err := st.DeleteMedia(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		})
	},
}

// focusItem applies the --user flag and selects the (day, item) pair every
// media command operates on.
func focusItem(st *state.Store) error {
	if mediaUserID != "" {
		if err := st.SelectUser(mediaUserID); err != nil {
			return err
		}
	}
	if mediaDayID == "" || mediaItemID == "" {
		return fmt.Errorf("--day and --item are required")
	}
	return st.SelectItem(mediaDayID, mediaItemID)
}

func init() {
	mediaCmd.PersistentFlags().StringVar(&mediaUserID, "user", "", "User id (default: first user)")
	mediaCmd.PersistentFlags().StringVar(&mediaDayID, "day", "", "Workout day id")
	mediaCmd.PersistentFlags().StringVar(&mediaItemID, "item", "", "Workout item id")
	mediaCmd.PersistentFlags().StringVar(&mediaTab, "tab", "image", "Active media tab: image or video")

	mediaCmd.AddCommand(mediaListCmd)
	mediaCmd.AddCommand(mediaUploadCmd)
	mediaCmd.AddCommand(mediaDeleteCmd)
}
