package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwantia/studytrack/pkg/db/models"
	"github.com/mwantia/studytrack/pkg/db/store"
)

func NewTagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
		Long:  "Manage the tags attachable to study items.",
	}

	cmd.AddCommand(newTagListCommand())
	cmd.AddCommand(newTagAddCommand())
	cmd.AddCommand(newTagUpdateCommand())
	cmd.AddCommand(newTagRemoveCommand())

	return cmd
}

func newTagListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.StudyStore) error {
				tags, err := st.ListTags(ctx)
				if err != nil {
					return err
				}

				if len(tags) == 0 {
					fmt.Println("No tags found")
					return nil
				}

				fmt.Printf("%-4s %-20s %s\n", "ID", "NAME", "COLOR")
				for _, tag := range tags {
					fmt.Printf("%-4d %-20s %s\n", tag.ID, tag.Name, tag.Color)
				}
				return nil
			})
		},
	}
}

func newTagAddCommand() *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			if color == "" {
				color = models.DefaultTagColor
			}

			tag := models.Tag{
				Name:  name,
				Color: color,
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.CreateTag(ctx, &tag); err != nil {
					return fmt.Errorf("failed to create tag: %w", err)
				}
				fmt.Printf("Created tag %d: %s\n", tag.ID, tag.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "tag name")
	cmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #2ecc71")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newTagUpdateCommand() *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if color == "" {
				color = models.DefaultTagColor
			}

			tag := models.Tag{
				ID:    id,
				Name:  name,
				Color: color,
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.UpdateTag(ctx, &tag); err != nil {
					return fmt.Errorf("failed to update tag %d: %w", id, err)
				}
				fmt.Printf("Updated tag %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "tag name")
	cmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #2ecc71")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newTagRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a tag",
		Long:  "Delete a tag and detach it from every study item. The items themselves are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.DeleteTag(ctx, id); err != nil {
					return fmt.Errorf("failed to delete tag %d: %w", id, err)
				}
				fmt.Printf("Deleted tag %d\n", id)
				return nil
			})
		},
	}
}
