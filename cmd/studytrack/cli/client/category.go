package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwantia/studytrack/pkg/db/models"
	"github.com/mwantia/studytrack/pkg/db/store"
)

func NewCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
		Long:  "Manage the categories study items are grouped by. At most one category is the default.",
	}

	cmd.AddCommand(newCategoryListCommand())
	cmd.AddCommand(newCategoryAddCommand())
	cmd.AddCommand(newCategoryUpdateCommand())
	cmd.AddCommand(newCategoryRemoveCommand())

	return cmd
}

func newCategoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.StudyStore) error {
				categories, err := st.ListCategories(ctx)
				if err != nil {
					return err
				}

				if len(categories) == 0 {
					fmt.Println("No categories found")
					return nil
				}

				fmt.Printf("%-4s %-20s %-9s %-8s %s\n", "ID", "NAME", "COLOR", "DEFAULT", "DESCRIPTION")
				for _, category := range categories {
					isDefault := ""
					if category.IsDefault {
						isDefault = "yes"
					}
					fmt.Printf("%-4d %-20s %-9s %-8s %s\n",
						category.ID, category.Name, category.Color, isDefault, category.Description)
				}
				return nil
			})
		},
	}
}

func newCategoryAddCommand() *cobra.Command {
	var name, description, color string
	var isDefault bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if color == "" {
				color = models.DefaultCategoryColor
			}

			category := models.Category{
				Name:        name,
				Description: description,
				Color:       color,
				IsDefault:   isDefault,
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.CreateCategory(ctx, &category); err != nil {
					return fmt.Errorf("failed to create category: %w", err)
				}
				fmt.Printf("Created category %d: %s\n", category.ID, category.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #3498db")
	cmd.Flags().BoolVar(&isDefault, "default", false, "mark as the default category")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryUpdateCommand() *cobra.Command {
	var name, description, color string
	var isDefault bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long:  "Replace every field of a category. All flags describe the new state of the record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if color == "" {
				color = models.DefaultCategoryColor
			}

			category := models.Category{
				ID:          id,
				Name:        name,
				Description: description,
				Color:       color,
				IsDefault:   isDefault,
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.UpdateCategory(ctx, &category); err != nil {
					return fmt.Errorf("failed to update category %d: %w", id, err)
				}
				fmt.Printf("Updated category %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #3498db")
	cmd.Flags().BoolVar(&isDefault, "default", false, "mark as the default category")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryRemoveCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Long:  "Delete a category. Study items that reference it are kept and lose their category.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				// The store deletes unconditionally; the confirmation
				// lives here at the calling side
				count, err := st.CountItemsInCategory(ctx, id)
				if err != nil {
					return err
				}
				if count > 0 && !yes {
					return fmt.Errorf("category %d is used by %d item(s); re-run with --yes to delete anyway", id, count)
				}

				if err := st.DeleteCategory(ctx, id); err != nil {
					return fmt.Errorf("failed to delete category %d: %w", id, err)
				}
				fmt.Printf("Deleted category %d", id)
				if count > 0 {
					fmt.Printf(" (%d item(s) kept without a category)", count)
				}
				fmt.Println()
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete even when items still use the category")

	return cmd
}
