package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwantia/studytrack/pkg/db/models"
	"github.com/mwantia/studytrack/pkg/db/store"
)

func NewItemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage study items",
		Long:  "Manage study items (courses, tasks) and list, create, update or delete entries.",
	}

	cmd.AddCommand(newItemListCommand())
	cmd.AddCommand(newItemAddCommand())
	cmd.AddCommand(newItemShowCommand())
	cmd.AddCommand(newItemUpdateCommand())
	cmd.AddCommand(newItemRemoveCommand())
	cmd.AddCommand(newItemSearchCommand())
	cmd.AddCommand(newItemLogCommand())
	cmd.AddCommand(newItemSessionsCommand())

	return cmd
}

type itemFlags struct {
	title       string
	description string
	category    uint
	rating      int
	status      string
	deadline    string
	hours       float64
	priority    int
	tags        []uint
}

func registerItemFlags(cmd *cobra.Command, f *itemFlags) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "item title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "item description")
	cmd.Flags().UintVar(&f.category, "category", 0, "category id (0 = none)")
	cmd.Flags().IntVar(&f.rating, "rating", 0, "rating 1-5 (0 = unrated)")
	cmd.Flags().StringVarP(&f.status, "status", "s", models.StatusPlanned, "planned, in_progress, completed or on_hold")
	cmd.Flags().StringVar(&f.deadline, "deadline", "", "deadline date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&f.hours, "hours", 0, "hours spent")
	cmd.Flags().IntVarP(&f.priority, "priority", "p", 3, "priority 1-5")
	cmd.Flags().UintSliceVar(&f.tags, "tag", nil, "tag id to attach (repeatable)")
}

func (f *itemFlags) toModel() (*models.StudyItem, error) {
	if !models.ValidStatus(f.status) {
		return nil, fmt.Errorf("invalid status %q", f.status)
	}
	if f.deadline != "" {
		if _, err := time.Parse("2006-01-02", f.deadline); err != nil {
			return nil, fmt.Errorf("invalid deadline %q, expected YYYY-MM-DD", f.deadline)
		}
	}

	item := &models.StudyItem{
		Title:       f.title,
		Description: f.description,
		Status:      f.status,
		HoursSpent:  f.hours,
		Priority:    f.priority,
	}
	if f.category != 0 {
		item.CategoryID = &f.category
	}
	if f.rating != 0 {
		item.Rating = &f.rating
	}
	if f.deadline != "" {
		item.Deadline = &f.deadline
	}
	return item, nil
}

func parseItemID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return uint(id), nil
}

func printItemSummaries(items []models.ItemSummary) {
	if len(items) == 0 {
		fmt.Println("No study items found")
		return
	}

	fmt.Printf("%-4s %-12s %-4s %-11s %-7s %-18s %s\n",
		"ID", "STATUS", "PRI", "DEADLINE", "HOURS", "CATEGORY", "TITLE")
	for _, item := range items {
		deadline := "-"
		if item.Deadline != nil {
			deadline = *item.Deadline
		}
		category := item.CategoryName
		if category == "" {
			category = "-"
		}
		title := item.Title
		if item.TagNames != "" {
			title = fmt.Sprintf("%s [%s]", title, item.TagNames)
		}
		fmt.Printf("%-4d %-12s %-4d %-11s %-7.1f %-18s %s\n",
			item.ID, item.Status, item.Priority, deadline, item.HoursSpent, category, title)
	}
}

func newItemListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all study items",
		Long:  "List every study item with its category and tags, active work first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.StudyStore) error {
				items, err := st.ListItems(ctx)
				if err != nil {
					return err
				}
				printItemSummaries(items)
				return nil
			})
		},
	}
}

func newItemAddCommand() *cobra.Command {
	flags := &itemFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new study item",
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := flags.toModel()
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.CreateItem(ctx, item, flags.tags); err != nil {
					return fmt.Errorf("failed to create item: %w", err)
				}
				fmt.Printf("Created item %d: %s\n", item.ID, item.Title)
				return nil
			})
		},
	}

	registerItemFlags(cmd, flags)
	cmd.MarkFlagRequired("title")

	return cmd
}

func newItemShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single study item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				item, tags, err := st.GetItem(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to fetch item %d: %w", id, err)
				}

				fmt.Printf("ID:          %d\n", item.ID)
				fmt.Printf("Title:       %s\n", item.Title)
				fmt.Printf("Description: %s\n", item.Description)
				fmt.Printf("Status:      %s\n", item.Status)
				if item.Rating != nil {
					fmt.Printf("Rating:      %d/5\n", *item.Rating)
				} else {
					fmt.Printf("Rating:      -\n")
				}
				if item.Deadline != nil {
					fmt.Printf("Deadline:    %s\n", *item.Deadline)
				} else {
					fmt.Printf("Deadline:    -\n")
				}
				fmt.Printf("Hours spent: %.1f\n", item.HoursSpent)
				fmt.Printf("Priority:    %d\n", item.Priority)
				fmt.Printf("Created:     %s\n", item.CreatedAt.Format("2006-01-02 15:04:05"))

				if len(tags) > 0 {
					fmt.Println("Tags:")
					for _, tag := range tags {
						fmt.Printf("  %d: %s (%s)\n", tag.ID, tag.Name, tag.Color)
					}
				}
				return nil
			})
		},
	}
}

func newItemUpdateCommand() *cobra.Command {
	flags := &itemFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a study item",
		Long:  "Replace every field of a study item and its tag set. All flags describe the new state of the record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			item, err := flags.toModel()
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.UpdateItem(ctx, id, item, flags.tags); err != nil {
					return fmt.Errorf("failed to update item %d: %w", id, err)
				}
				fmt.Printf("Updated item %d\n", id)
				return nil
			})
		},
	}

	registerItemFlags(cmd, flags)
	cmd.MarkFlagRequired("title")

	return cmd
}

func newItemRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a study item",
		Long:  "Delete a study item along with its tag associations and logged sessions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				if err := st.DeleteItem(ctx, id); err != nil {
					return fmt.Errorf("failed to delete item %d: %w", id, err)
				}
				fmt.Printf("Deleted item %d\n", id)
				return nil
			})
		},
	}
}

func newItemSearchCommand() *cobra.Command {
	var status string
	var category, tag uint

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search study items",
		Long:  "Search study items by substring and optional status, category and tag filters. All supplied filters must match.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := store.SearchFilter{
				Status:     status,
				CategoryID: category,
				TagID:      tag,
			}
			if len(args) == 1 {
				filter.Query = args[0]
			}
			if filter.Status != "" && !models.ValidStatus(filter.Status) {
				return fmt.Errorf("invalid status %q", filter.Status)
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				items, err := st.SearchItems(ctx, filter)
				if err != nil {
					return err
				}
				printItemSummaries(items)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status")
	cmd.Flags().UintVar(&category, "category", 0, "filter by category id")
	cmd.Flags().UintVar(&tag, "tag", 0, "filter by tag id")

	return cmd
}

func newItemLogCommand() *cobra.Command {
	var minutes int
	var date, notes string

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Log a study session for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if minutes <= 0 {
				return fmt.Errorf("duration must be positive")
			}
			if date != "" {
				if _, err := time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				// Fail early on unknown items instead of logging orphans
				if _, _, err := st.GetItem(ctx, id); err != nil {
					return fmt.Errorf("failed to fetch item %d: %w", id, err)
				}

				session := models.StudySession{
					StudyItemID:     id,
					Date:            date,
					DurationMinutes: minutes,
					Notes:           notes,
				}
				if err := st.LogSession(ctx, &session); err != nil {
					return fmt.Errorf("failed to log session: %w", err)
				}
				fmt.Printf("Logged %d minutes on item %d (%s)\n", minutes, id, session.Date)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "session duration in minutes")
	cmd.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "session notes")
	cmd.MarkFlagRequired("minutes")

	return cmd
}

func newItemSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions <id>",
		Short: "List the study sessions logged for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, st store.StudyStore) error {
				sessions, err := st.ListSessions(ctx, id)
				if err != nil {
					return err
				}

				if len(sessions) == 0 {
					fmt.Println("No sessions logged")
					return nil
				}

				fmt.Printf("%-4s %-11s %-8s %s\n", "ID", "DATE", "MINUTES", "NOTES")
				for _, session := range sessions {
					fmt.Printf("%-4d %-11s %-8d %s\n",
						session.ID, session.Date, session.DurationMinutes, session.Notes)
				}
				return nil
			})
		},
	}
}
