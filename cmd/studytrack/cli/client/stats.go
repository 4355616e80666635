package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mwantia/studytrack/pkg/db/store"
)

func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		Long:  "Show aggregate statistics: totals, status and category breakdowns, average rating, hours and overdue items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.StudyStore) error {
				stats, err := st.Statistics(ctx)
				if err != nil {
					return err
				}

				fmt.Printf("Total items:    %d\n", stats.Total)
				fmt.Printf("Total hours:    %.1f\n", stats.TotalHours)
				fmt.Printf("Average rating: %.1f\n", stats.AvgRating)
				fmt.Printf("Overdue:        %d\n", stats.OverdueCount)

				if len(stats.ByStatus) > 0 {
					fmt.Println("\nBy status:")
					for _, key := range sortedKeys(stats.ByStatus) {
						fmt.Printf("  %-14s %d\n", key, stats.ByStatus[key])
					}
				}

				if len(stats.ByCategory) > 0 {
					fmt.Println("\nBy category:")
					for _, key := range sortedKeys(stats.ByCategory) {
						fmt.Printf("  %-14s %d\n", key, stats.ByCategory[key])
					}
				}
				return nil
			})
		},
	}
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
