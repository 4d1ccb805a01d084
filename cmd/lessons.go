package cmd

import (
	"fmt"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lessons in the built-in catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (catalog v%d)\n", cat.Course, cat.Version)
		for _, category := range cat.Categories() {
			fmt.Fprintf(out, "\n%s\n", category)
			for _, l := range cat.ByCategory(category) {
				fmt.Fprintf(out, "  %-4s %-28s %d exercises\n", l.ID, l.Title, len(l.Exercises))
			}
		}
		return nil
	},
}
