package cmd

import (
	"fmt"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress without opening the app",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, led, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		prof := led.Profile()
		out := cmd.OutOrStdout()

		if !prof.Registered() {
			fmt.Fprintln(out, "No learner yet. Run lorito to get started.")
			return nil
		}

		fmt.Fprintf(out, "%s %s\n", prof.Avatar, prof.Name)
		fmt.Fprintf(out, "  XP      %d\n", prof.XP)
		fmt.Fprintf(out, "  Hearts  %d/%d\n", prof.Hearts, ledger.MaxHearts)
		fmt.Fprintf(out, "  Streak  %d day(s)\n", prof.Streak)
		if prof.LastPlayedDate != "" {
			fmt.Fprintf(out, "  Played  %s\n", prof.LastPlayedDate)
		}

		fmt.Fprintln(out, "\nMastery")
		for _, l := range cat.Lessons {
			fmt.Fprintf(out, "  %-4s %-28s %3d%%\n", l.ID, l.Title, prof.MasteryPercent(l.ID))
		}
		return nil
	},
}
