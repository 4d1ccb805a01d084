package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the learner profile and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Fprint(cmd.OutOrStdout(), "This erases all progress. Type 'yes' to continue: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		st, led, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		if err := led.Reset(ctx); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		if err := st.SessionRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
