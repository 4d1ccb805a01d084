package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asouza/lorito/internal/updatecheck"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update lorito to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := updatecheck.NewChecker()
		err := checker.Update(ctx, &updatecheck.UpdateInput{CurrentVersion: version}, func(p updatecheck.UpdateProgress) {
			fmt.Fprintln(cmd.OutOrStdout(), p.Message)
		})

		switch {
		case errors.Is(err, updatecheck.ErrDevBuild):
			fmt.Fprintln(cmd.OutOrStdout(), "Development builds cannot self-update. Install a release build first.")
			return nil
		case errors.Is(err, updatecheck.ErrAlreadyLatest):
			fmt.Fprintf(cmd.OutOrStdout(), "lorito %s is already the latest version.\n", version)
			return nil
		case err != nil:
			return fmt.Errorf("update: %w", err)
		}
		return nil
	},
}
