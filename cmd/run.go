package cmd

import (
	"context"
	"fmt"

	"github.com/asouza/lorito/internal/app"
	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/speech"
	"github.com/asouza/lorito/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, led, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	return app.Run(app.Options{
		Ledger:   led,
		Catalog:  cat,
		Sessions: st.SessionRepo(),
		Speaker:  speech.Best(),
		Version:  version,
	})
}

// openLedger opens the store and the ledger on top of it. The caller
// owns closing the store.
func openLedger(cmd *cobra.Command) (*store.Store, *ledger.Ledger, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	led, err := ledger.Open(context.Background(), st.ProfileRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open ledger: %w", err)
	}
	return st, led, nil
}
