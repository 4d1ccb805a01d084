package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asouza/lorito/internal/ledger"
)

// profileKey is the row key for the single learner profile. The app is
// single-user, so the profiles table holds at most one row.
const profileKey = "learner"

// ProfileRepo persists the learner profile as one JSON document.
// It implements ledger.ProfileStore.
type ProfileRepo struct {
	db *sql.DB
}

var _ ledger.ProfileStore = (*ProfileRepo)(nil)

// Load returns the stored profile, or (nil, nil) when no profile exists
// or the stored document cannot be decoded. A corrupt row is treated as
// absent so the app can start fresh instead of refusing to run.
func (r *ProfileRepo) Load(ctx context.Context) (*ledger.LearnerProfile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM profiles WHERE key = ?", profileKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p ledger.LearnerProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

// Save upserts the profile document.
func (r *ProfileRepo) Save(ctx context.Context, p ledger.LearnerProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (key, data) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET data = excluded.data`,
		profileKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Delete removes the stored profile. Deleting an absent profile is not
// an error.
func (r *ProfileRepo) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM profiles WHERE key = ?", profileKey,
	)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
