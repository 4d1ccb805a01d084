package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session kinds recorded in history.
const (
	SessionLesson    = "lesson"
	SessionQuickTest = "quicktest"
)

// SessionRecord is one completed lesson or quick test.
type SessionRecord struct {
	ID       string
	Kind     string
	LessonID string // empty for quick tests
	Correct  int
	Wrong    int
	XP       int
	PlayedAt time.Time
}

// SessionRepo appends to and reads the play history.
type SessionRepo struct {
	db *sql.DB
}

// Append records a completed session. A missing ID is filled in.
func (r *SessionRepo) Append(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, kind, lesson_id, correct, wrong, xp, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.LessonID, rec.Correct, rec.Wrong, rec.XP,
		rec.PlayedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (r *SessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, lesson_id, correct, wrong, xp, played_at
		 FROM sessions ORDER BY played_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var playedAt string
		err := rows.Scan(&rec.ID, &rec.Kind, &rec.LessonID,
			&rec.Correct, &rec.Wrong, &rec.XP, &playedAt)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.PlayedAt, err = time.Parse(time.RFC3339, playedAt)
		if err != nil {
			return nil, fmt.Errorf("parse played_at: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// Clear wipes the play history.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}
