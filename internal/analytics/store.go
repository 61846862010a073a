// Package analytics tracks per-user usage in a sqlite database.
package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS actions (
    id INTEGER PRIMARY KEY,
    user_id TEXT NOT NULL,
    action TEXT NOT NULL,
    words INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    day TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_actions_user ON actions(user_id);
`

const dayLayout = "2006-01-02"

// ErrNoUser rejects tracking without a user id.
var ErrNoUser = errors.New("user id is required")

// Tracker records actions and derives per-user statistics.
type Tracker struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the sqlite file at path and applies the schema.
func Open(path string) (*Tracker, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Tracker{db: db, now: time.Now}, nil
}

// Close releases the database.
func (t *Tracker) Close() error { return t.db.Close() }

// TrackAction records one action of words words for user.
func (t *Tracker) TrackAction(ctx context.Context, user, action string, words int) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return ErrNoUser
	}
	if words < 0 {
		words = 0
	}
	now := t.now().UTC()
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO actions(user_id, action, words, created_at, day) VALUES(?,?,?,?,?)`,
		user, action, words, now.Format(time.RFC3339), now.Format(dayLayout),
	); err != nil {
		return fmt.Errorf("insert action: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// UserStats summarizes one user's activity.
type UserStats struct {
	TotalWords    int            `json:"total_words"`
	TotalActions  int            `json:"total_actions"`
	TimeSaved     float64        `json:"time_saved"`
	ActionsByType map[string]int `json:"actions_by_type"`
	StreakDays    int            `json:"streak_days"`
	Level         string         `json:"level"`
	FirstUse      string         `json:"first_use,omitempty"`
	LastUse       string         `json:"last_use,omitempty"`
}

// UserStats returns the statistics for user. An unknown user gets zero values and level Beginner.
func (t *Tracker) UserStats(ctx context.Context, user string) (UserStats, error) {
	out := UserStats{ActionsByType: map[string]int{}, Level: Level(0)}

	rows, err := t.db.QueryContext(ctx,
		`SELECT action, COUNT(*), SUM(words) FROM actions WHERE user_id = ? GROUP BY action`, user)
	if err != nil {
		return out, fmt.Errorf("query actions: %w", err)
	}
	for rows.Next() {
		var action string
		var n, words int
		if err := rows.Scan(&action, &n, &words); err != nil {
			rows.Close()
			return out, fmt.Errorf("scan actions: %w", err)
		}
		out.ActionsByType[action] = n
		out.TotalActions += n
		out.TotalWords += words
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return out, err
	}
	if out.TotalActions == 0 {
		return out, nil
	}

	days, err := t.days(ctx, user)
	if err != nil {
		return out, err
	}
	out.TimeSaved = TimeSaved(out.TotalWords)
	out.StreakDays = Streak(days)
	out.Level = Level(out.TotalActions)
	if len(days) > 0 {
		out.LastUse = days[0].Format(dayLayout)
		out.FirstUse = days[len(days)-1].Format(dayLayout)
	}
	return out, nil
}

// days returns the distinct usage days of user, newest first.
func (t *Tracker) days(ctx context.Context, user string) ([]time.Time, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT DISTINCT day FROM actions WHERE user_id = ? ORDER BY day DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()
	var out []time.Time
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		d, err := time.Parse(dayLayout, s)
		if err != nil {
			return nil, fmt.Errorf("parse day %q: %w", s, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// LeaderboardEntry is one anonymized row of the leaderboard.
type LeaderboardEntry struct {
	UserID       string `json:"user_id"`
	TotalActions int    `json:"total_actions"`
	TotalWords   int    `json:"total_words"`
	Level        string `json:"level"`
}

// Leaderboard ranks users by action count.
func (t *Tracker) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := t.db.QueryContext(ctx, `
SELECT user_id, COUNT(*) AS n, SUM(words)
FROM actions
GROUP BY user_id
ORDER BY n DESC, user_id ASC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()
	out := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.TotalActions, &e.TotalWords); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		e.UserID = Anonymize(e.UserID)
		e.Level = Level(e.TotalActions)
		out = append(out, e)
	}
	return out, rows.Err()
}

// TimeSaved estimates minutes saved: half a minute per hundred words, one decimal.
func TimeSaved(words int) float64 {
	return math.Round(float64(words)/100*0.5*10) / 10
}

// Streak counts consecutive days backwards from the newest day. days must be distinct and sorted newest first.
func Streak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	streak := 1
	for i := 0; i+1 < len(days); i++ {
		if days[i].Sub(days[i+1]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// Level buckets a user by total actions.
func Level(actions int) string {
	switch {
	case actions < 10:
		return "Beginner"
	case actions < 50:
		return "Intermediate"
	case actions < 200:
		return "Advanced"
	default:
		return "Expert"
	}
}

// Anonymize keeps the first eight characters of an id.
func Anonymize(id string) string {
	r := []rune(id)
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r) + "..."
}
