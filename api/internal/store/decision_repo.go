package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"prof-bot/api/internal/router"
)

// DecisionRepo is an append-only log of routing decisions, kept for support
// and tuning of the rule documents.
type DecisionRepo struct{ DB *sql.DB }

func NewDecisionRepo(db *sql.DB) *DecisionRepo { return &DecisionRepo{DB: db} }

type DecisionRow struct {
	ID        int64
	CreatedAt time.Time
	ChatID    int64
	Message   string
	Output    router.RouterOutput
}

// Insert stores one decision. chatID may be 0 for the HTTP surface.
func (r *DecisionRepo) Insert(ctx context.Context, chatID int64, message string, out router.RouterOutput) error {
	js, err := json.Marshal(out)
	if err != nil {
		return err
	}
	var intent sql.NullString
	if out.Intent != nil {
		intent = sql.NullString{String: string(*out.Intent), Valid: true}
	}
	const q = `
insert into routing_decisions (chat_id, message, action, intent, result_json)
values ($1, $2, $3, $4, $5)`
	_, err = r.DB.ExecContext(ctx, q, chatID, message, string(out.Action), intent, js)
	return err
}

// LastByChat returns the most recent decision for a chat, or ErrNotFound.
func (r *DecisionRepo) LastByChat(ctx context.Context, chatID int64) (*DecisionRow, error) {
	const q = `
select id, created_at, chat_id, message, result_json
from routing_decisions
where chat_id = $1
order by created_at desc
limit 1`
	var (
		row DecisionRow
		js  []byte
	)
	if err := r.DB.QueryRowContext(ctx, q, chatID).Scan(&row.ID, &row.CreatedAt, &row.ChatID, &row.Message, &js); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(js, &row.Output); err != nil {
		// broken JSON in the log is treated as not found
		return nil, ErrNotFound
	}
	return &row, nil
}

// PurgeOlderThan deletes old log rows so the table does not grow unbounded.
func (r *DecisionRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	const q = `delete from routing_decisions where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
