package store

import (
	"context"
	"database/sql"
)

var ErrNotFound = sql.ErrNoRows

// ProfileRepo keeps the level a student declared for their chat.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// Level returns the declared level id for a chat, or ErrNotFound.
func (r *ProfileRepo) Level(ctx context.Context, chatID int64) (string, error) {
	const q = `select level from user_profiles where chat_id = $1`
	var level string
	if err := r.DB.QueryRowContext(ctx, q, chatID).Scan(&level); err != nil {
		return "", err
	}
	return level, nil
}

// SetLevel upserts the declared level for a chat.
func (r *ProfileRepo) SetLevel(ctx context.Context, chatID int64, level string) error {
	const q = `
insert into user_profiles (chat_id, level, updated_at)
values ($1, $2, now())
on conflict (chat_id) do update
set level = excluded.level,
    updated_at = now()`
	_, err := r.DB.ExecContext(ctx, q, chatID, level)
	return err
}
