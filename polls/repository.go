// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/danielhkuo/sondages/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository creates and reads polls together with their options
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: resolveLogger(logger)}
}

// CreatePoll persists a poll and one option per text in a single
// transaction. Options come back in input order.
func (r *Repository) CreatePoll(ctx context.Context, req models.CreatePollRequest) (models.Poll, error) {
	if len(req.Options) < MinOptions {
		return models.Poll{}, ErrTooFewOptions
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Poll{}, storageError(r.logger, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	poll := models.Poll{
		Title:       req.Title,
		Description: req.Description,
		Multiple:    req.Multiple,
		Options:     make([]models.Option, 0, len(req.Options)),
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO poll (title, description, multiple)
		VALUES ($1, $2, $3)
		RETURNING id
	`, poll.Title, poll.Description, poll.Multiple).Scan(&poll.ID)
	if err != nil {
		return models.Poll{}, storageError(r.logger, "failed to insert poll", err, "title", poll.Title)
	}

	for _, text := range req.Options {
		opt := models.Option{Text: text}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO option (poll_id, text)
			VALUES ($1, $2)
			RETURNING id
		`, poll.ID, text).Scan(&opt.ID)
		if err != nil {
			return models.Poll{}, storageError(r.logger, "failed to insert option", err, "poll_id", poll.ID)
		}
		poll.Options = append(poll.Options, opt)
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, storageError(r.logger, "failed to commit transaction", err, "poll_id", poll.ID)
	}

	r.logger.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options), "multiple", poll.Multiple)

	return poll, nil
}

// ListPolls returns every poll with its options, oldest first
func (r *Repository) ListPolls(ctx context.Context) ([]models.Poll, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.description, p.multiple, o.id, o.text
		FROM poll p
		LEFT JOIN option o ON o.poll_id = p.id
		ORDER BY p.id, o.id
	`)
	if err != nil {
		return nil, storageError(r.logger, "failed to query polls", err)
	}
	defer rows.Close()

	polls, err := scanPolls(rows)
	if err != nil {
		return nil, storageError(r.logger, "failed to scan polls", err)
	}

	return polls, nil
}

// GetPollByID returns one poll with its options, or ErrPollNotFound
func (r *Repository) GetPollByID(ctx context.Context, id int64) (models.Poll, error) {
	poll, err := loadPoll(ctx, r.db, id)
	if err != nil && KindOf(err) != KindNotFound {
		return models.Poll{}, storageError(r.logger, "failed to query poll", err, "poll_id", id)
	}
	return poll, err
}

// DeletePoll removes a poll. Options, ballots and votes go with it
// through the foreign key cascades.
func (r *Repository) DeletePoll(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return storageError(r.logger, "failed to delete poll", err, "poll_id", id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageError(r.logger, "failed to read deleted rows", err, "poll_id", id)
	}
	if n == 0 {
		return ErrPollNotFound
	}

	r.logger.Info("poll deleted", "poll_id", id)
	return nil
}

// loadPoll reads a poll and its options through q, which may be a
// transaction. Returns ErrPollNotFound when no poll has that id.
func loadPoll(ctx context.Context, q querier, id int64) (models.Poll, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT p.id, p.title, p.description, p.multiple, o.id, o.text
		FROM poll p
		LEFT JOIN option o ON o.poll_id = p.id
		WHERE p.id = $1
		ORDER BY o.id
	`, id)
	if err != nil {
		return models.Poll{}, err
	}
	defer rows.Close()

	polls, err := scanPolls(rows)
	if err != nil {
		return models.Poll{}, err
	}
	if len(polls) == 0 {
		return models.Poll{}, ErrPollNotFound
	}

	return polls[0], nil
}

// scanPolls folds poll/option join rows ordered by poll id into polls
func scanPolls(rows *sql.Rows) ([]models.Poll, error) {
	polls := []models.Poll{}
	for rows.Next() {
		var (
			p        models.Poll
			optionID sql.NullInt64
			text     sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Multiple, &optionID, &text); err != nil {
			return nil, err
		}

		if n := len(polls); n == 0 || polls[n-1].ID != p.ID {
			p.Options = []models.Option{}
			polls = append(polls, p)
		}
		if optionID.Valid {
			last := &polls[len(polls)-1]
			last.Options = append(last.Options, models.Option{ID: optionID.Int64, Text: text.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return polls, nil
}
