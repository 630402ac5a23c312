// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/danielhkuo/sondages/db"
	"github.com/danielhkuo/sondages/models"
)

// VoteRecorded is the confirmation returned after a successful vote
const VoteRecorded = "Vote enregistré"

// VoteWriter validates vote requests and records them
type VoteWriter struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewVoteWriter(conn *sql.DB, logger *slog.Logger) *VoteWriter {
	return &VoteWriter{db: conn, logger: resolveLogger(logger)}
}

// Vote records one ballot for req.Voter on the poll with one vote row per
// selected option. Every check runs inside the transaction that writes
// the rows, and any failure leaves nothing behind.
func (w *VoteWriter) Vote(ctx context.Context, pollID int64, req models.VoteRequest) (string, error) {
	req, err := ValidateVote(req)
	if err != nil {
		return "", err
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return "", storageError(w.logger, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	poll, err := loadPoll(ctx, tx, pollID)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return "", err
		}
		return "", storageError(w.logger, "failed to query poll", err, "poll_id", pollID)
	}

	voted, err := hasBallot(ctx, tx, pollID, req.Voter)
	if err != nil {
		return "", storageError(w.logger, "failed to check existing ballot", err, "poll_id", pollID)
	}
	if voted {
		return "", ErrAlreadyVoted
	}

	if !poll.Multiple && len(req.OptionIDs) > 1 {
		return "", ErrSingleChoice
	}

	validOptions := make(map[int64]bool, len(poll.Options))
	for _, opt := range poll.Options {
		validOptions[opt.ID] = true
	}
	// Each option may be chosen once
	for _, id := range req.OptionIDs {
		if !validOptions[id] {
			return "", ErrInvalidOptions
		}
		delete(validOptions, id)
	}

	// UNIQUE (poll_id, voter) decides between racing writers
	var ballotID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO ballot (poll_id, voter)
		VALUES ($1, $2)
		RETURNING id
	`, pollID, req.Voter).Scan(&ballotID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return "", ErrAlreadyVoted
		}
		return "", storageError(w.logger, "failed to insert ballot", err, "poll_id", pollID)
	}

	for _, optionID := range req.OptionIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO vote (ballot_id, poll_id, option_id)
			VALUES ($1, $2, $3)
		`, ballotID, pollID, optionID)
		if err != nil {
			return "", storageError(w.logger, "failed to insert vote", err,
				"poll_id", pollID,
				"ballot_id", ballotID,
				"option_id", optionID,
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", storageError(w.logger, "failed to commit transaction", err, "poll_id", pollID)
	}

	w.logger.Info("vote recorded", "poll_id", pollID, "ballot_id", ballotID, "options", len(req.OptionIDs))

	return VoteRecorded, nil
}

// HasUserVoted reports whether voter already has a ballot on the poll.
// An unknown poll is simply false.
func (w *VoteWriter) HasUserVoted(ctx context.Context, pollID int64, voter string) (bool, error) {
	voted, err := hasBallot(ctx, w.db, pollID, strings.TrimSpace(voter))
	if err != nil {
		return false, storageError(w.logger, "failed to check existing ballot", err, "poll_id", pollID)
	}
	return voted, nil
}

func hasBallot(ctx context.Context, q querier, pollID int64, voter string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM ballot
			WHERE poll_id = $1 AND voter = $2
		)
	`, pollID, voter).Scan(&exists)
	return exists, err
}
