// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"database/sql"
	"log/slog"
	"math"

	"github.com/danielhkuo/sondages/models"
)

// Aggregator tallies votes per option
type Aggregator struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewAggregator(db *sql.DB, logger *slog.Logger) *Aggregator {
	return &Aggregator{db: db, logger: resolveLogger(logger)}
}

// GetResults counts the votes of every option in option order.
// TotalVotes can exceed TotalVoters on multiple-choice polls.
func (a *Aggregator) GetResults(ctx context.Context, pollID int64) (models.PollResults, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PollResults{}, storageError(a.logger, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	poll, err := loadPoll(ctx, tx, pollID)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return models.PollResults{}, err
		}
		return models.PollResults{}, storageError(a.logger, "failed to query poll", err, "poll_id", pollID)
	}

	counts, err := countVotes(ctx, tx, pollID)
	if err != nil {
		return models.PollResults{}, storageError(a.logger, "failed to count votes", err, "poll_id", pollID)
	}

	var voters int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM ballot WHERE poll_id = $1
	`, pollID).Scan(&voters)
	if err != nil {
		return models.PollResults{}, storageError(a.logger, "failed to count ballots", err, "poll_id", pollID)
	}

	results := models.PollResults{
		Poll:        poll.Summary(),
		Results:     make([]models.OptionResult, 0, len(poll.Options)),
		TotalVoters: voters,
	}
	for _, opt := range poll.Options {
		n := counts[opt.ID]
		results.Results = append(results.Results, models.OptionResult{
			OptionID: opt.ID,
			Text:     opt.Text,
			Votes:    n,
		})
		results.TotalVotes += n
	}
	for i := range results.Results {
		results.Results[i].Percentage = Percentage(results.Results[i].Votes, results.TotalVotes)
	}

	return results, nil
}

func countVotes(ctx context.Context, q querier, pollID int64) (map[int64]int, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT o.id, COUNT(v.id)
		FROM option o
		LEFT JOIN vote v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			optionID int64
			n        int
		)
		if err := rows.Scan(&optionID, &n); err != nil {
			return nil, err
		}
		counts[optionID] = n
	}

	return counts, rows.Err()
}

// Percentage returns votes as a share of total, rounded to one decimal.
// A zero total yields 0.
func Percentage(votes, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*1000) / 10
}
