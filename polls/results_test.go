// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/sondages/models"
	"github.com/danielhkuo/sondages/testutil"
)

func TestGetResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(conn, nil)

	pollID, optionIDs := testutil.CreateTestPoll(t, conn, false, "A", "B")
	testutil.CastTestVote(t, conn, pollID, "voter1", optionIDs[0])
	testutil.CastTestVote(t, conn, pollID, "voter2", optionIDs[0])
	testutil.CastTestVote(t, conn, pollID, "voter3", optionIDs[1])

	res, err := agg.GetResults(context.Background(), pollID)
	require.NoError(t, err)

	assert.Equal(t, models.PollSummary{ID: pollID, Title: "Test Poll", Description: "A test poll"}, res.Poll)
	assert.Equal(t, []models.OptionResult{
		{OptionID: optionIDs[0], Text: "A", Votes: 2, Percentage: 66.7},
		{OptionID: optionIDs[1], Text: "B", Votes: 1, Percentage: 33.3},
	}, res.Results)
	assert.Equal(t, 3, res.TotalVotes)
	assert.Equal(t, 3, res.TotalVoters)
}

func TestGetResultsNoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(conn, nil)

	pollID, optionIDs := testutil.CreateTestPoll(t, conn, true, "A", "B", "C")

	res, err := agg.GetResults(context.Background(), pollID)
	require.NoError(t, err)

	require.Len(t, res.Results, 3)
	for i, r := range res.Results {
		assert.Equal(t, optionIDs[i], r.OptionID)
		assert.Zero(t, r.Votes)
		assert.Zero(t, r.Percentage)
	}
	assert.Zero(t, res.TotalVotes)
	assert.Zero(t, res.TotalVoters)
}

func TestGetResultsMultipleChoiceTotals(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(conn, nil)

	pollID, optionIDs := testutil.CreateTestPoll(t, conn, true, "A", "B", "C")
	testutil.CastTestVote(t, conn, pollID, "alice", optionIDs...)
	testutil.CastTestVote(t, conn, pollID, "bob", optionIDs[2])

	res, err := agg.GetResults(context.Background(), pollID)
	require.NoError(t, err)

	votes := []int{}
	for _, r := range res.Results {
		votes = append(votes, r.Votes)
	}
	assert.Equal(t, []int{1, 1, 2}, votes)
	assert.Equal(t, 4, res.TotalVotes)
	assert.Equal(t, 2, res.TotalVoters)
	assert.True(t, res.Poll.Multiple)
}

func TestGetResultsNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(conn, nil)

	_, err := agg.GetResults(context.Background(), 12345)
	require.ErrorIs(t, err, ErrPollNotFound)
}

func TestPercentage(t *testing.T) {
	assert.Zero(t, Percentage(0, 0))
	assert.Zero(t, Percentage(3, 0))
	assert.Equal(t, 100.0, Percentage(4, 4))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
}

// Walks the create / vote / conflict / results sequence on a fresh database
func TestEndToEnd(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	repo := NewRepository(conn, nil)
	writer := NewVoteWriter(conn, nil)
	agg := NewAggregator(conn, nil)

	req, err := ValidateCreatePoll(models.CreatePollRequest{
		Title:       "Lang?",
		Description: "pick one",
		Options:     []string{"Go", "Rust"},
	})
	require.NoError(t, err)

	poll, err := repo.CreatePoll(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), poll.ID)
	assert.Equal(t, []models.Option{{ID: 1, Text: "Go"}, {ID: 2, Text: "Rust"}}, poll.Options)

	_, err = writer.Vote(ctx, 1, models.VoteRequest{Voter: "alice", OptionIDs: []int64{1}})
	require.NoError(t, err)

	_, err = writer.Vote(ctx, 1, models.VoteRequest{Voter: "alice", OptionIDs: []int64{2}})
	require.ErrorIs(t, err, ErrAlreadyVoted)

	res, err := agg.GetResults(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.OptionResult{
		{OptionID: 1, Text: "Go", Votes: 1, Percentage: 100},
		{OptionID: 2, Text: "Rust", Votes: 0, Percentage: 0},
	}, res.Results)
	assert.Equal(t, 1, res.TotalVotes)
}
