// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls holds the poll, vote and results logic.

Each component takes the database handle explicitly:

	repo := polls.NewRepository(conn, logger)
	votes := polls.NewVoteWriter(conn, logger)
	results := polls.NewAggregator(conn, logger)

# Creating Polls

Repository.CreatePoll writes the poll and its options in one transaction.
Callers run ValidateCreatePoll first; the repository still refuses fewer
than MinOptions options.

# Voting

VoteWriter.Vote runs, in one transaction:

 1. load the poll (ErrPollNotFound)
 2. look for an existing ballot of the voter (ErrAlreadyVoted)
 3. reject several options on a single-choice poll (ErrSingleChoice)
 4. reject option ids that do not belong to the poll (ErrInvalidOptions)
 5. insert the ballot and one vote row per option

The ballot table is unique on (poll_id, voter). A concurrent writer that
loses the race gets the unique violation, reported as ErrAlreadyVoted.

# Results

Aggregator.GetResults counts vote rows per option in option order.
TotalVotes is the sum of the counts; TotalVoters the number of ballots.

# Errors

Every failure is an *Error with a Kind:

	switch polls.KindOf(err) {
	case polls.KindNotFound:        // 404
	case polls.KindConflict:        // 409
	case polls.KindInvalidArgument: // 400
	case polls.KindStorageFailure:  // 500
	}
*/
package polls
