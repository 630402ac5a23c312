// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Sondages API.

# Handler Types

Each handler is a struct over one component of package polls:

  - PollHandler: create, list and read polls (polls.Repository)
  - VotingHandler: vote and has-voted (polls.VoteWriter)
  - ResultsHandler: live results (polls.Aggregator)

	repo := polls.NewRepository(db, logger)
	pollHandler := handlers.NewPollHandler(repo, m)

# Endpoints

	POST /api/sondages                           → CreatePoll (201, poll with options)
	GET  /api/sondages                           → ListPolls
	GET  /api/sondages/{id}                      → GetPoll
	POST /api/sondages/{id}/vote                 → Vote (201, {"message": "Vote enregistré"})
	GET  /api/sondages/{id}/has-voted/{voter}    → HasVoted
	GET  /api/sondages/{id}/resultats            → GetResults

# Errors

Failures are written as {"error", "message", "kind"}. The kind of a
polls.Error picks the status:

	not_found        → 404
	conflict         → 409
	invalid_argument → 400
	storage_failure  → 500

A non-numeric {id} is a 400. Storage failures only ever expose the
generic message; the driver error goes to the log.
*/
package handlers
