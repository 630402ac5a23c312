// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, multiple, options
  - VoteRequest: voter, optionIds

# Response Types

Types for JSON responses:

  - VoteResponse: message
  - HasVotedResponse: hasVoted
  - ErrorResponse: error, message, kind

# Domain Types

  - Poll: poll with its options in creation order
  - Option: answer option with id and text
  - PollSummary: poll fields without options
  - OptionResult: vote count and share for one option
  - PollResults: per-option results plus totals
*/
package models
