// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"strings"

	"github.com/danielhkuo/sondages/models"
)

// MinOptions is the smallest option set a poll may be created with
const MinOptions = 2

// ValidateCreatePoll checks a creation request and returns it with
// surrounding whitespace trimmed from the title, description and options.
func ValidateCreatePoll(req models.CreatePollRequest) (models.CreatePollRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	if req.Title == "" {
		return req, ErrTitleRequired
	}
	if len(req.Options) < MinOptions {
		return req, ErrTooFewOptions
	}

	options := make([]string, len(req.Options))
	for i, text := range req.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			return req, ErrEmptyOption
		}
		options[i] = text
	}
	req.Options = options

	return req, nil
}

// ValidateVote checks the shape of a vote request before any poll is
// loaded. Option ids, duplicates included, are checked against the poll
// once the voter is known not to have voted.
func ValidateVote(req models.VoteRequest) (models.VoteRequest, error) {
	req.Voter = strings.TrimSpace(req.Voter)

	if req.Voter == "" {
		return req, ErrVoterRequired
	}
	if len(req.OptionIDs) == 0 {
		return req, ErrNoOptionChosen
	}

	return req, nil
}
