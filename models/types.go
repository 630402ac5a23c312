// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreatePollRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Multiple    bool     `json:"multiple"`
	Options     []string `json:"options"`
}

type VoteRequest struct {
	Voter     string  `json:"voter"`
	OptionIDs []int64 `json:"optionIds"`
}

// Response types

type VoteResponse struct {
	Message string `json:"message"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"hasVoted"`
}

// Domain types

type Poll struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Multiple    bool     `json:"multiple"`
	Options     []Option `json:"options"`
}

type Option struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// PollSummary is a poll without its options
type PollSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Multiple    bool   `json:"multiple"`
}

type OptionResult struct {
	OptionID   int64   `json:"optionId"`
	Text       string  `json:"text"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type PollResults struct {
	Poll        PollSummary    `json:"poll"`
	Results     []OptionResult `json:"results"`
	TotalVotes  int            `json:"totalVotes"`
	TotalVoters int            `json:"totalVoters"`
}

// Summary drops the options
func (p Poll) Summary() PollSummary {
	return PollSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Multiple:    p.Multiple,
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}
