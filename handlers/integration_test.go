// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/sondages/models"
	"github.com/danielhkuo/sondages/testutil"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Create poll
// 2. Read it back
// 3. Two voters vote
// 4. A repeat vote is refused
// 5. Check has-voted
// 6. Verify results
func TestFullVotingWorkflow(t *testing.T) {
	h := setupHandlers(t)

	// Step 1: Create a poll
	createReq := models.CreatePollRequest{
		Title:       "Où déjeuner ?",
		Description: "Vote du vendredi",
		Options:     []string{"Pizzeria", "Crêperie"},
	}
	w := httptest.NewRecorder()
	h.polls.CreatePoll(w, testutil.MakeRequest("POST", "/api/sondages", createReq, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create poll failed: %d - %s", w.Code, w.Body.String())
	}

	var created models.Poll
	testutil.AssertJSON(t, w, &created)
	id := idString(created.ID)
	pizzeria, creperie := created.Options[0].ID, created.Options[1].ID
	t.Logf("Step 1 - Created poll: %s", id)

	// Step 2: Read it back
	req := httptest.NewRequest("GET", "/api/sondages/"+id, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	h.polls.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var fetched models.Poll
	testutil.AssertJSON(t, w, &fetched)
	if fetched.Title != createReq.Title || len(fetched.Options) != 2 {
		t.Fatalf("Step 2 - Unexpected poll: %+v", fetched)
	}

	// Step 3: Two voters vote
	w = postVote(h, id, models.VoteRequest{Voter: "ana", OptionIDs: []int64{pizzeria}})
	testutil.AssertStatus(t, w, http.StatusCreated)
	w = postVote(h, id, models.VoteRequest{Voter: "ben", OptionIDs: []int64{creperie}})
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 4: A repeat vote is refused
	w = postVote(h, id, models.VoteRequest{Voter: " ana ", OptionIDs: []int64{creperie}})
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 5: Check has-voted
	for voter, expected := range map[string]bool{"ana": true, "ben": true, "chloe": false} {
		req := httptest.NewRequest("GET", "/api/sondages/"+id+"/has-voted/"+voter, nil)
		req.SetPathValue("id", id)
		req.SetPathValue("voter", voter)
		w := httptest.NewRecorder()
		h.voting.HasVoted(w, req)

		var resp models.HasVotedResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.HasVoted != expected {
			t.Errorf("Step 5 - %s: expected hasVoted=%v", voter, expected)
		}
	}

	// Step 6: Verify results
	w = getResults(h, id)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.PollResults
	testutil.AssertJSON(t, w, &results)
	if results.TotalVotes != 2 || results.TotalVoters != 2 {
		t.Errorf("Step 6 - Expected 2 votes from 2 voters, got %d from %d", results.TotalVotes, results.TotalVoters)
	}
	for _, r := range results.Results {
		if r.Votes != 1 || r.Percentage != 50 {
			t.Errorf("Step 6 - %s: expected 1 vote at 50%%, got %d at %.1f%%", r.Text, r.Votes, r.Percentage)
		}
	}
}
