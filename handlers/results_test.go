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

func getResults(h testHandlers, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/api/sondages/"+id+"/resultats", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.results.GetResults(w, req)
	return w
}

func TestGetResults(t *testing.T) {
	h := setupHandlers(t)
	pollID, opts := testutil.CreateTestPoll(t, h.db, false, "Oui", "Non", "Sans avis")
	testutil.CastTestVote(t, h.db, pollID, "alice", opts[0])
	testutil.CastTestVote(t, h.db, pollID, "bob", opts[0])
	testutil.CastTestVote(t, h.db, pollID, "carol", opts[1])

	w := getResults(h, idString(pollID))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.PollResults
	testutil.AssertJSON(t, w, &results)

	if results.Poll.ID != pollID {
		t.Errorf("Expected poll %d, got %d", pollID, results.Poll.ID)
	}
	if results.TotalVotes != 3 {
		t.Errorf("Expected 3 votes, got %d", results.TotalVotes)
	}
	if results.TotalVoters != 3 {
		t.Errorf("Expected 3 voters, got %d", results.TotalVoters)
	}
	if len(results.Results) != 3 {
		t.Fatalf("Expected 3 option results, got %d", len(results.Results))
	}

	expected := []struct {
		text  string
		votes int
		pct   float64
	}{
		{"Oui", 2, 66.7},
		{"Non", 1, 33.3},
		{"Sans avis", 0, 0},
	}
	for i, exp := range expected {
		got := results.Results[i]
		if got.OptionID != opts[i] || got.Text != exp.text {
			t.Errorf("Result %d: expected option %d %q, got %d %q", i, opts[i], exp.text, got.OptionID, got.Text)
		}
		if got.Votes != exp.votes {
			t.Errorf("Result %d: expected %d votes, got %d", i, exp.votes, got.Votes)
		}
		if got.Percentage != exp.pct {
			t.Errorf("Result %d: expected %.1f%%, got %.1f%%", i, exp.pct, got.Percentage)
		}
	}
}

func TestGetResultsErrors(t *testing.T) {
	h := setupHandlers(t)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedKind   string
	}{
		{"unknown poll", "9999", http.StatusNotFound, "not_found"},
		{"non numeric id", "abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getResults(h, tt.id)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Kind != tt.expectedKind {
				t.Errorf("Expected kind %q, got %q", tt.expectedKind, resp.Kind)
			}
		})
	}
}

func TestGetResultsStorageFailureHidesDetails(t *testing.T) {
	h := setupHandlers(t)
	pollID, _ := testutil.CreateTestPoll(t, h.db, false, "A", "B")

	if _, err := h.db.Exec("DROP TABLE vote"); err != nil {
		t.Fatalf("Failed to drop vote table: %v", err)
	}

	w := getResults(h, idString(pollID))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != "storage_failure" {
		t.Errorf("Expected kind storage_failure, got %q", resp.Kind)
	}
	if resp.Message != "Erreur de stockage" {
		t.Errorf("Expected generic storage message, got %q", resp.Message)
	}
}
