// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/sondages/cliparse"
	"github.com/danielhkuo/sondages/db"
)

// TestDBURLEnv names the variable that points the tests at PostgreSQL.
// Without it every test gets its own SQLite file.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	dialect, url := db.DialectSQLite, "file:"+filepath.Join(t.TempDir(), "sondages_test.db")
	if pgURL := os.Getenv(TestDBURLEnv); pgURL != "" {
		dialect, url = db.DialectPostgres, pgURL
	}

	conn, err := db.Open(ctx, dialect, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	if err := db.DropSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    "file:sondages_test.db",
		DatabaseType:   "sqlite",
		AllowedOrigin:  "http://localhost:5173",
		MetricsEnabled: true,
	}
}

// CreateTestPoll inserts a poll with the given options and returns the
// poll id and the option ids in order
func CreateTestPoll(t *testing.T, conn *sql.DB, multiple bool, options ...string) (int64, []int64) {
	t.Helper()

	var pollID int64
	err := conn.QueryRow(`
		INSERT INTO poll (title, description, multiple)
		VALUES ('Test Poll', 'A test poll', $1)
		RETURNING id
	`, multiple).Scan(&pollID)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]int64, 0, len(options))
	for _, text := range options {
		var optionID int64
		err := conn.QueryRow(`
			INSERT INTO option (poll_id, text)
			VALUES ($1, $2)
			RETURNING id
		`, pollID, text).Scan(&optionID)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optionID)
	}

	return pollID, optionIDs
}

// CastTestVote writes a ballot and its vote rows directly
func CastTestVote(t *testing.T, conn *sql.DB, pollID int64, voter string, optionIDs ...int64) {
	t.Helper()

	var ballotID int64
	err := conn.QueryRow(`
		INSERT INTO ballot (poll_id, voter)
		VALUES ($1, $2)
		RETURNING id
	`, pollID, voter).Scan(&ballotID)
	if err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}

	for _, optionID := range optionIDs {
		_, err := conn.Exec(`
			INSERT INTO vote (ballot_id, poll_id, option_id)
			VALUES ($1, $2, $3)
		`, ballotID, pollID, optionID)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// CountRows counts the rows of table belonging to pollID
func CountRows(t *testing.T, conn *sql.DB, table string, pollID int64) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE poll_id = $1", pollID).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
