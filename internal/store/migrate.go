package store

import "database/sql"

// Timestamps are stored as RFC 3339 strings; booleans as 0/1.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS card_states (
	card_id        TEXT PRIMARY KEY,
	due            TEXT NOT NULL,
	stability      REAL NOT NULL,
	difficulty     REAL NOT NULL,
	elapsed_days   INTEGER NOT NULL,
	scheduled_days INTEGER NOT NULL,
	reps           INTEGER NOT NULL,
	lapses         INTEGER NOT NULL,
	state          TEXT NOT NULL,
	last_review    TEXT NOT NULL DEFAULT '',
	updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS review_logs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	card_id        TEXT NOT NULL,
	grade          TEXT NOT NULL,
	scheduled_days INTEGER NOT NULL,
	elapsed_days   INTEGER NOT NULL,
	state_before   TEXT NOT NULL,
	response_ms    INTEGER NOT NULL DEFAULT 0,
	reviewed_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_review_logs_card ON review_logs(card_id);
CREATE INDEX IF NOT EXISTS idx_review_logs_time ON review_logs(reviewed_at);

CREATE TABLE IF NOT EXISTS quiz_results (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	quiz_id             TEXT NOT NULL,
	lesson_id           TEXT NOT NULL,
	total_questions     INTEGER NOT NULL,
	rounds_played       INTEGER NOT NULL,
	first_attempt_score REAL NOT NULL,
	final_score         REAL NOT NULL,
	band                TEXT NOT NULL,
	passed              INTEGER NOT NULL,
	taken_at            TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quiz_results_lesson ON quiz_results(lesson_id);
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schemaDDL)
	return err
}
