package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              TEXT PRIMARY KEY,
	chat_id         INTEGER NOT NULL DEFAULT 0,
	exercise_goal   INTEGER NOT NULL,
	food_log_goal   INTEGER NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_logs (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	logged_at       TEXT NOT NULL,
	type            TEXT NOT NULL DEFAULT '',
	duration        INTEGER NOT NULL DEFAULT 0,
	distance        TEXT NOT NULL DEFAULT '',
	raw_message     TEXT NOT NULL DEFAULT '',
	processed_data  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_exercise_logs_user ON exercise_logs (user_id, logged_at);

CREATE TABLE IF NOT EXISTS food_logs (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	logged_at       TEXT NOT NULL,
	food_items      TEXT NOT NULL DEFAULT '',
	raw_message     TEXT NOT NULL DEFAULT '',
	processed_data  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_food_logs_user ON food_logs (user_id, logged_at);
`
