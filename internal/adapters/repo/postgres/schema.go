package postgres

// migrations[i] brings the schema to version i+1.
var migrations = []string{
	`
CREATE TABLE IF NOT EXISTS "nlu_schema_version" (
	"version" integer NOT NULL
);

CREATE TABLE IF NOT EXISTS "training_session" (
	"bot_id"     text             NOT NULL,
	"language"   text             NOT NULL,
	"status"     text             NOT NULL,
	"progress"   double precision NOT NULL DEFAULT 0,
	"attempt"    text             NOT NULL DEFAULT '',
	"model_id"   text             NOT NULL DEFAULT '',
	"error"      text             NOT NULL DEFAULT '',
	"created_at" timestamptz      NOT NULL,
	"updated_at" timestamptz      NOT NULL,
	PRIMARY KEY ("bot_id", "language")
);
`,
}

const selectTrainingSQL = `SELECT "bot_id", "language", "status", "progress", "attempt", "model_id", "error", "created_at", "updated_at" FROM "training_session"`

const upsertTrainingSQL = `
INSERT INTO "training_session"
	("bot_id", "language", "status", "progress", "attempt", "model_id", "error", "created_at", "updated_at")
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT ("bot_id", "language") DO UPDATE SET
	"status"     = EXCLUDED."status",
	"progress"   = EXCLUDED."progress",
	"attempt"    = EXCLUDED."attempt",
	"model_id"   = EXCLUDED."model_id",
	"error"      = EXCLUDED."error",
	"updated_at" = EXCLUDED."updated_at"
`
