package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusly/internal/modules/session/domain"
	sessionout "focusly/internal/modules/session/port/out"
	apperrors "focusly/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(dbPath string) (*SQLiteSessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

var _ sessionout.SessionStore = (*SQLiteSessionStore)(nil)

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  duration_seconds INTEGER NOT NULL,
  final_score INTEGER NOT NULL,
  apps_used TEXT,
  reason TEXT
);
CREATE TABLE IF NOT EXISTS session_apps (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL,
  app_name TEXT NOT NULL,
  app_title TEXT NOT NULL,
  total_seconds INTEGER NOT NULL,
  FOREIGN KEY (session_id) REFERENCES sessions (id)
);
CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions (start_time);
CREATE INDEX IF NOT EXISTS idx_session_apps_session ON session_apps (session_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create session tables: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteSessionStore) Save(ctx context.Context, session domain.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertSession = `
INSERT INTO sessions (id, start_time, end_time, duration_seconds, final_score, apps_used, reason)
VALUES (?, ?, ?, ?, ?, ?, ?);
`
	if _, err := tx.ExecContext(ctx, insertSession,
		session.ID,
		formatTime(session.StartedAt),
		formatTime(session.EndedAt),
		session.DurationSeconds,
		session.FinalScore,
		session.AppsUsed,
		session.Reason,
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	const insertApp = `
INSERT INTO session_apps (session_id, app_name, app_title, total_seconds)
VALUES (?, ?, ?, ?);
`
	for _, app := range session.Apps {
		if _, err := tx.ExecContext(ctx, insertApp, session.ID, app.Process, app.Title, app.Seconds); err != nil {
			return fmt.Errorf("insert session app: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) List(ctx context.Context, limit int) ([]domain.Session, error) {
	const stmt = `
SELECT id, start_time, end_time, duration_seconds, final_score, apps_used, reason
FROM sessions
ORDER BY start_time DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, stmt, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func (s *SQLiteSessionStore) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	const stmt = `
SELECT id, start_time, end_time, duration_seconds, final_score, apps_used, reason
FROM sessions
WHERE id = ?;
`
	session, err := scanSession(s.db.QueryRowContext(ctx, stmt, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.Session{}, err
	}

	const appsStmt = `
SELECT app_name, app_title, total_seconds
FROM session_apps
WHERE session_id = ?
ORDER BY total_seconds DESC, app_name ASC, app_title ASC;
`
	rows, err := s.db.QueryContext(ctx, appsStmt, sessionID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("query session apps: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var app domain.App
		if err := rows.Scan(&app.Process, &app.Title, &app.Seconds); err != nil {
			return domain.Session{}, fmt.Errorf("scan session app: %w", err)
		}
		session.Apps = append(session.Apps, app)
	}
	if err := rows.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("iterate session apps: %w", err)
	}
	return session, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		session          domain.Session
		started, ended   string
		appsUsed, reason sql.NullString
	)
	if err := row.Scan(&session.ID, &started, &ended, &session.DurationSeconds, &session.FinalScore, &appsUsed, &reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, err
		}
		return domain.Session{}, fmt.Errorf("scan session: %w", err)
	}
	var err error
	if session.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
		return domain.Session{}, fmt.Errorf("parse start_time: %w", err)
	}
	if session.EndedAt, err = time.Parse(time.RFC3339, ended); err != nil {
		return domain.Session{}, fmt.Errorf("parse end_time: %w", err)
	}
	session.AppsUsed = appsUsed.String
	session.Reason = reason.String
	return session, nil
}

// formatTime stores UTC so that start_time sorts lexically.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
