package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps conversation turns in an embedded SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Serializes appends so concurrent sessions never hit SQLITE_BUSY on
	// the shared write connection.
	writeMu sync.Mutex
}

var _ contractx.HistoryStore = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("%w: sqlite history path is required", contractx.ErrConfiguration)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create history directory: %v", contractx.ErrHistoryStore, err)
	}

	// WAL keeps reads open while a turn is being appended.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", contractx.ErrHistoryStore, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping sqlite database: %v", contractx.ErrHistoryStore, err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS conversation_turns (
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (session_id, seq)
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("%w: create schema: %v", contractx.ErrHistoryStore, err)
	}
	return nil
}

// Load returns every turn of the session in append order.
func (s *SQLiteStore) Load(ctx context.Context, sessionID string) ([]contractx.Turn, error) {
	query := `
		SELECT role, content
		FROM conversation_turns
		WHERE session_id = ?
		ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: load turns: %v", contractx.ErrHistoryStore, err)
	}
	defer rows.Close()

	var turns []contractx.Turn
	for rows.Next() {
		var t contractx.Turn
		if err := rows.Scan(&t.Role, &t.Content); err != nil {
			return nil, fmt.Errorf("%w: scan turn row: %v", contractx.ErrHistoryStore, err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate turn rows: %v", contractx.ErrHistoryStore, err)
	}
	return turns, nil
}

// Append writes the turns atomically at the end of the session's sequence.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, turns ...contractx.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin append tx: %v", contractx.ErrHistoryStore, err)
	}
	defer tx.Rollback()

	var nextSeq int64
	row := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM conversation_turns WHERE session_id = ?`,
		sessionID,
	)
	if err := row.Scan(&nextSeq); err != nil {
		return fmt.Errorf("%w: read next seq: %v", contractx.ErrHistoryStore, err)
	}

	now := time.Now().Unix()
	for i, t := range turns {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO conversation_turns (session_id, seq, role, content, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			sessionID, nextSeq+int64(i), t.Role, t.Content, now,
		)
		if err != nil {
			return fmt.Errorf("%w: insert turn: %v", contractx.ErrHistoryStore, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit append tx: %v", contractx.ErrHistoryStore, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
