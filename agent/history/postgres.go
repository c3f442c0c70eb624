package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type conversationTurn struct {
	bun.BaseModel `bun:"table:conversation_turns"`

	ID        int64     `bun:"id,pk,autoincrement"`
	SessionID string    `bun:"session_id,notnull"`
	Seq       int64     `bun:"seq,notnull"`
	Role      string    `bun:"role,notnull"`
	Content   string    `bun:"content,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// PostgresStore keeps conversation turns in Postgres via bun.
type PostgresStore struct {
	db *bun.DB
}

var _ contractx.HistoryStore = (*PostgresStore)(nil)

func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%w: postgres history dsn is required", contractx.ErrConfiguration)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping postgres database: %v", contractx.ErrHistoryStore, err)
	}

	if _, err := db.NewCreateTable().
		Model((*conversationTurn)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", contractx.ErrHistoryStore, err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context, sessionID string) ([]contractx.Turn, error) {
	var rows []conversationTurn
	err := s.db.NewSelect().
		Model(&rows).
		Where("session_id = ?", sessionID).
		Order("seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load turns: %v", contractx.ErrHistoryStore, err)
	}

	turns := make([]contractx.Turn, 0, len(rows))
	for _, r := range rows {
		turns = append(turns, contractx.Turn{Role: r.Role, Content: r.Content})
	}
	return turns, nil
}

func (s *PostgresStore) Append(ctx context.Context, sessionID string, turns ...contractx.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var nextSeq int64
		err := tx.NewSelect().
			Model((*conversationTurn)(nil)).
			ColumnExpr("COALESCE(MAX(seq), 0) + 1").
			Where("session_id = ?", sessionID).
			Scan(ctx, &nextSeq)
		if err != nil {
			return fmt.Errorf("read next seq: %w", err)
		}

		now := time.Now().UTC()
		rows := make([]conversationTurn, 0, len(turns))
		for i, t := range turns {
			rows = append(rows, conversationTurn{
				SessionID: sessionID,
				Seq:       nextSeq + int64(i),
				Role:      t.Role,
				Content:   t.Content,
				CreatedAt: now,
			})
		}

		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert turns: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: append turns: %v", contractx.ErrHistoryStore, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
