// Package history persists conversation turns per session. The embedded
// SQLite store is the default; a Postgres store is available for deployments
// that already run one.
package history

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver string `split_words:"true" default:"sqlite"`
	Path   string `split_words:"true" default:"data/conversations.db"`
	DSN    string `split_words:"true"`
}

// Open builds the store the configuration selects.
func Open(ctx context.Context, cfg Config) (contractx.HistoryStore, error) {
	switch strings.TrimSpace(cfg.Driver) {
	case "", DriverSQLite:
		return NewSQLite(cfg.Path)
	case DriverPostgres:
		return NewPostgres(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: unknown history driver %q", contractx.ErrConfiguration, cfg.Driver)
	}
}
