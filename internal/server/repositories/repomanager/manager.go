// Package repomanager opens the configured credential store and vends its
// repositories. The backend is picked from the DSN scheme.
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wordbridge/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	// RunMigrations prepares the store schema (tables, unique indexes).
	RunMigrations(ctx context.Context) error
	Close(ctx context.Context) error
}

// New connects to the store addressed by dsn. Supported schemes are
// mongodb, mongodb+srv, postgres, postgresql and memory.
func New(ctx context.Context, dsn, dbName string) (RepositoryManager, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return nil, fmt.Errorf("invalid database dsn: missing scheme")
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return NewMongoRepositoryManager(ctx, dsn, dbName)
	case "postgres", "postgresql":
		return NewPostgresRepositoryManager(ctx, dsn)
	case "memory":
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}
