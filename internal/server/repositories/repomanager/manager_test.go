package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wordbridge/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNew_SelectsBackendByScheme(t *testing.T) {
	m, err := New(context.Background(), "memory://", "ignored")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepositoryManager{}, m)

	m, err = New(context.Background(), "MEMORY://local", "ignored")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepositoryManager{}, m)
}

func TestNew_RejectsUnknownScheme(t *testing.T) {
	_, err := New(context.Background(), "redis://localhost:6379", "db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database scheme "redis"`)

	_, err = New(context.Background(), "localhost:27017", "db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing scheme")
}

func TestMemoryRepositoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background()))

	var _ users.Repository = m.Users()
	assert.Same(t, m.Users(), m.Users())
	assert.NoError(t, m.Close(context.Background()))
}

func TestPostgresRepositoryManager_Users(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &PostgresRepositoryManager{db: db}
	if u := m.Users(); u == nil {
		t.Fatal("Users() nil")
	}
}

func TestPostgresRepositoryManager_RunMigrations(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, got *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if got != db {
			return errors.New("unexpected db")
		}
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}

	m := &PostgresRepositoryManager{db: db}
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPostgresRepositoryManager_Close(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectClose()

	m := &PostgresRepositoryManager{db: db}
	require.NoError(t, m.Close(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMongoRepositoryManager(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("run migrations creates index", func(mt *mtest.T) {
		m := newMongoManager(mt.Client, "wordbridge")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, m.RunMigrations(context.Background()))
		assert.NotNil(mt, m.Users())
	})

	mt.Run("run migrations error", func(mt *mtest.T) {
		m := newMongoManager(mt.Client, "wordbridge")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 85, Message: "index conflict"}))

		assert.Error(mt, m.RunMigrations(context.Background()))
	})
}
