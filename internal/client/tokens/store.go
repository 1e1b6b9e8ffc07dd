// Package tokens persists the bearer token backing the client session.
//
// A Store is a tiny string key/value capability: Get, Set, Remove. Each call
// is atomic with respect to the others, so a reader never observes a
// half-written value.
package tokens

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/client/database"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// SQLiteStore keeps values in the metadata table, so they survive restarts.
type SQLiteStore struct {
	repo metadata.Repository
	db   *sql.DB
}

func NewSQLiteStore(repo metadata.Repository) *SQLiteStore {
	return &SQLiteStore{repo: repo}
}

// OpenSQLiteStore opens and migrates the database at path. The returned
// store owns the handle and releases it on Close.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := database.InitDatabase(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{repo: metadata.NewSQLiteRepository(db), db: db}, nil
}

// Close releases the database if the store opened it.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo.Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, key, value)
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}
