package sqlite

import (
	"context"
	"database/sql"

	// modernc.org/sqlite es SQLite en Go puro (sin CGo); se registra como
	// driver "sqlite" de database/sql al importarse.
	_ "modernc.org/sqlite"

	"petpal/internal/store"
)

// Open abre (o crea) la base SQLite en path. Acepta ":memory:" para tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// El medio es de un solo contexto activo; una conexión alcanza y evita
	// SQLITE_BUSY entre writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// kvStore es el mismo esquema key-value que el backend de Postgres,
// sobre SQLite embebido (un solo archivo, sin servidor).
type kvStore struct {
	db *sql.DB
}

func NewStore(ctx context.Context, db *sql.DB) (store.Store, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return nil, err
	}
	return &kvStore{db: db}, nil
}

func (s *kvStore) Read(ctx context.Context, collection string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data FROM collections WHERE name = ?
	`, collection)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return []byte(raw), nil
}

func (s *kvStore) Write(ctx context.Context, collection string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT (name) DO UPDATE
		SET data = excluded.data, updated_at = datetime('now')
	`, collection, string(data))
	return err
}

func (s *kvStore) Delete(ctx context.Context, collection string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM collections WHERE name = ?
	`, collection)
	return err
}
