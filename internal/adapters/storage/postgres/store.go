package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"petpal/internal/store"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// kvStore implementa store.Store sobre una tabla key-value: una fila por
// colección, valor JSON completo. El contrato sigue siendo "overwrite del
// valor entero", igual que en los demás backends.
type kvStore struct {
	db *sql.DB
}

func NewStore(ctx context.Context, db *sql.DB) (store.Store, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return nil, err
	}
	return &kvStore{db: db}, nil
}

func (s *kvStore) Read(ctx context.Context, collection string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data FROM collections WHERE name = $1
	`, collection)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

func (s *kvStore) Write(ctx context.Context, collection string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()
	`, collection, data)
	return err
}

func (s *kvStore) Delete(ctx context.Context, collection string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM collections WHERE name = $1
	`, collection)
	return err
}
