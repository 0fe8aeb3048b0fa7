package creds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dspetrov/hacksnooze/internal/client/migrations"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// SQLiteRepository stores the credentials in a key/value table of the local
// session database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Open opens (or creates) the session database at dsn and applies the
// embedded migrations. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply session migrations: %w", err)
	}

	return db, nil
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (Credentials, error) {
	token, err := r.get(ctx, keyToken)
	if err != nil {
		return Credentials{}, err
	}
	username, err := r.get(ctx, keyUsername)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: token, Username: username}, nil
}

// Save writes both keys in one transaction so a crash cannot leave a
// half-written session behind.
func (r *SQLiteRepository) Save(ctx context.Context, c Credentials) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	const upsert = `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err = tx.ExecContext(ctx, upsert, keyToken, c.Token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if _, err = tx.ExecContext(ctx, upsert, keyUsername, c.Username); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
